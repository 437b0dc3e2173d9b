package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/sexpression/ast"
	"github.com/xiam/sexpression/config"
	"github.com/xiam/sexpression/diagfmt"
	"github.com/xiam/sexpression/parser"
)

const stdinName = "-"

func newReadCmd() *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read [flags] [files...]",
		Short: "Read S-expressions and print their trees",
		Long: `Read parses every given file, or stdin when no file or "-" is given,
and prints the resulting tree in the selected format`,
		RunE: runRead,
	}

	readCmd.Flags().Bool("all", false, "read every top-level expression instead of exactly one")
	readCmd.Flags().String("format", config.FormatSexpr, "output format (sexpr|tree|json|msgpack)")
	readCmd.Flags().IntP("jobs", "j", 0, "number of files parsed concurrently (0 keeps the configured value)")

	return readCmd
}

// readResult is the outcome of reading one file. Exactly one of out and err
// is set.
type readResult struct {
	name  string
	src   string
	out   []byte
	count int
	err   error
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	all, err := flags.GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}

	files := args
	if len(files) == 0 {
		files = []string{stdinName}
	}

	// stdin is consumed once, even when "-" is given several times.
	var stdin *string
	for _, name := range files {
		if name != stdinName {
			continue
		}
		src, err := readSource(cmd, stdinName)
		if err != nil {
			return err
		}
		stdin = &src
		break
	}

	results := make([]readResult, len(files))

	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(cfg.Jobs, len(files)))

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = readFile(cmd, name, stdin, cfg, all)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return report(cmd, cfg, results)
}

func readFile(cmd *cobra.Command, name string, stdin *string, cfg config.Config, all bool) readResult {
	res := readResult{name: name}

	var src string
	if name == stdinName && stdin != nil {
		src = *stdin
	} else {
		var err error
		if src, err = readSource(cmd, name); err != nil {
			res.err = err
			return res
		}
	}
	res.src = src

	nodes, err := parseSource(src, cfg.ParserOptions(), all)
	if err != nil {
		res.err = err
		return res
	}
	res.count = len(nodes)

	var buf bytes.Buffer
	if err := render(&buf, cfg.Output.Format, nodes, all); err != nil {
		res.err = err
		return res
	}
	res.out = buf.Bytes()

	if isVerbose(cmd) {
		log.Printf("%s: %d expression(s), %d bytes", name, res.count, len(src))
	}
	return res
}

// readSource loads a file, or stdin for "-".
func readSource(cmd *cobra.Command, name string) (string, error) {
	if name == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

func parseSource(src string, opts parser.Options, all bool) ([]*ast.Node, error) {
	p := parser.New(src, opts)
	if !all {
		node, err := p.Parse()
		if err != nil {
			return nil, err
		}
		return []*ast.Node{node}, nil
	}

	nodes := []*ast.Node{}
	for {
		node, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// render writes nodes in the given format. With all set, the json and
// msgpack formats wrap the nodes in an array.
func render(w io.Writer, format string, nodes []*ast.Node, all bool) error {
	switch format {
	case config.FormatSexpr:
		for _, node := range nodes {
			if _, err := fmt.Fprintf(w, "%s\n", ast.Encode(node)); err != nil {
				return err
			}
		}
		return nil

	case config.FormatTree:
		for _, node := range nodes {
			if err := ast.Fprint(w, node); err != nil {
				return err
			}
		}
		return nil

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if all {
			return enc.Encode(nodes)
		}
		return enc.Encode(nodes[0])

	case config.FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		if all {
			return enc.Encode(nodes)
		}
		return enc.Encode(nodes[0])
	}
	return fmt.Errorf("unknown format: %s", format)
}

// report prints the results in input order: trees to stdout, failures to
// stderr. It returns every failure at once.
func report(cmd *cobra.Command, cfg config.Config, results []readResult) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	opts := diagfmt.PrettyOpts{
		Color:       useColor(cfg.Output.Color, stderr),
		ShowPreview: true,
	}

	var result *multierror.Error
	for _, res := range results {
		if res.err == nil {
			if _, err := stdout.Write(res.out); err != nil {
				return err
			}
			continue
		}

		var err error
		if cfg.Output.Format == config.FormatJSON {
			err = diagfmt.JSON(stderr, res.name, res.err)
		} else {
			err = diagfmt.Pretty(stderr, res.name, res.src, res.err, opts)
		}
		if err != nil {
			return err
		}
		result = multierror.Append(result, fmt.Errorf("%s: %w", res.name, res.err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return reported(err)
	}
	return nil
}

// reportedError marks errors that were already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func reported(err error) error {
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var rerr *reportedError
	return errors.As(err, &rerr)
}
