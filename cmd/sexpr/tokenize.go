package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/sexpression/diagfmt"
	"github.com/xiam/sexpression/lexer"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [flags] file",
		Short: "Print the tokens of a source file",
		Long:  `Tokenize breaks a source file down into its tokens, "-" reads from stdin`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	src, err := readSource(cmd, name)
	if err != nil {
		return err
	}

	lx := lexer.New(src, lexer.Options{DisableFastPaths: cfg.Parser.DisableFastPaths})
	tokens, err := lx.All()
	if err != nil {
		opts := diagfmt.PrettyOpts{
			Color:       useColor(cfg.Output.Color, cmd.ErrOrStderr()),
			ShowPreview: true,
		}
		if perr := diagfmt.Pretty(cmd.ErrOrStderr(), name, src, err, opts); perr != nil {
			return perr
		}
		return reported(fmt.Errorf("%s: %w", name, err))
	}

	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens)
}
