package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xiam/sexpression/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sexpr",
		Short:         "S-expression reader",
		Long:          `sexpr reads S-expressions and prints their trees, tokens and errors`,
		Version:       versionString(false),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-depth", 0, "maximum list nesting (0 keeps the configured value)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-file progress")

	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sexpr: ")

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !isReported(err) {
			log.Fatal(err)
		}
		os.Exit(1)
	}
}

// loadSettings reads the configuration file, if any, and applies the
// persistent flags that were set explicitly on top of it.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	cfg := config.Default()
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return config.Config{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-depth") {
		if cfg.Parser.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return config.Config{}, fmt.Errorf("failed to get max-depth flag: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	return verbose
}

// useColor resolves a color mode for the given writer.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
