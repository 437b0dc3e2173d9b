package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Version components, can be overridden at build time via -ldflags.
var (
	versionMajor = "0"
	versionMinor = "1"
	versionPatch = "0"
)

func versionString(colored bool) string {
	if !colored {
		return versionMajor + "." + versionMinor + "." + versionPatch
	}
	paint := func(c *color.Color, s string) string {
		c.EnableColor()
		return c.Sprint(s)
	}
	return paint(versionMajorColor, versionMajor) + "." +
		paint(versionMinorColor, versionMinor) + "." +
		paint(versionPatchColor, versionPatch)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of sexpr",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			colored := useColor(cfg.Output.Color, cmd.OutOrStdout())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "sexpr %s\n", versionString(colored))
			return err
		},
	}
}
