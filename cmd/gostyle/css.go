package main

import (
	"errors"

	"github.com/spf13/cobra"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/theme"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the CSS of every theme style",
	Args:  cobra.NoArgs,
	RunE:  runCSS,
}

func init() {
	cssCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file")
}

func runCSS(cmd *cobra.Command, args []string) error {
	if themePath == "" {
		return errors.New("--theme is required")
	}
	reg := gostyle.NewRegistry(gostyle.WithLogger(logger))
	th, err := theme.LoadFile(themePath, reg)
	if err != nil {
		return err
	}
	s := th.Sheet()
	for _, name := range s.Names() {
		style, _ := s.Style(name)
		reg.Combine(style)
	}
	return reg.WriteCSS(cmd.OutOrStdout())
}
