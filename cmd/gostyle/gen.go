package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/internal/gen"
	"github.com/reoring/gostyle/theme"
)

var (
	genPkg string
	genOut string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate Go constants holding the class names of theme styles",
	Args:  cobra.NoArgs,
	RunE:  runGen,
}

func init() {
	genCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file")
	genCmd.Flags().StringVar(&genPkg, "pkg", "styles", "package name of the generated file")
	genCmd.Flags().StringVarP(&genOut, "output", "o", "", "output file (default stdout)")
}

func runGen(cmd *cobra.Command, args []string) error {
	if themePath == "" {
		return errors.New("--theme is required")
	}
	th, err := theme.LoadFile(themePath, gostyle.NewRegistry(gostyle.WithLogger(logger)))
	if err != nil {
		return err
	}
	src, err := gen.RenderConstants(genPkg, th.Sheet())
	if err != nil {
		return err
	}
	if genOut == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(genOut, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", genOut, err)
	}
	logger.Info("generated constants", zap.String("file", genOut), zap.Int("styles", th.Sheet().Len()))
	return nil
}
