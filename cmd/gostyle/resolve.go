package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gostyle "github.com/reoring/gostyle"
	_ "github.com/reoring/gostyle/source"
	"github.com/reoring/gostyle/theme"
)

var (
	themePath    string
	printCSS     bool
	strictDecode bool
	maxDepth     int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file|-]",
	Short: "Resolve a descriptor document into a class string",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&themePath, "theme", "", "YAML theme providing @name styles")
	resolveCmd.Flags().BoolVar(&printCSS, "css", false, "print the generated CSS after the class string")
	resolveCmd.Flags().BoolVar(&strictDecode, "strict", false, "fail on values that would be dropped")
	resolveCmd.Flags().IntVar(&maxDepth, "max-depth", 64, "maximum nesting depth of the document")
}

func runResolve(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	reg := gostyle.NewRegistry(gostyle.WithLogger(logger))
	var th *theme.Theme
	if themePath != "" {
		if th, err = theme.LoadFile(themePath, reg); err != nil {
			return err
		}
	}

	opt := gostyle.DecodeOpt{
		MaxDepth:       maxDepth,
		OnDuplicateKey: gostyle.Warn,
		Strict:         strictDecode,
		Warnings: func(it gostyle.Issue) {
			logger.Warn("duplicate key", zap.String("path", it.Path))
		},
	}
	if strictDecode {
		opt.OnDuplicateKey = gostyle.Error
	}
	d, err := gostyle.DecodeJSON(context.Background(), data, opt)
	if err != nil {
		return err
	}
	if d, err = bindThemeRefs(d, th); err != nil {
		return err
	}

	r := gostyle.NewResolver(reg, gostyle.WithResolverLogger(logger))
	cls := r.Resolve(d)
	logger.Debug("resolved", zap.String("class", cls), zap.Int("styles", reg.Len()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cls)
	if printCSS {
		return reg.WriteCSS(out)
	}
	return nil
}

// bindThemeRefs replaces "@name" class names with the theme style of that name.
func bindThemeRefs(d gostyle.Descriptor, th *theme.Theme) (gostyle.Descriptor, error) {
	if items, ok := d.Items(); ok {
		out := make([]gostyle.Descriptor, len(items))
		for i, it := range items {
			b, err := bindThemeRefs(it, th)
			if err != nil {
				return gostyle.Descriptor{}, err
			}
			out[i] = b
		}
		return gostyle.List(out...), nil
	}
	name, ok := d.ClassName()
	if !ok || !strings.HasPrefix(name, "@") {
		return d, nil
	}
	if th == nil {
		return gostyle.Descriptor{}, fmt.Errorf("style reference %q needs --theme", name)
	}
	if _, ok := th.Sheet().Style(name[1:]); !ok {
		return gostyle.Descriptor{}, fmt.Errorf("theme has no style %q", name[1:])
	}
	return th.Sheet().Get(name[1:]), nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
