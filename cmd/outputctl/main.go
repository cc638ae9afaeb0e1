// Command outputctl is a small demo around the output package: it renders
// an interpolated template against command-line-supplied arguments, showing
// how knownness and secrecy propagate through Secret and Interpolate.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/outputs/internal/outputcli"
	"github.com/vk/outputs/output"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*outputcli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := outputcli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	output.SetDryRun(cfg.DryRun)
	ctx := context.Background()

	secret := make(map[string]struct{}, len(cfg.Secret))
	for _, name := range cfg.Secret {
		secret[name] = struct{}{}
	}

	bound := make(map[string]any, len(cfg.Args))
	for k, v := range cfg.Args {
		if _, ok := secret[k]; ok {
			s, err := output.Secret(ctx, v)
			if err != nil {
				return &outputcli.ExitError{Code: 1, Message: err.Error()}
			}
			bound[k] = s
			continue
		}
		bound[k] = v
	}

	rendered, err := output.Interpolate(ctx, cfg.Template, bound)
	if err != nil {
		return &outputcli.ExitError{Code: 1, Message: err.Error()}
	}

	printPreview(outW, rendered)
	return nil
}

func printPreview(outW io.Writer, o output.Output) {
	ctx := context.Background()

	known, err := o.IsKnown(ctx)
	if err != nil {
		fmt.Fprintln(outW, color.Red.Sprintf("error: %s", err))
		return
	}
	isSecret, _ := o.IsSecret(ctx)

	if !known {
		fmt.Fprintln(outW, color.Yellow.Sprint("<computed during apply>"))
		return
	}

	value, err := o.Value(ctx)
	if err != nil {
		fmt.Fprintln(outW, color.Red.Sprintf("error: %s", err))
		return
	}

	rendered := fmt.Sprintf("%v", value)
	if isSecret {
		fmt.Fprintln(outW, color.Magenta.Sprint("[secret]"))
		return
	}
	fmt.Fprintln(outW, color.Green.Sprint(wordwrap.WrapString(rendered, 80)))
}
