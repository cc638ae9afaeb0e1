// Package outputcli parses command-line arguments for the outputctl demo
// binary, in the same "flag.FlagSet plus a typed exit error" shape the rest
// of this codebase uses for its own CLI entrypoint.
package outputcli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code alongside the message to print.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Config holds the parsed, validated arguments for one run of outputctl.
type Config struct {
	Template string
	Args     map[string]string
	DryRun   bool
	Secret   []string
}

// Parse processes args. It returns a populated Config, a boolean indicating
// the program should exit cleanly (e.g. -h was passed), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("outputctl", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
outputctl - render an interpolated template against deferred-value arguments.

Usage:
  outputctl [options] TEMPLATE

Arguments:
  TEMPLATE
    A template string such as "https://${host}:${port}/".

Options:
`)
		flagSet.PrintDefaults()
	}

	dryRunFlag := flagSet.Bool("dry-run", false, "Preview the template without invoking side-effecting applies.")
	argsFlag := flagSet.String("args", "", "Comma-separated key=value pairs to bind into the template, e.g. host=example.com,port=8080.")
	secretFlag := flagSet.String("secret", "", "Comma-separated key names (from -args) to mark secret.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	parsedArgs, err := parsePairs(*argsFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var secretNames []string
	if *secretFlag != "" {
		secretNames = strings.Split(*secretFlag, ",")
	}

	return &Config{
		Template: flagSet.Arg(0),
		Args:     parsedArgs,
		DryRun:   *dryRunFlag,
		Secret:   secretNames,
	}, false, nil
}

func parsePairs(raw string) (map[string]string, error) {
	out := map[string]string{}
	if raw == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("outputcli: invalid -args entry %q, expected key=value", pair)
		}
		out[k] = v
	}
	return out, nil
}
