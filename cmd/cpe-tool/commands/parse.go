package commands

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/cpe-tools/cpe-go/pkg/cpe"
)

// ParseOptions configures the parse command.
type ParseOptions struct {
	Format string // text, json, yaml
	Inputs []string
}

// RunParse runs the parse command. CPE strings are taken from the
// positional arguments, or read line by line from stdin when none are
// given.
func RunParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	inputs := opts.Inputs
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no CPE string specified")
		printParseUsage(stderr)
		return exitCommandError
	}

	for i, input := range inputs {
		wfn, err := cpe.Unbind(input)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitValidation
		}

		if opts.Format == "text" && len(inputs) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "# %s\n", input)
		}
		if err := RenderRecord(stdout, wfn, opts.Format); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}

	return exitSuccess
}

func parseParseArgs(args []string) (ParseOptions, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ParseOptions{}

	fs.StringVar(&opts.Format, "format", "text", "Output format (text, json, yaml)")
	fs.StringVar(&opts.Format, "f", "text", "Output format (shorthand)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Inputs = fs.Args()
	return opts, nil
}

func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cpe-tool parse [options] <cpe-string>...

Unbind CPE 2.3 formatted strings into their WFN attributes. Reads from
stdin (one string per line) when no arguments are given.

Options:
  -f, --format  Output format: text, json, yaml (default: text)

Example:
  cpe-tool parse --format json 'cpe:2.3:a:mozilla:firefox:esr-78.16.0:*:*:*:*:*:*:*'`)
}
