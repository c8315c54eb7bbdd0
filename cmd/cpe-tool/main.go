// cpe-tool is a CLI for parsing and validating CPE 2.3 formatted strings.
package main

import (
	"fmt"
	"os"

	"github.com/cpe-tools/cpe-go/cmd/cpe-tool/commands"
	"github.com/cpe-tools/cpe-go/cmd/cpe-tool/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "parse":
		exitCode = commands.RunParse(args, os.Stdin, os.Stdout, os.Stderr)
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "export":
		exitCode = commands.RunExport(args, os.Stdout, os.Stderr)
	case "interactive", "repl":
		exitCode = runInteractive()
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("cpe-tool version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func runInteractive() int {
	sess, err := interactive.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if err := sess.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func printUsage() {
	fmt.Println(`cpe-tool - CPE 2.3 formatted string parsing and validation

Usage:
  cpe-tool <command> [options] [args...]

Commands:
  parse        Unbind CPE strings into their WFN attributes
  validate     Validate files of CPE strings (one per line)
  export       Export parsed CPE records (jsonl, csv, cbor)
  interactive  Start an interactive parsing session

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  cpe-tool parse 'cpe:2.3:a:mozilla:firefox:esr-78.16.0:*:*:*:*:*:*:*'
  cpe-tool parse --format json 'cpe:2.3:o:IBM/Red_Hat:RHEL:8.4.2-1:*:*:*:*:*:*:*'
  cpe-tool validate --json inventory.txt
  cpe-tool export --format csv -o inventory.csv inventory.txt

For command-specific help, run:
  cpe-tool <command> --help`)
}
