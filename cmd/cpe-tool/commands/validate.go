package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/cpe-tools/cpe-go/pkg/cpe"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON    bool
	Verbose bool
	Files   []string
}

// ReportOutput is the machine-readable result of one validate run.
type ReportOutput struct {
	RunID string                 `json:"run_id"`
	Valid bool                   `json:"valid"`
	Files map[string]*FileOutput `json:"files"`
}

// FileOutput is the validation result for one list file.
type FileOutput struct {
	Valid   bool          `json:"valid"`
	Checked int           `json:"checked"`
	Errors  []IssueOutput `json:"errors,omitempty"`
}

// IssueOutput is one invalid entry in a list file.
type IssueOutput struct {
	Line    int    `json:"line"`
	Input   string `json:"input"`
	Message string `json:"message"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	report := &ReportOutput{
		RunID: uuid.New().String(),
		Valid: true,
		Files: make(map[string]*FileOutput),
	}

	for _, file := range opts.Files {
		result, err := validateFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", file, err)
			return exitCommandError
		}
		report.Files[file] = result

		if !result.Valid {
			report.Valid = false
		}

		if !opts.JSON {
			printFileResult(stdout, file, result, opts.Verbose)
		}
	}

	if opts.JSON {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(stdout, string(data))
	}

	if !report.Valid {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(path string) (*FileOutput, error) {
	entries, err := readCPEList(path)
	if err != nil {
		return nil, err
	}

	result := &FileOutput{Valid: true, Checked: len(entries)}
	for _, e := range entries {
		if _, err := cpe.Unbind(e.Text); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, IssueOutput{
				Line:    e.Line,
				Input:   e.Text,
				Message: err.Error(),
			})
		}
	}
	return result, nil
}

func printFileResult(w io.Writer, file string, result *FileOutput, verbose bool) {
	if result.Valid {
		fmt.Fprintf(w, "%s: OK (%d entries)\n", file, result.Checked)
		return
	}

	fmt.Fprintf(w, "%s: %d of %d entries invalid\n", file, len(result.Errors), result.Checked)
	for _, issue := range result.Errors {
		fmt.Fprintf(w, "  line %d: %s\n", issue.Line, issue.Message)
		if verbose {
			fmt.Fprintf(w, "    input: %s\n", issue.Input)
		}
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ValidateOptions{}

	fs.BoolVar(&opts.JSON, "json", false, "Emit a JSON report")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Show the offending input for each error")
	fs.BoolVar(&opts.Verbose, "v", false, "Show the offending input (shorthand)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cpe-tool validate [options] <file>...

Validate files of CPE 2.3 formatted strings, one per line. Blank lines
and '#' comments are skipped.

Options:
  --json         Emit a JSON report with a run ID
  -v, --verbose  Show the offending input for each error

Exit codes:
  0  all entries valid
  1  usage or file error
  2  one or more entries invalid`)
}
