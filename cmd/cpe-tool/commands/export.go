package commands

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/cpe-tools/cpe-go/pkg/cpe"
)

// cborEnc is the encoder mode for CBOR export: canonical key ordering,
// definite lengths only.
var cborEnc cbor.EncMode

func init() {
	opts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	var err error
	cborEnc, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor encoder options: %v", err))
	}
}

// ExportOptions configures the export command.
type ExportOptions struct {
	Format string // jsonl, csv, cbor
	Output string // empty means stdout
	Input  string
}

// RunExport parses a CPE list file and exports the unbound records.
func RunExport(args []string, stdout, stderr io.Writer) int {
	opts, err := parseExportArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printExportUsage(stderr)
		return exitCommandError
	}

	entries, err := readCPEList(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	records := make([]RecordOutput, 0, len(entries))
	for _, e := range entries {
		wfn, err := cpe.Unbind(e.Text)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s line %d: %v\n", opts.Input, e.Line, err)
			return exitValidation
		}
		records = append(records, NewRecordOutput(wfn))
	}

	w := stdout
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to create output file: %v\n", err)
			return exitCommandError
		}
		defer f.Close()
		w = f
	}

	switch opts.Format {
	case "jsonl":
		err = exportJSONL(records, w)
	case "csv":
		err = exportCSV(records, w)
	case "cbor":
		err = exportCBOR(records, w)
	default:
		err = fmt.Errorf("unknown format: %s (supported: jsonl, csv, cbor)", opts.Format)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	return exitSuccess
}

func exportJSONL(records []RecordOutput, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

func exportCSV(records []RecordOutput, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(cpe.AttributeNames); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Part, rec.Vendor, rec.Product, rec.Version, rec.Update,
			rec.Edition, rec.Language, rec.SWEdition, rec.TargetSW,
			rec.TargetHW, rec.Other,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func exportCBOR(records []RecordOutput, w io.Writer) error {
	encoder := cborEnc.NewEncoder(w)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

func parseExportArgs(args []string) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ExportOptions{}

	fs.StringVar(&opts.Format, "format", "jsonl", "Export format (jsonl, csv, cbor)")
	fs.StringVar(&opts.Format, "f", "jsonl", "Export format (shorthand)")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Output, "output", "", "Output file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	return opts, nil
}

func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: cpe-tool export [options] <file>

Parse a file of CPE 2.3 formatted strings and export the unbound
records.

Options:
  -f, --format  Export format: jsonl, csv, cbor (default: jsonl)
  -o, --output  Output file (default: stdout)

Example:
  cpe-tool export --format csv -o inventory.csv inventory.txt`)
}
