// Package commands implements the cpe-tool subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpe-tools/cpe-go/pkg/cpe"
)

// Exit codes shared across commands.
const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// RecordOutput is the flat serialized form of one unbound WFN, used by
// the parse, export and interactive commands. CBOR encoding uses
// integer keys for compactness.
type RecordOutput struct {
	Part      string `json:"part" yaml:"part" cbor:"1,keyasint"`
	Vendor    string `json:"vendor" yaml:"vendor" cbor:"2,keyasint"`
	Product   string `json:"product" yaml:"product" cbor:"3,keyasint"`
	Version   string `json:"version" yaml:"version" cbor:"4,keyasint"`
	Update    string `json:"update" yaml:"update" cbor:"5,keyasint"`
	Edition   string `json:"edition" yaml:"edition" cbor:"6,keyasint"`
	Language  string `json:"language" yaml:"language" cbor:"7,keyasint"`
	SWEdition string `json:"sw_edition" yaml:"sw_edition" cbor:"8,keyasint"`
	TargetSW  string `json:"target_sw" yaml:"target_sw" cbor:"9,keyasint"`
	TargetHW  string `json:"target_hw" yaml:"target_hw" cbor:"10,keyasint"`
	Other     string `json:"other" yaml:"other" cbor:"11,keyasint"`
}

// NewRecordOutput flattens a WFN into its serialized record.
func NewRecordOutput(w *cpe.WFN) RecordOutput {
	return RecordOutput{
		Part:      w.Part.String(),
		Vendor:    w.Vendor.String(),
		Product:   w.Product.String(),
		Version:   w.Version.String(),
		Update:    w.Update.String(),
		Edition:   w.Edition.String(),
		Language:  w.Language.String(),
		SWEdition: w.SWEdition.String(),
		TargetSW:  w.TargetSW.String(),
		TargetHW:  w.TargetHW.String(),
		Other:     w.Other.String(),
	}
}

// RenderRecord writes one unbound WFN to w in the given format (text,
// json or yaml).
func RenderRecord(w io.Writer, wfn *cpe.WFN, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(NewRecordOutput(wfn), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, collapseEscapes(string(data)))
	case "yaml":
		data, err := yaml.Marshal(NewRecordOutput(wfn))
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	case "text", "":
		for _, a := range wfn.Attributes() {
			fmt.Fprintf(w, "%-11s %s\n", a.Name, a.Value)
		}
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
	return nil
}

// collapseEscapes undoes the backslash doubling that encoding/json
// applies to quoted literals. Unbound values carry exactly one escape
// marker per escaped character, and display output must preserve that
// rather than re-escape it. Machine formats (jsonl export) keep
// standard JSON encoding instead, since decoding restores the single
// marker there.
func collapseEscapes(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}
