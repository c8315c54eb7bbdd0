package cpe

import (
	"errors"
	"strings"
	"testing"
)

// record flattens a WFN into name -> serialized value for comparison.
func record(w *WFN) map[string]string {
	m := make(map[string]string, NumAttributes)
	for _, a := range w.Attributes() {
		m[a.Name] = a.Value.String()
	}
	return m
}

func TestUnbind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "slash in vendor",
			input: `cpe:2.3:o:IBM/Red_Hat:RHEL:8.4.2-1:*:*:*:*:*:*:*`,
			want: map[string]string{
				"part":       "o",
				"vendor":     `IBM\/Red_Hat`,
				"product":    "RHEL",
				"version":    `8\.4\.2\-1`,
				"update":     "ANY",
				"edition":    "ANY",
				"language":   "ANY",
				"sw_edition": "ANY",
				"target_sw":  "ANY",
				"target_hw":  "ANY",
				"other":      "ANY",
			},
		},
		{
			name:  "hyphenated version",
			input: `cpe:2.3:a:mozilla:firefox:esr-78.16.0:*:*:*:*:*:*:*`,
			want: map[string]string{
				"part":       "a",
				"vendor":     "mozilla",
				"product":    "firefox",
				"version":    `esr\-78\.16\.0`,
				"update":     "ANY",
				"edition":    "ANY",
				"language":   "ANY",
				"sw_edition": "ANY",
				"target_sw":  "ANY",
				"target_hw":  "ANY",
				"other":      "ANY",
			},
		},
		{
			name:  "dot edition and NA other",
			input: `cpe:2.3:o:apple:ios:15.1-beta:*:.:*:*:*:*:-`,
			want: map[string]string{
				"part":       "o",
				"vendor":     "apple",
				"product":    "ios",
				"version":    `15\.1\-beta`,
				"update":     "ANY",
				"edition":    `\.`,
				"language":   "ANY",
				"sw_edition": "ANY",
				"target_sw":  "ANY",
				"target_hw":  "ANY",
				"other":      "NA",
			},
		},
		{
			name:  "NA segments and dot literals",
			input: `cpe:2.3:h:-:acrobat_reader:DC-2019.012.20051:-:-:-:.:.:.:*`,
			want: map[string]string{
				"part":       "h",
				"vendor":     "NA",
				"product":    "acrobat_reader",
				"version":    `DC\-2019\.012\.20051`,
				"update":     "NA",
				"edition":    "NA",
				"language":   "NA",
				"sw_edition": `\.`,
				"target_sw":  `\.`,
				"target_hw":  `\.`,
				"other":      "ANY",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wfn, err := Unbind(tt.input)
			if err != nil {
				t.Fatalf("Unbind(%q) failed: %v", tt.input, err)
			}
			got := record(wfn)
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("%s = %q, want %q", name, got[name], want)
				}
			}
			if len(got) != NumAttributes {
				t.Errorf("record has %d attributes, want %d", len(got), NumAttributes)
			}
		})
	}
}

func TestUnbindMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty string", "", ErrMalformedCPE},
		{"missing prefix", "cpe::h:-:reader:DC:-:-:-:a:b:c:d", ErrMalformedCPE},
		{"wrong version", "cpe:2.2:a:v:p:1:*:*:*:*:*:*:*", ErrMalformedCPE},
		{"too few segments", `cpe:2.3:h:-:acrobat_reader:DC-2019.012.20051:-:-:-*`, ErrMalformedCPE},
		{"bad part indicator", "cpe:2.3:x:v:p:1:*:*:*:*:*:*:*", ErrMalformedCPE},
		{"multi-char part", "cpe:2.3:app:v:p:1:*:*:*:*:*:*:*", ErrMalformedCPE},
		{"interior asterisk", `cpe:2.3:h:-:acrob*at_reader:DC-2019.012.20051:-:-:-:a:b:c:d`, ErrWildcardPlacement},
		{"interior question mark", `cpe:2.3:h:-:acrob?at_reader:DC-2019.012.20051:-:-:-:a:b:c:d`, ErrSingleCharPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wfn, err := Unbind(tt.input)
			if err == nil {
				t.Fatalf("Unbind(%q) = %+v, want error", tt.input, wfn)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Unbind(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if wfn != nil {
				t.Errorf("Unbind(%q) returned partial WFN on error", tt.input)
			}
		})
	}
}

// Interior wildcards are rejected in every segment position, not just
// vendor.
func TestUnbindInteriorWildcardAnySegment(t *testing.T) {
	for i, name := range AttributeNames {
		if name == AttrPart {
			continue // the part indicator can never contain a wildcard
		}
		segs := make([]string, NumAttributes)
		segs[0] = "a"
		for j := 1; j < NumAttributes; j++ {
			segs[j] = "*"
		}
		segs[i] = "bad*value"
		input := Prefix + strings.Join(segs, ":")

		_, err := Unbind(input)
		if !errors.Is(err, ErrWildcardPlacement) {
			t.Errorf("segment %s: error = %v, want ErrWildcardPlacement", name, err)
		}
		if err != nil && !strings.Contains(err.Error(), name) {
			t.Errorf("segment %s: error %q does not name the attribute", name, err)
		}
	}
}

// The splitter is anchored at the start only: content after the
// eleventh segment is ignored.
func TestUnbindIgnoresTrailingContent(t *testing.T) {
	wfn, err := Unbind(`cpe:2.3:a:mozilla:firefox:78:*:*:*:*:*:*:*:trailing:garbage`)
	if err != nil {
		t.Fatalf("Unbind failed: %v", err)
	}
	if !wfn.Other.IsAny() {
		t.Errorf("other = %v, want ANY", wfn.Other)
	}
}

func TestUnbindEmptySegmentIsLiteral(t *testing.T) {
	wfn, err := Unbind(`cpe:2.3:a::firefox:78:*:*:*:*:*:*:*`)
	if err != nil {
		t.Fatalf("Unbind failed: %v", err)
	}
	if wfn.Vendor.Kind != KindLiteral || wfn.Vendor.Literal != "" {
		t.Errorf("vendor = %+v, want empty literal", wfn.Vendor)
	}
	if wfn.Vendor.String() != "" {
		t.Errorf("vendor.String() = %q, want empty", wfn.Vendor.String())
	}
}

func TestUnbindBoundaryWildcardsInLiteral(t *testing.T) {
	wfn, err := Unbind(`cpe:2.3:a:mozilla:*fox:78:*:*:*:*:*:*:*`)
	if err != nil {
		t.Fatalf("Unbind failed: %v", err)
	}
	if wfn.Product.Kind != KindLiteral || wfn.Product.Literal != "*fox" {
		t.Errorf("product = %+v, want literal *fox", wfn.Product)
	}
}
