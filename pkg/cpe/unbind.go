package cpe

import (
	"fmt"
	"strings"
)

// Unbind parses a CPE 2.3 formatted string into its Well-Formed Name.
//
// The string must start with the literal prefix "cpe:2.3:", followed by
// a one-character part indicator (a, h or o) and ten further
// colon-separated segments. Matching is anchored at the start only:
// content after the eleventh segment's closing colon is ignored rather
// than rejected, mirroring the binding pattern this implementation is
// derived from.
//
// On any structural or quoting violation the whole parse fails; no
// partial WFN is returned.
func Unbind(s string) (*WFN, error) {
	body, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrMalformedCPE, Prefix)
	}

	// At most twelve pieces: the part indicator, the ten attribute
	// segments, and any ignored trailing content.
	fields := strings.SplitN(body, ":", NumAttributes+1)
	if len(fields) < NumAttributes {
		return nil, fmt.Errorf("%w: expected %d colon-separated components, found %d",
			ErrMalformedCPE, NumAttributes, len(fields))
	}

	switch fields[0] {
	case "a", "h", "o":
	default:
		return nil, fmt.Errorf("%w: part indicator must be a, h or o, got %q",
			ErrMalformedCPE, fields[0])
	}

	raw := fields[:NumAttributes]

	var vals [NumAttributes]Value
	for i, name := range AttributeNames {
		if i >= len(raw) {
			// Unreachable under the splitter above, which always
			// captures eleven segments once the prefix matches. Kept so
			// a broken refactor fails loudly instead of returning a
			// partial record.
			return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
		}
		v, err := unbindValue(raw[i])
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		vals[i] = v
	}

	return &WFN{
		Part:      vals[0],
		Vendor:    vals[1],
		Product:   vals[2],
		Version:   vals[3],
		Update:    vals[4],
		Edition:   vals[5],
		Language:  vals[6],
		SWEdition: vals[7],
		TargetSW:  vals[8],
		TargetHW:  vals[9],
		Other:     vals[10],
	}, nil
}

// unbindValue classifies one raw segment: a bare "*" is ANY, a bare "-"
// is NA, anything else (including the empty string) is a quoted
// literal.
func unbindValue(raw string) (Value, error) {
	switch raw {
	case "*":
		return Value{Kind: KindAny}, nil
	case "-":
		return Value{Kind: KindNA}, nil
	}

	quoted, err := Quote(raw)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindLiteral, Literal: quoted}, nil
}
