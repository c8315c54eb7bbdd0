package cpe

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Prefix is the literal prefix of every CPE 2.3 formatted string.
const Prefix = "cpe:2.3:"

// NumAttributes is the number of attributes bound into a formatted string.
const NumAttributes = 11

// WFN attribute names, in canonical binding order.
const (
	AttrPart      = "part"
	AttrVendor    = "vendor"
	AttrProduct   = "product"
	AttrVersion   = "version"
	AttrUpdate    = "update"
	AttrEdition   = "edition"
	AttrLanguage  = "language"
	AttrSWEdition = "sw_edition"
	AttrTargetSW  = "target_sw"
	AttrTargetHW  = "target_hw"
	AttrOther     = "other"
)

// AttributeNames lists the eleven attribute names in canonical order.
// It must not be mutated.
var AttributeNames = []string{
	AttrPart,
	AttrVendor,
	AttrProduct,
	AttrVersion,
	AttrUpdate,
	AttrEdition,
	AttrLanguage,
	AttrSWEdition,
	AttrTargetSW,
	AttrTargetHW,
	AttrOther,
}

// Unbinding errors.
var (
	ErrMalformedCPE        = errors.New("invalid CPE 2.3 formatted string")
	ErrMissingAttribute    = errors.New("required attribute missing")
	ErrWildcardPlacement   = errors.New("unquoted asterisk must appear at the beginning or end of a component")
	ErrSingleCharPlacement = errors.New("unquoted question mark must appear at the beginning or end of a component, or in a leading or trailing sequence")
)

// ValueKind discriminates the three forms an unbound value can take.
type ValueKind uint8

const (
	// KindAny is the logical value ANY, bound as a bare "*".
	KindAny ValueKind = iota
	// KindNA is the logical value NA (not applicable), bound as "-".
	KindNA
	// KindLiteral is a quoted literal value.
	KindLiteral
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindAny:
		return "ANY"
	case KindNA:
		return "NA"
	case KindLiteral:
		return "LITERAL"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Value is one unbound attribute value.
//
// The zero Value is ANY; literal values carry their quoted form with
// exactly one escape marker per escaped character.
type Value struct {
	// Kind discriminates ANY, NA and literal values.
	Kind ValueKind

	// Literal is the quoted literal, set only when Kind is KindLiteral.
	Literal string
}

// IsAny reports whether the value is the logical value ANY.
func (v Value) IsAny() bool { return v.Kind == KindAny }

// IsNA reports whether the value is not applicable.
func (v Value) IsNA() bool { return v.Kind == KindNA }

// String returns the serialized form: "ANY", "NA" or the quoted literal.
func (v Value) String() string {
	switch v.Kind {
	case KindAny:
		return "ANY"
	case KindNA:
		return "NA"
	default:
		return v.Literal
	}
}

// MarshalJSON serializes the value as its string form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// MarshalYAML serializes the value as its string form.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// WFN is the Well-Formed Name unbound from a CPE 2.3 formatted string.
//
// Every attribute is set on a successfully unbound WFN; a WFN is never
// returned partially populated. It is immutable by convention once
// returned from Unbind.
type WFN struct {
	Part      Value `json:"part" yaml:"part"`
	Vendor    Value `json:"vendor" yaml:"vendor"`
	Product   Value `json:"product" yaml:"product"`
	Version   Value `json:"version" yaml:"version"`
	Update    Value `json:"update" yaml:"update"`
	Edition   Value `json:"edition" yaml:"edition"`
	Language  Value `json:"language" yaml:"language"`
	SWEdition Value `json:"sw_edition" yaml:"sw_edition"`
	TargetSW  Value `json:"target_sw" yaml:"target_sw"`
	TargetHW  Value `json:"target_hw" yaml:"target_hw"`
	Other     Value `json:"other" yaml:"other"`
}

// Attribute pairs an attribute name with its unbound value.
type Attribute struct {
	Name  string
	Value Value
}

// Attributes returns the eleven attributes in canonical order.
func (w *WFN) Attributes() []Attribute {
	return []Attribute{
		{AttrPart, w.Part},
		{AttrVendor, w.Vendor},
		{AttrProduct, w.Product},
		{AttrVersion, w.Version},
		{AttrUpdate, w.Update},
		{AttrEdition, w.Edition},
		{AttrLanguage, w.Language},
		{AttrSWEdition, w.SWEdition},
		{AttrTargetSW, w.TargetSW},
		{AttrTargetHW, w.TargetHW},
		{AttrOther, w.Other},
	}
}

// Get returns the value bound to the named attribute.
func (w *WFN) Get(name string) (Value, bool) {
	switch name {
	case AttrPart:
		return w.Part, true
	case AttrVendor:
		return w.Vendor, true
	case AttrProduct:
		return w.Product, true
	case AttrVersion:
		return w.Version, true
	case AttrUpdate:
		return w.Update, true
	case AttrEdition:
		return w.Edition, true
	case AttrLanguage:
		return w.Language, true
	case AttrSWEdition:
		return w.SWEdition, true
	case AttrTargetSW:
		return w.TargetSW, true
	case AttrTargetHW:
		return w.TargetHW, true
	case AttrOther:
		return w.Other, true
	default:
		return Value{}, false
	}
}
