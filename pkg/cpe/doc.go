// Package cpe provides unbinding of CPE 2.3 formatted strings into
// their Well-Formed Name (WFN) attributes.
//
// CPE (Common Platform Enumeration) is a standardized identifier for
// software, hardware, and operating system products, defined in
// NISTIR 7695. A formatted string binds eleven WFN attributes into a
// single colon-delimited string:
//
//	cpe:2.3:<part>:<vendor>:<product>:<version>:<update>:<edition>:<language>:<sw_edition>:<target_sw>:<target_hw>:<other>
//
// Where:
//   - part: a (application), h (hardware) or o (operating system)
//   - the remaining ten segments are attribute values, each a run of
//     non-colon characters (possibly empty)
//
// Unbinding converts each segment into one of three value forms:
//
//	*            -> ANY (the attribute may take any value)
//	-            -> NA (the attribute is not applicable)
//	anything else -> a quoted literal (see below)
//
// # Quoting
//
// Literal segments are re-quoted per the formatted string binding
// grammar (NISTIR 7695, 6.2.3). Letters, digits and underscore pass
// through unchanged; every other character is prefixed with a
// backslash. Two wildcard characters may remain unquoted under
// placement rules: an asterisk only at the first or last position of a
// segment, and a question mark only at a boundary or within a
// contiguous leading or trailing run. Already-quoted pairs (backslash
// followed by any character) are copied through verbatim.
//
// # Example
//
//	wfn, err := cpe.Unbind("cpe:2.3:a:mozilla:firefox:esr-78.16.0:*:*:*:*:*:*:*")
//	// wfn.Vendor  -> literal "mozilla"
//	// wfn.Version -> literal `esr\-78\.16\.0`
//	// wfn.Update  -> ANY
//
// # Errors
//
// All failures are deterministic input-validation errors and abort the
// whole parse; no partial WFN is ever returned. They wrap one of the
// package sentinels ([ErrMalformedCPE], [ErrMissingAttribute],
// [ErrWildcardPlacement], [ErrSingleCharPlacement]) so callers can
// classify them with errors.Is.
//
// The package performs no I/O and keeps no state between calls;
// concurrent use needs no coordination.
package cpe
