// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/firetime/lib/codec"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
	FormatDiag = "diag"
)

// OutputFormat extends [JSONOutput] with --format, for commands whose
// results are worth feeding to other programs. "cbor" writes the
// deterministic CBOR encoding from lib/codec; "diag" writes its RFC 8949
// diagnostic notation. --json is shorthand for --format json.
type OutputFormat struct {
	JSONOutput
	Format string `json:"-" flag:"format" desc:"output format: text, json, cbor, or diag" default:"text"`
}

// Validate rejects unknown formats. Commands call it before doing any
// work so a typo does not cost a long computation.
func (o *OutputFormat) Validate() error {
	switch o.Format {
	case "", FormatText, FormatJSON, FormatCBOR, FormatDiag:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s, %s, %s, or %s)",
		o.Format, FormatText, FormatJSON, FormatCBOR, FormatDiag)
}

// Emit writes result in the selected machine format. It has the same
// contract as [JSONOutput.EmitJSON]: (false, nil) means the caller
// should print text.
func (o *OutputFormat) Emit(w io.Writer, result any) (bool, error) {
	if err := o.Validate(); err != nil {
		return true, err
	}
	format := o.Format
	if o.OutputJSON {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
		return true, WriteJSON(w, normalizeNilSlice(result))
	case FormatCBOR:
		data, err := codec.Marshal(normalizeNilSlice(result))
		if err != nil {
			return true, fmt.Errorf("encoding CBOR: %w", err)
		}
		_, err = w.Write(data)
		return true, err
	case FormatDiag:
		data, err := codec.Marshal(normalizeNilSlice(result))
		if err != nil {
			return true, fmt.Errorf("encoding CBOR: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return true, fmt.Errorf("rendering diagnostic notation: %w", err)
		}
		_, err = fmt.Fprintln(w, notation)
		return true, err
	default:
		return false, nil
	}
}
