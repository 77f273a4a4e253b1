// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration for
// machine-readable firetime reports.
//
// The firetime command writes JSON by default (--json) and CBOR on
// request (--format cbor, or --format diag for RFC 8949 diagnostic
// notation). The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2), so the same schedule and starting instant always produce
// identical bytes, and encodes fire times as RFC 3339 strings under
// tag 0 so their zone offsets survive.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
//
// # Struct Tag Rules
//
// Report types carry `json` tags only. fxamacker/cbor v2 reads `json`
// tags as a fallback when `cbor` tags are absent, so one tag controls
// field naming and omitempty for both formats. Never use both `cbor`
// and `json` tags on the same field.
package codec
