// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import "fmt"

// InvalidLengthError is returned by a fixed-width type's constructor when
// the supplied byte slice does not match the type's declared length.
type InvalidLengthError struct {
	Type     string
	Got      int
	Expected int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("primitives: invalid length for %s: got %d bytes, expected %d", e.Type, e.Got, e.Expected)
}

func invalidLength(typ string, got, expected int) error {
	return &InvalidLengthError{Type: typ, Got: got, Expected: expected}
}

// InvalidEncodingError is returned when a textual encoding (hex, decimal,
// address) fails to parse.
type InvalidEncodingError struct {
	Type   string
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("primitives: invalid %s encoding: %s", e.Type, e.Reason)
}

func invalidEncoding(typ, reason string) error {
	return &InvalidEncodingError{Type: typ, Reason: reason}
}

// InvalidAddressError is returned by ParseAddress when the input is not a
// well-formed nano-style address.
type InvalidAddressError struct {
	Reason string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("primitives: invalid address: %s", e.Reason)
}

func invalidAddress(reason string) error {
	return &InvalidAddressError{Reason: reason}
}
