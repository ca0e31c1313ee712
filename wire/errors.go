// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// ErrorCode classifies a ProtocolError.
type ErrorCode int

const (
	ErrBadMagic ErrorCode = iota
	ErrBadLength
	ErrUnknownMessageType
	ErrBadField
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadMagic:           "bad magic",
	ErrBadLength:          "bad length",
	ErrUnknownMessageType: "unknown message type",
	ErrBadField:           "bad field",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeStrings[c]; ok {
		return s
	}
	return "unknown error code"
}

// ProtocolError is returned by every Deserialize implementation in this
// package on malformed input.
type ProtocolError struct {
	ErrorCode   ErrorCode
	Description string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("wire: %s: %s", e.ErrorCode, e.Description)
}

func protocolErrorf(code ErrorCode, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}
