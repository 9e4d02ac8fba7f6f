// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package requestid

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrInvalidCharacter indicates that an identifier contains a byte that
	// is not allowed in an HTTP header value.
	ErrInvalidCharacter = errors.New("requestid: invalid character")

	// ErrEmpty indicates that an identifier is the empty string.
	ErrEmpty = errors.New("requestid: empty identifier")
)

// InvalidCharError reports the first byte of an identifier that falls
// outside the printable ASCII range.
type InvalidCharError struct {
	// Value is the rejected identifier.
	Value string

	// Index is the byte offset of the offending character.
	Index int

	// Char is the offending byte.
	Char byte
}

// Error implements the error interface.
func (e *InvalidCharError) Error() string {
	return "requestid: invalid character " + quoteByte(e.Char) +
		" at index " + strconv.Itoa(e.Index) + " in " + strconv.Quote(e.Value)
}

// quoteByte quotes c as a character literal. Bytes above 0x7F are parts of
// multi-byte sequences and are shown in \x form.
func quoteByte(c byte) string {
	if c < utf8.RuneSelf {
		return strconv.QuoteRune(rune(c))
	}

	return `'\x` + strconv.FormatUint(uint64(c), 16) + `'`
}

// Is reports whether target is [ErrInvalidCharacter].
func (e *InvalidCharError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
