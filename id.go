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

// ID is a request identifier that is safe to place in an HTTP header value.
//
// An ID only holds bytes in the printable ASCII range 0x20-0x7E and never
// starts or ends with a space. The zero
// value is the absent identifier; use [New] or [Must] to build one.
type ID struct {
	value string
}

// New validates s and wraps it as an [ID].
//
// It returns [ErrEmpty] for the empty string and an [*InvalidCharError] for
// the first byte outside the printable ASCII range. Control characters,
// including TAB, DEL and any non-ASCII byte are rejected. Spaces are allowed
// inside the identifier but not at either end, where net/http would trim
// them from the header value.
func New(s string) (ID, error) {
	if s == "" {
		return ID{}, ErrEmpty
	}
	for i := range len(s) {
		if !isPrintable(s[i]) {
			return ID{}, &InvalidCharError{Value: s, Index: i, Char: s[i]}
		}
	}
	if s[0] == ' ' {
		return ID{}, &InvalidCharError{Value: s, Index: 0, Char: ' '}
	}
	if last := len(s) - 1; s[last] == ' ' {
		return ID{}, &InvalidCharError{Value: s, Index: last, Char: ' '}
	}

	return ID{value: s}, nil
}

// Must is like [New] but panics if s is not a valid identifier.
//
// Generators use Must on their own output: a rejected value there is a
// formatting defect, not bad input, and must not be replaced by a
// placeholder.
func Must(s string) ID {
	id, err := New(s)
	if err != nil {
		panic(err)
	}

	return id
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// String returns the identifier text.
func (id ID) String() string {
	return id.value
}

// IsZero reports whether id is the absent identifier.
func (id ID) IsZero() bool {
	return id.value == ""
}

// MarshalText implements [encoding.TextMarshaler] so an ID renders as its
// text in structured logs and JSON.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.value), nil
}
