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

//go:build !integration

package requestid

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantIndex int
		wantChar  byte
	}{
		{name: "digits", input: "12345"},
		{name: "uuid", input: "9b2c0e4a-5d1f-4c7e-8a3b-2f6d1e0c9a47"},
		{name: "full printable range", input: "! \"#$%&'()*+,-./09:;<=>?@AZ[\\]^_`az{|}~"},
		{name: "inner space", input: "req 42"},
		{name: "single space", input: " ", wantErr: ErrInvalidCharacter, wantIndex: 0, wantChar: ' '},
		{name: "leading space", input: "  42", wantErr: ErrInvalidCharacter, wantIndex: 0, wantChar: ' '},
		{name: "trailing space", input: "42 ", wantErr: ErrInvalidCharacter, wantIndex: 2, wantChar: ' '},
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "newline", input: "abc\ndef", wantErr: ErrInvalidCharacter, wantIndex: 3, wantChar: '\n'},
		{name: "tab", input: "\tabc", wantErr: ErrInvalidCharacter, wantIndex: 0, wantChar: '\t'},
		{name: "nul", input: "a\x00", wantErr: ErrInvalidCharacter, wantIndex: 1, wantChar: 0},
		{name: "del", input: "ab\x7f", wantErr: ErrInvalidCharacter, wantIndex: 2, wantChar: 0x7f},
		{name: "non-ascii", input: "idé", wantErr: ErrInvalidCharacter, wantIndex: 2, wantChar: 0xc3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := New(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.input, id.String())
				assert.False(t, id.IsZero())
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, id.IsZero())

			var charErr *InvalidCharError
			if errors.As(err, &charErr) {
				assert.Equal(t, tt.input, charErr.Value)
				assert.Equal(t, tt.wantIndex, charErr.Index)
				assert.Equal(t, tt.wantChar, charErr.Char)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidCharacter)
			}
		})
	}
}

func TestInvalidCharError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "control character",
			input: "ab\ncd",
			want:  `requestid: invalid character '\n' at index 2 in "ab\ncd"`,
		},
		{
			name:  "trailing space",
			input: "ab ",
			want:  `requestid: invalid character ' ' at index 2 in "ab "`,
		},
		{
			name:  "utf-8 lead byte",
			input: "idé",
			want:  `requestid: invalid character '\xc3' at index 2 in "idé"`,
		},
		{
			name:  "lone high byte",
			input: "a\xff",
			want:  `requestid: invalid character '\xff' at index 1 in "a\xff"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", Must("ok").String())
	assert.PanicsWithError(t, ErrEmpty.Error(), func() { Must("") })
	assert.Panics(t, func() { Must("bad\r\n") })
}

func TestID_MarshalText(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(map[string]ID{"request_id": Must("42")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"request_id":"42"}`, string(b))

	var zero ID
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}
