// This file is part of asheetbly - https://github.com/MineRobber9000/asheetbly
//
// Copyright 2025 MineRobber9000
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

package vm

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// Address identifies a single cell by its 1-based column and row.
type Address struct {
	Col, Row int
}

var a1Notation = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ParseA1 converts spreadsheet A1 notation ("A1", "z9", "AA10") into an
// Address. Letters are case-insensitive and the row must be at least 1.
func ParseA1(s string) (Address, error) {
	m := a1Notation.FindStringSubmatch(s)
	if m == nil {
		return Address{}, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Address{}, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}
	return Address{Col: lettersToIndex(m[1]), Row: row}, nil
}

// FormatA1 converts an Address into A1 notation. Both coordinates must
// be positive.
func FormatA1(a Address) (string, error) {
	if a.Col < 1 || a.Row < 1 {
		return "", errors.Wrapf(ErrInvalidAddress, "(%d,%d)", a.Col, a.Row)
	}
	return indexToLetters(a.Col) + strconv.Itoa(a.Row), nil
}

// String renders the address in A1 notation, falling back to raw
// coordinates when they are out of range. Meant for diagnostics; use
// FormatA1 when the error matters.
func (a Address) String() string {
	s, err := FormatA1(a)
	if err != nil {
		return fmt.Sprintf("(%d,%d)", a.Col, a.Row)
	}
	return s
}

// lettersToIndex decodes a bijective base-26 column name. The caller
// guarantees the input contains only ASCII letters.
func lettersToIndex(letters string) int {
	n := 0
	for _, c := range letters {
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		n = n*26 + int(c-'A') + 1
	}
	return n
}

// indexToLetters encodes a positive column index in bijective base-26:
// there is no zero digit, so column 26 is "Z" and column 27 is "AA".
func indexToLetters(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append(b, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
