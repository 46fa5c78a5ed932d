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
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is a single cell or stack value: either a number or text, never
// both. The zero Value is blank text.
type Value struct {
	num   float64
	text  string
	isNum bool
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// Text returns a textual Value. The text is kept verbatim even when it
// would parse as a number; sheet storage applies Interpret on write.
func Text(s string) Value { return Value{text: s} }

// Interpret applies the storage interpretation rule to raw text: if it
// parses as a number it becomes a Number, otherwise it stays Text.
func Interpret(s string) Value {
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Number(f)
	}
	return Text(s)
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool { return v.isNum }

// Number returns the numeric form of the value. There is no implicit
// coercion: ok is false for text, even numeric-looking text.
func (v Value) Number() (f float64, ok bool) {
	return v.num, v.isNum
}

// Text returns the textual form of the value. This is total: numbers
// render the way a dynamically typed runtime prints floats, so integral
// values keep a trailing ".0" (42 displays as "42.0", 1e6 as
// "1000000.0") and scientific notation only appears outside the
// [1e-4, 1e16) magnitude window.
func (v Value) Text() string {
	if !v.isNum {
		return v.text
	}
	f := v.num
	if a := math.Abs(f); f == 0 || (a >= 1e-4 && a < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is the display form, identical to Text.
func (v Value) String() string { return v.Text() }

// Equal reports value equality. A number never equals text.
func (v Value) Equal(o Value) bool {
	if v.isNum != o.isNum {
		return false
	}
	if v.isNum {
		return v.num == o.num
	}
	return v.text == o.text
}

// less reports v < o. Ordering is only defined within a variant;
// ordering a number against text fails.
func (v Value) less(o Value) (bool, error) {
	if v.isNum != o.isNum {
		return false, errors.Wrapf(ErrArithmetic, "cannot order %q against %q", v.Text(), o.Text())
	}
	if v.isNum {
		return v.num < o.num, nil
	}
	return v.text < o.text, nil
}
