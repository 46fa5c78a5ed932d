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
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// Sheet is the machine's only memory: a sparse grid of cells addressed
// by 1-based column and row. Unwritten cells read back as blank text.
// Programs may freely rewrite cells they later execute; the interpreter
// re-reads the sheet on every fetch.
type Sheet struct {
	cells map[Address]Value
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{cells: make(map[Address]Value)}
}

// Read returns the value stored at a, or blank text when unset.
func (s *Sheet) Read(a Address) Value {
	return s.ReadDefault(a, Value{})
}

// ReadDefault returns the value stored at a, or def when unset. The
// result is re-interpreted, so numeric-looking text always comes back as
// a number no matter how it was originally written.
func (s *Sheet) ReadDefault(a Address, def Value) Value {
	v, ok := s.cells[a]
	if !ok {
		v = def
	}
	return interpret(v)
}

// Write stores v at a, applying the same interpretation rule as Read so
// that reads are idempotent.
func (s *Sheet) Write(a Address, v Value) {
	s.cells[a] = interpret(v)
}

func interpret(v Value) Value {
	if v.IsNumber() {
		return v
	}
	return Interpret(v.text)
}

// LoadRows bulk-loads a grid of text fields, one cell per field: field j
// of row i lands at column j+1, row i+1. Rows may be ragged.
func (s *Sheet) LoadRows(rows [][]string) {
	for r, row := range rows {
		for c, field := range row {
			s.Write(Address{Col: c + 1, Row: r + 1}, Text(field))
		}
	}
}

// LoadCSV reads a CSV program from r and bulk-loads it starting at A1.
func (s *Sheet) LoadCSV(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // program rows are usually ragged
	rows, err := cr.ReadAll()
	if err != nil {
		return errors.Wrap(err, "sheet load")
	}
	s.LoadRows(rows)
	return nil
}
