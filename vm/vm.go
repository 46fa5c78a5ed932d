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
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Instance represents one asheetbly interpreter driving one sheet.
type Instance struct {
	PC Address // Instruction Pointer

	sheet    *Sheet
	stack    *Stack
	rstack   []Address
	cond     bool
	start    Address
	insCount int64
	rng      *rand.Rand
	console  Console
	trace    TraceFunc
}

// TraceFunc is called once per fetch, after decoding and before the
// opcode executes.
type TraceFunc func(pc Address, op Opcode)

// Option interface
type Option func(*Instance) error

// Start sets the address execution begins at. The default is A1.
func Start(a Address) Option {
	return func(i *Instance) error {
		if a.Col < 1 || a.Row < 1 {
			return errors.Wrapf(ErrInvalidAddress, "start (%d,%d)", a.Col, a.Row)
		}
		i.start = a
		return nil
	}
}

// StartA1 sets the start address from A1 notation.
func StartA1(s string) Option {
	return func(i *Instance) error {
		a, err := ParseA1(s)
		if err != nil {
			return err
		}
		i.start = a
		return nil
	}
}

// WithConsole sets the Console used by the IN and OUT opcodes. The
// default wraps os.Stdin and os.Stdout.
func WithConsole(c Console) Option {
	return func(i *Instance) error {
		i.console = c
		return nil
	}
}

// RandSource sets the randomness source used by RAND and RANDINT. The
// default is seeded from the clock; tests set a fixed source.
func RandSource(src rand.Source) Option {
	return func(i *Instance) error {
		i.rng = rand.New(src)
		return nil
	}
}

// Trace registers fn to be called on every instruction fetch.
func Trace(fn TraceFunc) Option {
	return func(i *Instance) error {
		i.trace = fn
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates an interpreter executing the program held in sheet. The
// sheet is shared, not copied: STORE_CELL mutations are visible to the
// caller, and cells written from outside between runs are picked up on
// the next fetch.
func New(sheet *Sheet, opts ...Option) (*Instance, error) {
	i := &Instance{
		sheet: sheet,
		start: Address{Col: 1, Row: 1},
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.console == nil {
		i.console = NewConsole(os.Stdin, os.Stdout)
	}
	if i.rng == nil {
		i.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	i.Reset()
	return i, nil
}

// Reset returns the interpreter to its initial state: instruction
// pointer back at the start address, both stacks empty, condition flag
// cleared. Sheet contents are left untouched.
func (i *Instance) Reset() {
	i.PC = i.start
	i.stack = NewStack()
	i.rstack = i.rstack[:0]
	i.cond = false
	i.insCount = 0
}

// Push pushes v onto the operand stack.
func (i *Instance) Push(v Value) { i.stack.Push(v) }

// Pop pops the top of the operand stack.
func (i *Instance) Pop() (Value, error) { return i.stack.Pop() }

// Data returns the operand stack contents, bottom first. Re-slicing does
// not affect the instance; use Push and Pop to add or remove values.
func (i *Instance) Data() []Value { return i.stack.Values() }

// Calls returns the return-address stack, one entry per outstanding
// call, oldest first.
func (i *Instance) Calls() []Address { return i.rstack }

// Cond returns the condition flag set by TEST, COMPARE, LT and GT.
func (i *Instance) Cond() bool { return i.cond }

// Sheet returns the sheet the instance executes from.
func (i *Instance) Sheet() *Sheet { return i.sheet }

// InstructionCount returns the number of instructions executed by the
// last call to Run.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// RunRows builds a sheet from pre-split rows of text and runs it to
// completion. The finished instance is returned for inspection even when
// the run fails.
func RunRows(rows [][]string, opts ...Option) (*Instance, error) {
	s := NewSheet()
	s.LoadRows(rows)
	i, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}

// RunFile loads the CSV program at path and runs it to completion.
func RunFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open program")
	}
	defer f.Close()
	s := NewSheet()
	if err := s.LoadCSV(f); err != nil {
		return nil, err
	}
	i, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	return i, i.Run()
}
