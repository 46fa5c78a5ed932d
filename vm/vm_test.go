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

package vm_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/MineRobber9000/asheetbly/vm"
)

// countdown prints its counter until it reaches zero: push 3, then
// loop { print, subtract 1 } while the result is non-zero.
var countdown = [][]string{
	{"LOAD_CELL", "C1", "3"},
	{"DUP"},
	{"OUT"},
	{"LOAD_CELL", "C4", "1"},
	{"SUB"},
	{"TEST"},
	{"INVERT_COND"},
	{"JUMP_IF", "A2"},
	{"HALT"},
}

func TestCountdownProgram(t *testing.T) {
	con := &scriptConsole{}
	i := setup(t, countdown, nil, vm.WithConsole(con))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	want := []string{"3.0", "2.0", "1.0"}
	if !reflect.DeepEqual(con.out, want) {
		t.Errorf("output = %q, want %q", con.out, want)
	}
	if got := i.Data(); len(got) != 1 || !got[0].Equal(num(0)) {
		t.Errorf("final stack = %v, want [0.0]", got)
	}
}

// The subroutine scenario: CALL reserves one argument for the callee,
// which returns immediately. The argument survives, the return stack
// drains, and execution resumes on the row after the CALL.
func TestSubroutineFrames(t *testing.T) {
	rows := [][]string{
		{"CALL", "A3", "1"},
		{"HALT"},
		{"RETURN"},
	}
	i := setup(t, rows, V{num(10)})
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.PC != (vm.Address{Col: 1, Row: 2}) {
		t.Errorf("PC = %v, want A2", i.PC)
	}
	if len(i.Calls()) != 0 {
		t.Errorf("return stack not drained: %v", i.Calls())
	}
	if got := i.Data(); len(got) != 1 || !got[0].Equal(num(10)) {
		t.Errorf("stack = %v, want [10.0]", got)
	}
}

// Nested calls: a subroutine computing (a+b)*2 from two reserved
// arguments, called from a wrapper subroutine.
func TestNestedCalls(t *testing.T) {
	rows := [][]string{
		{"CALL", "A4", "2"}, // outer call, both values reserved
		{"OUT"},
		{"HALT"},
		{"ADD"}, // a+b
		{"DUP"},
		{"CALL", "A8", "2"}, // inner call on the two copies
		{"RETURN"},
		{"ADD"}, // doubled
		{"RETURN"},
	}
	con := &scriptConsole{}
	i := setup(t, rows, V{num(2), num(3)}, vm.WithConsole(con))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if len(con.out) != 1 || con.out[0] != "10.0" {
		t.Errorf("output = %q, want [\"10.0\"]", con.out)
	}
}

func TestReset(t *testing.T) {
	i := setup(t, [][]string{{"TEST"}, {"CALL", "A4", "0"}, {"HALT"}, {"RETURN"}}, V{num(0)})
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.PC == (vm.Address{Col: 1, Row: 1}) {
		t.Fatal("program did not advance")
	}
	i.Reset()
	if i.PC != (vm.Address{Col: 1, Row: 1}) {
		t.Errorf("PC after reset = %v, want A1", i.PC)
	}
	if len(i.Data()) != 0 || len(i.Calls()) != 0 || i.Cond() {
		t.Errorf("state after reset: stack %v, calls %v, cond %v", i.Data(), i.Calls(), i.Cond())
	}
	// sheet contents survive a reset
	if got := i.Sheet().Read(vm.Address{Col: 1, Row: 1}); !got.Equal(txt("TEST")) {
		t.Errorf("sheet disturbed by reset: %v", got)
	}
}

func TestStartAddress(t *testing.T) {
	rows := [][]string{
		{"FROBNICATE"},
		{"HALT"},
	}
	i := setup(t, rows, nil, vm.Start(vm.Address{Col: 1, Row: 2}))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if i.PC != (vm.Address{Col: 1, Row: 2}) {
		t.Errorf("PC = %v, want A2", i.PC)
	}
}

func TestStartA1(t *testing.T) {
	s := vm.NewSheet()
	if _, err := vm.New(s, vm.StartA1("B3")); err != nil {
		t.Fatal(err)
	}
	if _, err := vm.New(s, vm.StartA1("bogus")); err == nil {
		t.Error("StartA1(\"bogus\") accepted")
	}
	if _, err := vm.New(s, vm.Start(vm.Address{})); err == nil {
		t.Error("Start with zero address accepted")
	}
}

func TestTrace(t *testing.T) {
	var ops []vm.Opcode
	i := setup(t, [][]string{{"DUP"}, {"DROP"}, {"HALT"}}, V{num(1)},
		vm.Trace(func(pc vm.Address, op vm.Opcode) { ops = append(ops, op) }))
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	want := []vm.Opcode{vm.OpDup, vm.OpDrop}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("trace = %v, want %v", ops, want)
	}
	if i.InstructionCount() != 2 {
		t.Errorf("InstructionCount = %d, want 2", i.InstructionCount())
	}
}

func TestRunRows(t *testing.T) {
	con := &scriptConsole{}
	i, err := vm.RunRows([][]string{{"OUT"}}, vm.WithConsole(con))
	if err == nil {
		t.Fatal("OUT on an empty stack should fail")
	}
	if i == nil {
		t.Fatal("instance not returned on run failure")
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.csv")
	src := "LOAD_CELL,C1,99\nOUT\nHALT\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	con := &scriptConsole{}
	i, err := vm.RunFile(path, vm.WithConsole(con))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(con.out) != 1 || con.out[0] != "99.0" {
		t.Errorf("output = %q, want [\"99.0\"]", con.out)
	}
	if i.PC != (vm.Address{Col: 1, Row: 3}) {
		t.Errorf("PC = %v, want A3", i.PC)
	}
}

func TestRunFileMissing(t *testing.T) {
	if _, err := vm.RunFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("missing file accepted")
	}
}
