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

// Package vm implements the asheetbly virtual machine.
//
// An asheetbly program is a spreadsheet. Each row is one instruction:
// the cell in the leftmost executed column names the opcode, and the
// cells to its right are its operands. Programs are usually loaded from
// CSV with Sheet.LoadCSV, with execution starting at A1.
//
// The machine has an operand stack of number-or-text values, a return
// address stack, and a single condition flag. CALL reserves the topmost
// n values as the callee's visible stack by pushing a frame boundary;
// an attempt to reach below the boundary fails the run instead of
// silently reading the caller's values.
//
// Cells are re-read from the sheet on every fetch. Programs may rewrite
// their own cells with STORE_CELL, including cells that are later
// executed, and the modified text is what runs.
//
// User interaction for the IN and OUT opcodes goes through the Console
// interface, so hosts can script input and capture output. The package
// examples and cmd/asheetbly show the typical wiring.
package vm
