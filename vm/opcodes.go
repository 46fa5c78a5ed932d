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

import "strings"

// Opcode identifies one of the machine's instructions. Each instruction
// is named by the text of the cell under the instruction pointer;
// OpInvalid stands for names with no matching instruction.
type Opcode int

// asheetbly Virtual Machine Opcodes.
const (
	OpInvalid Opcode = iota - 1
	OpHalt
	OpLoadCell
	OpStoreCell
	OpDrop
	OpDup
	OpOver
	OpSwap
	OpAdd
	OpSub
	OpMult
	OpDiv
	OpFdiv
	OpMod
	OpUpper
	OpLower
	OpConcat
	OpIn
	OpOut
	OpTest
	OpCompare
	OpLt
	OpGt
	OpInvertCond
	OpJump
	OpJumpIf
	OpCall
	OpCallIf
	OpReturn
	OpRand
	OpRandint
)

var opcodes = [...]string{
	"HALT",
	"LOAD_CELL",
	"STORE_CELL",
	"DROP",
	"DUP",
	"OVER",
	"SWAP",
	"ADD",
	"SUB",
	"MULT",
	"DIV",
	"FDIV",
	"MOD",
	"UPPER",
	"LOWER",
	"CONCAT",
	"IN",
	"OUT",
	"TEST",
	"COMPARE",
	"LT",
	"GT",
	"INVERT_COND",
	"JUMP",
	"JUMP_IF",
	"CALL",
	"CALL_IF",
	"RETURN",
	"RAND",
	"RANDINT",
}

var opcodeIndex = make(map[string]Opcode)

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Opcode(i)
	}
}

// ParseOpcode resolves an opcode name, case-insensitively. It returns
// OpInvalid for unknown names.
func ParseOpcode(name string) Opcode {
	if op, ok := opcodeIndex[strings.ToUpper(name)]; ok {
		return op
	}
	return OpInvalid
}

// String returns the opcode's canonical name.
func (op Opcode) String() string {
	if op < 0 || int(op) >= len(opcodes) {
		return "INVALID"
	}
	return opcodes[op]
}
