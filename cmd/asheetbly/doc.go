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

// asheetbly runs a spreadsheet program from a CSV file.
//
// Usage:
//
//	asheetbly [options] program.csv
//
// The program is loaded into the sheet one field per cell and execution
// starts at A1 (override with -start). The IN opcode reads a line from
// the terminal, with editing and history when stdin is a tty; the OUT
// opcode prints to stdout.
//
// Options:
//
//	-start address
//		start execution at address (A1 notation, default A1)
//	-seed n
//		seed for RAND and RANDINT; 0 seeds from the clock
//	-trace
//		log every instruction to stderr as it executes
//	-debug
//		on failure, print the full error chain and dump the PC,
//		operand stack and call stack
package main
