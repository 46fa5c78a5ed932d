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

package main

import (
	"fmt"
	"io"

	"github.com/MineRobber9000/asheetbly/vm"
)

// dump prints the machine state as the failing instruction saw it.
func dump(w io.Writer, i *vm.Instance) {
	if i == nil {
		return
	}
	fmt.Fprintf(w, "PC: %v (%v)\n", i.PC, i.Sheet().Read(i.PC))
	fmt.Fprintf(w, "Stack: %v\n", i.Data())
	fmt.Fprintf(w, "Calls: %v\n", i.Calls())
}
