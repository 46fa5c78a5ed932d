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

import "github.com/pkg/errors"

// Error kinds reported by the VM. All of them terminate the current run;
// match against them with errors.Cause.
var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidOpcode   = errors.New("invalid opcode")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrFrameViolation  = errors.New("frame violation")
	ErrArithmetic      = errors.New("arithmetic error")
	ErrInvalidArgument = errors.New("invalid argument")
)
