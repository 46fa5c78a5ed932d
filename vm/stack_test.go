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
	"testing"

	"github.com/pkg/errors"

	"github.com/MineRobber9000/asheetbly/vm"
)

func TestStackPushPop(t *testing.T) {
	s := vm.NewStack()
	s.Push(vm.Number(1))
	s.Push(vm.Number(2))
	s.Push(vm.Number(3))
	if s.Depth() != 3 {
		t.Fatalf("depth = %d, want 3", s.Depth())
	}
	v, err := s.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(vm.Number(3)) {
		t.Errorf("pop = %v, want 3", v)
	}
	vs, err := s.PopN(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 || !vs[0].Equal(vm.Number(1)) || !vs[1].Equal(vm.Number(2)) {
		t.Errorf("popN(2) = %v, want [1 2] bottom to top", vs)
	}
}

func TestStackUnderflow(t *testing.T) {
	s := vm.NewStack()
	if _, err := s.Pop(); errors.Cause(err) != vm.ErrStackUnderflow {
		t.Errorf("pop on empty: got %v, want ErrStackUnderflow", err)
	}
	s.Push(vm.Number(1))
	if _, err := s.PopN(2); errors.Cause(err) != vm.ErrStackUnderflow {
		t.Errorf("popN(2) with one value: got %v, want ErrStackUnderflow", err)
	}
	if _, err := s.Peek(2); errors.Cause(err) != vm.ErrStackUnderflow {
		t.Errorf("peek(2) with one value: got %v, want ErrStackUnderflow", err)
	}
}

func TestStackPeek(t *testing.T) {
	s := vm.NewStack()
	s.Push(vm.Number(10))
	s.Push(vm.Number(20))
	if v, err := s.Peek(1); err != nil || !v.Equal(vm.Number(20)) {
		t.Errorf("peek(1) = %v, %v", v, err)
	}
	if v, err := s.Peek(2); err != nil || !v.Equal(vm.Number(10)) {
		t.Errorf("peek(2) = %v, %v", v, err)
	}
	if s.Depth() != 2 {
		t.Errorf("peek modified depth: %d", s.Depth())
	}
}

func TestStackFrames(t *testing.T) {
	s := vm.NewStack()
	s.Push(vm.Number(1))
	s.Push(vm.Number(2))
	s.Push(vm.Number(3))

	// reserve the top value for the callee
	if err := s.PushFrame(1); err != nil {
		t.Fatal(err)
	}

	// the reserved value is reachable
	if v, err := s.Peek(1); err != nil || !v.Equal(vm.Number(3)) {
		t.Fatalf("peek(1) inside frame = %v, %v", v, err)
	}

	// anything below the boundary is not
	if _, err := s.PopN(2); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("popN(2) across frame: got %v, want ErrFrameViolation", err)
	}
	if _, err := s.Peek(2); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("peek(2) across frame: got %v, want ErrFrameViolation", err)
	}

	// pop the one reserved value, then the boundary blocks further pops
	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Pop(); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("pop at frame boundary: got %v, want ErrFrameViolation", err)
	}

	s.PopFrame()
	if v, err := s.Pop(); err != nil || !v.Equal(vm.Number(2)) {
		t.Errorf("pop after frame drop = %v, %v", v, err)
	}
}

func TestStackFrameNesting(t *testing.T) {
	s := vm.NewStack()
	s.Push(vm.Number(1))
	if err := s.PushFrame(0); err != nil {
		t.Fatal(err)
	}
	// a new frame may not reserve values below the enclosing boundary
	if err := s.PushFrame(1); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("overlapping frame: got %v, want ErrFrameViolation", err)
	}
	// reserving more values than the stack holds fails as well
	s2 := vm.NewStack()
	if err := s2.PushFrame(1); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("frame below stack bottom: got %v, want ErrFrameViolation", err)
	}
}

func TestStackFrameNegativeReserve(t *testing.T) {
	// a negative reserve count behaves like reserving nothing
	s := vm.NewStack()
	s.Push(vm.Number(1))
	if err := s.PushFrame(-3); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Pop(); errors.Cause(err) != vm.ErrFrameViolation {
		t.Errorf("pop below empty frame: got %v, want ErrFrameViolation", err)
	}
	s.PopFrame()
	if v, err := s.Pop(); err != nil || !v.Equal(vm.Number(1)) {
		t.Errorf("pop after frame drop = %v, %v", v, err)
	}
}

func TestStackPopFrameNoop(t *testing.T) {
	s := vm.NewStack()
	s.PopFrame() // no frame: nothing happens
	s.Push(vm.Number(1))
	if v, err := s.Pop(); err != nil || !v.Equal(vm.Number(1)) {
		t.Errorf("stack disturbed by no-op PopFrame: %v, %v", v, err)
	}
}
