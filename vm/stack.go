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

// Stack is the operand stack: a sequence of values plus frame boundaries
// recorded as depth snapshots. No operation may read or remove a value
// below the topmost boundary, which is how a subroutine is confined to
// the arguments reserved for it by CALL.
type Stack struct {
	values []Value
	frames []int
}

// NewStack returns an empty stack with no frame boundaries.
func NewStack() *Stack { return &Stack{} }

// Depth returns the number of values on the stack, all frames included.
func (s *Stack) Depth() int { return len(s.values) }

// Values returns the stack contents, bottom first. The slice aliases the
// stack's backing array; treat it as read-only.
func (s *Stack) Values() []Value { return s.values }

// frameTop is the depth of the active frame boundary, 0 when no frame
// has been pushed.
func (s *Stack) frameTop() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1]
}

// ensure checks that n values can be read or removed from the top
// without crossing the active frame boundary.
func (s *Stack) ensure(n int) error {
	if len(s.values) < n {
		return errors.Wrapf(ErrStackUnderflow, "need %d values, have %d", n, len(s.values))
	}
	if len(s.values)-n < s.frameTop() {
		return errors.Wrapf(ErrFrameViolation, "need %d values, %d above frame", n, len(s.values)-s.frameTop())
	}
	return nil
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

// Pop removes and returns the topmost value.
func (s *Stack) Pop() (Value, error) {
	if err := s.ensure(1); err != nil {
		return Value{}, err
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

// PopN atomically removes the n topmost values and returns them in
// bottom-to-top order.
func (s *Stack) PopN(n int) ([]Value, error) {
	if err := s.ensure(n); err != nil {
		return nil, err
	}
	vs := append([]Value(nil), s.values[len(s.values)-n:]...)
	s.values = s.values[:len(s.values)-n]
	return vs, nil
}

// Peek returns the n-th value from the top (1 = top) without removing
// it, under the same underflow and frame rules as Pop.
func (s *Stack) Peek(n int) (Value, error) {
	if err := s.ensure(n); err != nil {
		return Value{}, err
	}
	return s.values[len(s.values)-n], nil
}

// PushFrame marks a new frame boundary reserving the args most recently
// pushed values as the callee's visible stack.
func (s *Stack) PushFrame(args int) error {
	if args < 0 {
		args = 0
	}
	top := len(s.values) - args
	if top < s.frameTop() {
		return errors.Wrapf(ErrFrameViolation, "cannot reserve %d of %d values", args, len(s.values)-s.frameTop())
	}
	s.frames = append(s.frames, top)
	return nil
}

// PopFrame discards the most recent frame boundary, exposing the
// enclosing frame's view again. Values are left untouched. Popping with
// no active frame is a no-op.
func (s *Stack) PopFrame() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}
