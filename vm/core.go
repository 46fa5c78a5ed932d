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
	"math"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Run starts execution at the current instruction pointer and keeps
// fetching until a halting condition: a blank or numeric cell under the
// pointer, the HALT opcode, or a failing handler. On failure the PC is
// left on the instruction that failed.
//
// The sheet is re-read on every fetch, so self-modifying programs behave
// exactly as written; nothing is cached or compiled.
func (i *Instance) Run() error {
	i.insCount = 0
	for {
		cell := i.sheet.Read(i.PC)
		if cell.IsNumber() {
			return nil
		}
		name := cell.Text()
		if name == "" {
			return nil
		}
		op := ParseOpcode(name)
		if op == OpInvalid {
			return errors.Wrapf(ErrInvalidOpcode, "%s at %s", name, i.PC)
		}
		if op == OpHalt {
			return nil
		}
		if i.trace != nil {
			i.trace(i.PC, op)
		}
		jumped, err := i.step(op)
		if err != nil {
			return errors.Wrapf(err, "%s at %s", op, i.PC)
		}
		if !jumped {
			i.PC.Row++
		}
		i.insCount++
	}
}

// arg returns the address of the n-th operand of the instruction at the
// current PC: same row, n columns to the right.
func (i *Instance) arg(n int) Address {
	return Address{Col: i.PC.Col + n, Row: i.PC.Row}
}

// argAddress reads the n-th operand cell and parses its contents as an
// address.
func (i *Instance) argAddress(n int) (Address, error) {
	return ParseA1(i.sheet.Read(i.arg(n)).Text())
}

// step executes a single opcode. The returned flag reports whether the
// handler transferred control itself, in which case the caller must not
// auto-advance to the next row.
func (i *Instance) step(op Opcode) (jumped bool, err error) {
	switch op {
	case OpLoadCell:
		a, err := i.argAddress(1)
		if err != nil {
			return false, err
		}
		i.stack.Push(i.sheet.Read(a))
		return false, nil
	case OpStoreCell:
		a, err := i.argAddress(1)
		if err != nil {
			return false, err
		}
		v, err := i.stack.Pop()
		if err != nil {
			return false, err
		}
		i.sheet.Write(a, v)
		return false, nil
	case OpDrop:
		_, err := i.stack.Pop()
		return false, err
	case OpDup:
		v, err := i.stack.Peek(1)
		if err != nil {
			return false, err
		}
		i.stack.Push(v)
		return false, nil
	case OpOver:
		v, err := i.stack.Peek(2)
		if err != nil {
			return false, err
		}
		i.stack.Push(v)
		return false, nil
	case OpSwap:
		vs, err := i.stack.PopN(2)
		if err != nil {
			return false, err
		}
		i.stack.Push(vs[1])
		i.stack.Push(vs[0])
		return false, nil
	case OpAdd, OpSub, OpMult, OpDiv, OpFdiv, OpMod:
		return false, i.arith(op)
	case OpUpper:
		v, err := i.stack.Pop()
		if err != nil {
			return false, err
		}
		i.stack.Push(Text(strings.ToUpper(v.Text())))
		return false, nil
	case OpLower:
		v, err := i.stack.Pop()
		if err != nil {
			return false, err
		}
		i.stack.Push(Text(strings.ToLower(v.Text())))
		return false, nil
	case OpConcat:
		vs, err := i.stack.PopN(2)
		if err != nil {
			return false, err
		}
		i.stack.Push(Interpret(vs[0].Text() + vs[1].Text()))
		return false, nil
	case OpIn:
		prompt := strings.TrimRightFunc(i.sheet.Read(i.arg(1)).Text(), unicode.IsSpace)
		line, err := i.console.ReadLine(prompt + " ")
		if err != nil {
			return false, err
		}
		i.stack.Push(Interpret(line))
		return false, nil
	case OpOut:
		v, err := i.stack.Pop()
		if err != nil {
			return false, err
		}
		return false, i.console.WriteLine(v.Text())
	case OpTest:
		v, err := i.stack.Peek(1)
		if err != nil {
			return false, err
		}
		i.cond = v.Equal(Number(0))
		return false, nil
	case OpCompare, OpLt, OpGt:
		return false, i.compareOp(op)
	case OpInvertCond:
		i.cond = !i.cond
		return false, nil
	case OpJump:
		return i.jump()
	case OpJumpIf:
		if !i.cond {
			return false, nil
		}
		return i.jump()
	case OpCall:
		return i.call()
	case OpCallIf:
		if !i.cond {
			return false, nil
		}
		return i.call()
	case OpReturn:
		if len(i.rstack) == 0 {
			return false, errors.Wrap(ErrStackUnderflow, "return with no outstanding call")
		}
		i.PC = i.rstack[len(i.rstack)-1]
		i.rstack = i.rstack[:len(i.rstack)-1]
		i.stack.PopFrame()
		// the restored PC is the CALL row itself; the auto-advance
		// moves past it
		return false, nil
	case OpRand:
		lo, hi := 0.0, 1.0
		if f, ok := i.sheet.Read(i.arg(1)).Number(); ok {
			lo = f
		}
		if f, ok := i.sheet.Read(i.arg(2)).Number(); ok {
			hi = f
		}
		i.stack.Push(Number(lo + i.rng.Float64()*(hi-lo)))
		return false, nil
	case OpRandint:
		return false, i.randInt()
	}
	return false, errors.Wrapf(ErrInvalidOpcode, "%d", int(op))
}

// arith pops an operand pair bottom-to-top and pushes item1 OP item2.
// Both operands must be numbers.
func (i *Instance) arith(op Opcode) error {
	vs, err := i.stack.PopN(2)
	if err != nil {
		return err
	}
	a, aok := vs[0].Number()
	b, bok := vs[1].Number()
	if !aok || !bok {
		return errors.Wrapf(ErrArithmetic, "%s on %q and %q", op, vs[0].Text(), vs[1].Text())
	}
	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMult:
		r = a * b
	case OpDiv, OpFdiv:
		if b == 0 {
			return errors.Wrap(ErrArithmetic, "division by zero")
		}
		r = a / b
	case OpMod:
		if b == 0 {
			return errors.Wrap(ErrArithmetic, "modulo by zero")
		}
		r = math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b // remainder takes the divisor's sign
		}
	}
	i.stack.Push(Number(r))
	return nil
}

// compareOp implements COMPARE, LT and GT. The operand may be an address
// or a literal: the resolve-and-compare attempt runs first, and any
// failure inside it falls back to comparing the two topmost stack values
// instead. Failures in the fallback propagate. None of these pop.
func (i *Instance) compareOp(op Opcode) error {
	raw := i.sheet.Read(i.arg(1))
	if a, err := ParseA1(raw.Text()); err == nil {
		if top, err := i.stack.Peek(1); err == nil {
			if res, err := compare(op, top, i.sheet.Read(a)); err == nil {
				i.cond = res
				return nil
			}
		}
	}
	second, err := i.stack.Peek(2)
	if err != nil {
		return err
	}
	top, err := i.stack.Peek(1)
	if err != nil {
		return err
	}
	res, err := compare(op, second, top)
	if err != nil {
		return err
	}
	i.cond = res
	return nil
}

func compare(op Opcode, a, b Value) (bool, error) {
	switch op {
	case OpLt:
		return a.less(b)
	case OpGt:
		return b.less(a)
	default: // OpCompare
		return a.Equal(b), nil
	}
}

func (i *Instance) jump() (bool, error) {
	a, err := i.argAddress(1)
	if err != nil {
		return false, err
	}
	i.PC = a
	return true, nil
}

func (i *Instance) call() (bool, error) {
	a, err := i.argAddress(1)
	if err != nil {
		return false, err
	}
	args := 0 // non-numeric or absent argument counts mean zero
	if f, ok := i.sheet.Read(i.arg(2)).Number(); ok {
		args = int(f)
	}
	if err := i.stack.PushFrame(args); err != nil {
		return false, err
	}
	i.rstack = append(i.rstack, i.PC)
	i.PC = a
	return true, nil
}

// randInt implements RANDINT: an inclusive integer range. A single
// numeric bound n means the range [1, n]; a second bound of zero reads
// as absent.
func (i *Instance) randInt() error {
	f, ok := i.sheet.Read(i.arg(1)).Number()
	if !ok {
		return errors.Wrap(ErrInvalidArgument, "RANDINT needs a numeric bound")
	}
	lo := int(f)
	hi := 0
	if g, ok := i.sheet.Read(i.arg(2)).Number(); ok {
		hi = int(g)
	}
	if hi == 0 {
		if lo == 0 {
			return errors.Wrap(ErrInvalidArgument, "RANDINT needs an upper bound")
		}
		lo, hi = 1, lo
	}
	if hi < lo {
		return errors.Wrapf(ErrInvalidArgument, "empty range [%d,%d]", lo, hi)
	}
	i.stack.Push(Number(float64(lo + i.rng.Intn(hi-lo+1))))
	return nil
}
