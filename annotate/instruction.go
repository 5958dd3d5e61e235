// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package annotate

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"
)

// InstructionKind identifies the variant of an Instruction.
type InstructionKind uint8

const (
	// KindOpCode is a plain opcode without immediate data.
	KindOpCode InstructionKind = iota
	// KindPush is a PUSHx opcode with its immediate data.
	KindPush
	// KindCheatcode is a debugger cheatcode call, identified by its selector.
	KindCheatcode
)

func (k InstructionKind) String() string {
	switch k {
	case KindOpCode:
		return "opcode"
	case KindPush:
		return "push"
	case KindCheatcode:
		return "cheatcode"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Instruction is one decoded execution step.
//
// The zero value is the plain opcode STOP.
type Instruction struct {
	kind     InstructionKind
	op       vm.OpCode
	data     []byte
	selector [4]byte
}

// OpCodeInstruction creates a plain opcode instruction.
func OpCodeInstruction(op vm.OpCode) Instruction {
	return Instruction{kind: KindOpCode, op: op}
}

// PushInstruction creates a push instruction carrying immediate data.
// The data is not copied.
func PushInstruction(op vm.OpCode, data []byte) Instruction {
	return Instruction{kind: KindPush, op: op, data: data}
}

// CheatcodeInstruction creates a cheatcode instruction.
func CheatcodeInstruction(selector [4]byte) Instruction {
	return Instruction{kind: KindCheatcode, selector: selector}
}

// Kind returns the instruction variant.
func (ins Instruction) Kind() InstructionKind {
	return ins.kind
}

// OpCode returns the opcode of plain opcode instructions.
// For all other kinds, ok is false.
func (ins Instruction) OpCode() (op vm.OpCode, ok bool) {
	if ins.kind != KindOpCode {
		return 0, false
	}
	return ins.op, true
}

// PushOp returns the opcode and immediate data of push instructions.
func (ins Instruction) PushOp() (op vm.OpCode, data []byte, ok bool) {
	if ins.kind != KindPush {
		return 0, nil, false
	}
	return ins.op, ins.data, true
}

// Selector returns the selector of cheatcode instructions.
func (ins Instruction) Selector() (sel [4]byte, ok bool) {
	if ins.kind != KindCheatcode {
		return sel, false
	}
	return ins.selector, true
}

// Size returns the number of code bytes occupied by the instruction.
// Cheatcodes do not occupy any code.
func (ins Instruction) Size() int {
	switch ins.kind {
	case KindOpCode:
		return 1
	case KindPush:
		return 1 + len(ins.data)
	default:
		return 0
	}
}

func (ins Instruction) String() string {
	switch ins.kind {
	case KindOpCode:
		return ins.op.String()
	case KindPush:
		if len(ins.data) == 0 {
			return ins.op.String()
		}
		return fmt.Sprintf("%v %#x", ins.op, ins.data)
	case KindCheatcode:
		return fmt.Sprintf("cheatcode %#x", ins.selector[:])
	default:
		return ins.kind.String()
	}
}

// Name returns the lowercase mnemonic of the instruction.
func (ins Instruction) Name() string {
	switch ins.kind {
	case KindOpCode, KindPush:
		return strings.ToLower(ins.op.String())
	default:
		return ins.kind.String()
	}
}
