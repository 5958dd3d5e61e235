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

// Package annotate describes what an EVM instruction does to the machine, for display
// in a debugger. It names the stack slots read by an instruction and resolves the
// memory word accessed by MLOAD and MSTORE.
package annotate

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/fjl/opview/internal/evm"
	"github.com/fjl/opview/internal/set"
)

// Operand names a stack slot read by an instruction.
// Index zero is the top of the stack.
type Operand struct {
	Index int
	Label string
}

type operands = []Operand

func binary(x, y string) operands {
	return operands{{0, x}, {1, y}}
}

func dup(n int) operands {
	return operands{{n - 1, "dup_value"}}
}

func swap(n int) operands {
	return operands{{0, "a"}, {n, "swap_value"}}
}

var (
	copyOperands = operands{{0, "destOffset"}, {1, "offset"}, {2, "size"}}
	callOperands = operands{
		{0, "gas"},
		{1, "address"},
		{2, "value"},
		{3, "argsOffset"},
		{4, "argsSize"},
		{5, "retOffset"},
		{6, "retSize"},
	}
	// DELEGATECALL and STATICCALL do not transfer value.
	callNoValueOperands = operands{
		{0, "gas"},
		{1, "address"},
		{2, "argsOffset"},
		{3, "argsSize"},
		{4, "retOffset"},
		{5, "retSize"},
	}
)

// operandTable holds the named stack inputs of every opcode.
// Opcodes without an entry read no named operands.
var operandTable = [256]operands{
	vm.ADD:        binary("a", "b"),
	vm.MUL:        binary("a", "b"),
	vm.SUB:        binary("a", "b"),
	vm.DIV:        binary("a", "b"),
	vm.SDIV:       binary("a", "b"),
	vm.MOD:        binary("a", "b"),
	vm.SMOD:       binary("a", "b"),
	vm.ADDMOD:     {{0, "a"}, {1, "b"}, {2, "N"}},
	vm.MULMOD:     {{0, "a"}, {1, "b"}, {2, "N"}},
	vm.EXP:        binary("a", "exponent"),
	vm.SIGNEXTEND: binary("b", "x"),
	vm.LT:         binary("a", "b"),
	vm.GT:         binary("a", "b"),
	vm.SLT:        binary("a", "b"),
	vm.SGT:        binary("a", "b"),
	vm.EQ:         binary("a", "b"),
	vm.ISZERO:     {{0, "a"}},
	vm.AND:        binary("a", "b"),
	vm.OR:         binary("a", "b"),
	vm.XOR:        binary("a", "b"),
	vm.NOT:        {{0, "a"}},
	vm.BYTE:       binary("i", "x"),
	vm.SHL:        binary("shift", "value"),
	vm.SHR:        binary("shift", "value"),
	vm.SAR:        binary("shift", "value"),

	vm.KECCAK256:      binary("offset", "size"),
	vm.BALANCE:        {{0, "address"}},
	vm.CALLDATALOAD:   {{0, "offset"}},
	vm.CALLDATACOPY:   copyOperands,
	vm.CODECOPY:       copyOperands,
	vm.EXTCODESIZE:    {{0, "address"}},
	vm.EXTCODECOPY:    {{0, "address"}, {1, "destOffset"}, {2, "offset"}, {3, "size"}},
	vm.RETURNDATACOPY: copyOperands,
	vm.EXTCODEHASH:    {{0, "address"}},
	vm.BLOCKHASH:      {{0, "blockNumber"}},

	vm.POP:     {{0, "y"}},
	vm.MLOAD:   {{0, "offset"}},
	vm.MSTORE:  binary("offset", "value"),
	vm.MSTORE8: binary("offset", "value"),
	vm.SLOAD:   {{0, "key"}},
	vm.SSTORE:  binary("key", "value"),
	vm.JUMP:    {{0, "jump_to"}},
	vm.JUMPI:   binary("jump_to", "if"),

	vm.DUP1:  dup(1),
	vm.DUP2:  dup(2),
	vm.DUP3:  dup(3),
	vm.DUP4:  dup(4),
	vm.DUP5:  dup(5),
	vm.DUP6:  dup(6),
	vm.DUP7:  dup(7),
	vm.DUP8:  dup(8),
	vm.DUP9:  dup(9),
	vm.DUP10: dup(10),
	vm.DUP11: dup(11),
	vm.DUP12: dup(12),
	vm.DUP13: dup(13),
	vm.DUP14: dup(14),
	vm.DUP15: dup(15),
	vm.DUP16: dup(16),

	vm.SWAP1:  swap(1),
	vm.SWAP2:  swap(2),
	vm.SWAP3:  swap(3),
	vm.SWAP4:  swap(4),
	vm.SWAP5:  swap(5),
	vm.SWAP6:  swap(6),
	vm.SWAP7:  swap(7),
	vm.SWAP8:  swap(8),
	vm.SWAP9:  swap(9),
	vm.SWAP10: swap(10),
	vm.SWAP11: swap(11),
	vm.SWAP12: swap(12),
	vm.SWAP13: swap(13),
	vm.SWAP14: swap(14),
	vm.SWAP15: swap(15),
	vm.SWAP16: swap(16),

	vm.LOG0: {{0, "offset"}, {1, "size"}},
	vm.LOG1: {{0, "offset"}, {1, "size"}, {2, "topic"}},
	vm.LOG2: {{0, "offset"}, {1, "size"}, {2, "topic1"}, {3, "topic2"}},
	vm.LOG3: {{0, "offset"}, {1, "size"}, {2, "topic1"}, {3, "topic2"}, {4, "topic3"}},
	vm.LOG4: {{0, "offset"}, {1, "size"}, {2, "topic1"}, {3, "topic2"}, {4, "topic3"}, {5, "topic4"}},

	vm.CREATE:       {{0, "value"}, {1, "offset"}, {2, "size"}},
	vm.CALL:         callOperands,
	vm.CALLCODE:     callOperands,
	vm.RETURN:       binary("offset", "size"),
	vm.DELEGATECALL: callNoValueOperands,
	vm.CREATE2:      {{0, "value"}, {1, "offset"}, {2, "size"}, {3, "salt"}},
	vm.STATICCALL:   callNoValueOperands,
	vm.REVERT:       binary("offset", "size"),
	vm.SELFDESTRUCT: {{0, "address"}},
}

func init() {
	checkOperandTable()
}

// checkOperandTable verifies that operands only name slots consumed by the
// instruction, and that labels are unique per instruction.
func checkOperandTable() {
	for code, ops := range operandTable {
		if len(ops) == 0 {
			continue
		}
		def := evm.OpByCode(byte(code))
		if def == nil {
			panic(fmt.Sprintf("BUG: operands defined for unknown opcode %#x", code))
		}
		labels := make(set.Set[string], len(ops))
		for _, o := range ops {
			if o.Index < 0 || o.Index >= def.In {
				panic(fmt.Sprintf("BUG: %s operand %q at slot %d, but op reads %d items", def.Name, o.Label, o.Index, def.In))
			}
			if labels.Includes(o.Label) {
				panic("BUG: " + def.Name + " has duplicate operand " + o.Label)
			}
			labels.Add(o.Label)
		}
	}
}

// AffectedStackItems returns the stack slots read by the instruction, top of stack
// first. Only plain opcode instructions have operands; the result is empty for all
// other instruction kinds.
func AffectedStackItems(ins Instruction) []Operand {
	op, ok := ins.OpCode()
	if !ok {
		return nil
	}
	return OperandsOf(op)
}

// OperandsOf returns the named stack inputs of an opcode.
// The returned slice can be modified by the caller.
func OperandsOf(op vm.OpCode) []Operand {
	return slices.Clone(operandTable[op])
}

// Label returns the name of stack slot i as read by op.
func Label(op vm.OpCode, i int) (string, bool) {
	for _, o := range operandTable[op] {
		if o.Index == i {
			return o.Label, true
		}
	}
	return "", false
}
