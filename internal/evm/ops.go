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

// Package evm holds static metadata about EVM opcodes.
package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/fjl/opview/internal/set"
)

// Op is an EVM opcode.
type Op struct {
	Name string
	Code vm.OpCode

	// In is the number of stack items consumed, Out the number produced.
	In, Out int

	// Flags:
	// - Push is set for PUSHx
	// - Term is set for instructions that end execution
	// - Jump is set for all jumps
	// - Unconditional is set for unconditional jumps
	// - JumpDest is set for JUMPDEST
	Push, Term, Jump, Unconditional, JumpDest bool
}

// PushSize returns the number of immediate bytes following a PUSHx.
func (op *Op) PushSize() int {
	if !op.Push {
		return 0
	}
	return int(op.Code - vm.PUSH0)
}

// This is the list of all opcodes, except for the families
// which are added by computeOpTable.
var oplist = []*Op{
	{Code: vm.STOP, Term: true},
	{Code: vm.ADD, In: 2, Out: 1},
	{Code: vm.MUL, In: 2, Out: 1},
	{Code: vm.SUB, In: 2, Out: 1},
	{Code: vm.DIV, In: 2, Out: 1},
	{Code: vm.SDIV, In: 2, Out: 1},
	{Code: vm.MOD, In: 2, Out: 1},
	{Code: vm.SMOD, In: 2, Out: 1},
	{Code: vm.ADDMOD, In: 3, Out: 1},
	{Code: vm.MULMOD, In: 3, Out: 1},
	{Code: vm.EXP, In: 2, Out: 1},
	{Code: vm.SIGNEXTEND, In: 2, Out: 1},
	{Code: vm.LT, In: 2, Out: 1},
	{Code: vm.GT, In: 2, Out: 1},
	{Code: vm.SLT, In: 2, Out: 1},
	{Code: vm.SGT, In: 2, Out: 1},
	{Code: vm.EQ, In: 2, Out: 1},
	{Code: vm.ISZERO, In: 1, Out: 1},
	{Code: vm.AND, In: 2, Out: 1},
	{Code: vm.OR, In: 2, Out: 1},
	{Code: vm.XOR, In: 2, Out: 1},
	{Code: vm.NOT, In: 1, Out: 1},
	{Code: vm.BYTE, In: 2, Out: 1},
	{Code: vm.SHL, In: 2, Out: 1},
	{Code: vm.SHR, In: 2, Out: 1},
	{Code: vm.SAR, In: 2, Out: 1},

	{Code: vm.KECCAK256, In: 2, Out: 1},
	{Code: vm.ADDRESS, Out: 1},
	{Code: vm.BALANCE, In: 1, Out: 1},
	{Code: vm.ORIGIN, Out: 1},
	{Code: vm.CALLER, Out: 1},
	{Code: vm.CALLVALUE, Out: 1},
	{Code: vm.CALLDATALOAD, In: 1, Out: 1},
	{Code: vm.CALLDATASIZE, Out: 1},
	{Code: vm.CALLDATACOPY, In: 3},
	{Code: vm.CODESIZE, Out: 1},
	{Code: vm.CODECOPY, In: 3},
	{Code: vm.GASPRICE, Out: 1},
	{Code: vm.EXTCODESIZE, In: 1, Out: 1},
	{Code: vm.EXTCODECOPY, In: 4},
	{Code: vm.RETURNDATASIZE, Out: 1},
	{Code: vm.RETURNDATACOPY, In: 3},
	{Code: vm.EXTCODEHASH, In: 1, Out: 1},
	{Code: vm.BLOCKHASH, In: 1, Out: 1},
	{Code: vm.COINBASE, Out: 1},
	{Code: vm.TIMESTAMP, Out: 1},
	{Code: vm.NUMBER, Out: 1},
	{Code: vm.DIFFICULTY, Out: 1},
	{Code: vm.GASLIMIT, Out: 1},
	{Code: vm.CHAINID, Out: 1},
	{Code: vm.SELFBALANCE, Out: 1},
	{Code: vm.BASEFEE, Out: 1},
	{Code: vm.BLOBHASH, In: 1, Out: 1},
	{Code: vm.BLOBBASEFEE, Out: 1},

	{Code: vm.POP, In: 1},
	{Code: vm.MLOAD, In: 1, Out: 1},
	{Code: vm.MSTORE, In: 2},
	{Code: vm.MSTORE8, In: 2},
	{Code: vm.SLOAD, In: 1, Out: 1},
	{Code: vm.SSTORE, In: 2},
	{Code: vm.JUMP, In: 1, Jump: true, Unconditional: true},
	{Code: vm.JUMPI, In: 2, Jump: true},
	{Code: vm.PC, Out: 1},
	{Code: vm.MSIZE, Out: 1},
	{Code: vm.GAS, Out: 1},
	{Code: vm.JUMPDEST, JumpDest: true},
	{Code: vm.TLOAD, In: 1, Out: 1},
	{Code: vm.TSTORE, In: 2},
	{Code: vm.MCOPY, In: 3},

	// Call family
	{Code: vm.CREATE, In: 3, Out: 1},
	{Code: vm.CALL, In: 7, Out: 1},
	{Code: vm.CALLCODE, In: 7, Out: 1},
	{Code: vm.RETURN, In: 2, Term: true},
	{Code: vm.DELEGATECALL, In: 6, Out: 1},
	{Code: vm.CREATE2, In: 4, Out: 1},
	{Code: vm.STATICCALL, In: 6, Out: 1},
	{Code: vm.REVERT, In: 2, Term: true},
	{Code: vm.INVALID, Term: true},
	{Code: vm.SELFDESTRUCT, In: 1, Term: true},
}

// families returns the PUSHx, DUPx, SWAPx and LOGx ops.
func families() []*Op {
	var ops []*Op
	for i := 0; i <= 32; i++ {
		ops = append(ops, &Op{Code: vm.PUSH0 + vm.OpCode(i), Out: 1, Push: true})
	}
	for i := 1; i <= 16; i++ {
		ops = append(ops, &Op{Code: vm.DUP1 + vm.OpCode(i-1), In: i, Out: i + 1})
	}
	for i := 1; i <= 16; i++ {
		ops = append(ops, &Op{Code: vm.SWAP1 + vm.OpCode(i-1), In: i + 1, Out: i + 1})
	}
	for i := 0; i <= 4; i++ {
		ops = append(ops, &Op{Code: vm.LOG0 + vm.OpCode(i), In: i + 2})
	}
	return ops
}

var (
	opTable [256]*Op
	opNames map[string]*Op
)

func init() {
	opTable, opNames = computeOpTable()
}

func computeOpTable() (table [256]*Op, names map[string]*Op) {
	all := append(append([]*Op{}, oplist...), families()...)
	names = make(map[string]*Op, len(all))
	seen := make(set.Set[vm.OpCode], len(all))
	for _, op := range all {
		if seen.Includes(op.Code) {
			panic("BUG: duplicate opcode " + op.Code.String())
		}
		seen.Add(op.Code)
		if op.Name == "" {
			op.Name = op.Code.String()
		}
		table[op.Code] = op
		names[op.Name] = op
	}
	return table, names
}

// OpByCode resolves an opcode by its code.
// It returns nil for undefined opcodes.
func OpByCode(code byte) *Op {
	return opTable[code]
}

// OpByName resolves an opcode by its name. The name is case-insensitive.
func OpByName(name string) *Op {
	return opNames[strings.ToUpper(name)]
}

// Ops returns all defined opcodes, ordered by code.
func Ops() []*Op {
	var ops []*Op
	for _, op := range opTable {
		if op != nil {
			ops = append(ops, op)
		}
	}
	return ops
}
