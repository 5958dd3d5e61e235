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

package disasm

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/fjl/opview/annotate"
	"github.com/fjl/opview/internal/evm"
)

// ErrTruncatedPush is returned by Decode when the code ends within
// the immediate data of a push instruction.
type ErrTruncatedPush struct {
	PC uint64
	Op vm.OpCode
}

func (e ErrTruncatedPush) Error() string {
	return fmt.Sprintf("bytecode truncated, ends within %v at pc %d", e.Op, e.PC)
}

// Entry is an instruction and its position in the code.
type Entry struct {
	PC          uint64
	Instruction annotate.Instruction
}

// Program is decoded bytecode.
type Program struct {
	Entries []Entry
}

// Decode splits bytecode into instructions. PUSHx instructions are returned with
// their immediate data. All other bytes, including undefined opcodes, become plain
// opcode instructions.
//
// If the code ends within push data, the instructions before the push are
// returned along with ErrTruncatedPush.
func Decode(code []byte) (*Program, error) {
	prog := &Program{Entries: make([]Entry, 0, len(code))}
	for pc := 0; pc < len(code); pc++ {
		op := evm.OpByCode(code[pc])
		if op == nil || !op.Push {
			ins := annotate.OpCodeInstruction(vm.OpCode(code[pc]))
			prog.Entries = append(prog.Entries, Entry{uint64(pc), ins})
			continue
		}
		size := op.PushSize()
		if len(code)-1-pc < size {
			return prog, ErrTruncatedPush{PC: uint64(pc), Op: op.Code}
		}
		ins := annotate.PushInstruction(op.Code, code[pc+1:pc+1+size])
		prog.Entries = append(prog.Entries, Entry{uint64(pc), ins})
		pc += size
	}
	return prog, nil
}

// At returns the instruction starting at pc. It reports false if pc is out of
// range or points into push data.
func (p *Program) At(pc uint64) (annotate.Instruction, bool) {
	i := sort.Search(len(p.Entries), func(i int) bool {
		return p.Entries[i].PC >= pc
	})
	if i == len(p.Entries) || p.Entries[i].PC != pc {
		return annotate.Instruction{}, false
	}
	return p.Entries[i].Instruction, true
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.Entries)
}
