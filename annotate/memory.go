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

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// WordSize is the size of a memory word in bytes.
const WordSize = 32

// MemoryWord identifies the memory word accessed by MLOAD or MSTORE.
type MemoryWord struct {
	Op   vm.OpCode
	Word uint256.Int // word index, i.e. byte offset / WordSize
}

// Index returns the word index. It reports false when the index does not fit
// into uint64, which can happen for offsets that would never be accessible in a
// real execution.
func (w MemoryWord) Index() (uint64, bool) {
	idx, overflow := w.Word.Uint64WithOverflow()
	return idx, !overflow
}

// Offset returns the byte offset of the start of the word.
func (w MemoryWord) Offset() *uint256.Int {
	return new(uint256.Int).Lsh(&w.Word, 5)
}

func (w MemoryWord) String() string {
	return fmt.Sprintf("%v word %s @ %s", w.Op, w.Word.Dec(), w.Offset().Hex())
}

// AffectedMemoryWord returns the memory word read by MLOAD or written by MSTORE.
// For all other instructions, and when the stack is empty, it returns false.
func AffectedMemoryWord(step Step) (MemoryWord, bool) {
	if len(step.Stack) == 0 {
		return MemoryWord{}, false
	}
	op, ok := step.Instruction.OpCode()
	if !ok || (op != vm.MLOAD && op != vm.MSTORE) {
		return MemoryWord{}, false
	}
	w := MemoryWord{Op: op}
	w.Word.Rsh(&step.Stack[0], 5)
	return w, true
}
