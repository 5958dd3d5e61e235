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
	"slices"

	"github.com/holiman/uint256"
)

// Stack is a snapshot of the operand stack. Index zero is the top of the stack.
type Stack []uint256.Int

// StackFromBottom creates a snapshot from items listed bottom-first,
// which is the order used by EVM struct logs.
func StackFromBottom(items []uint256.Int) Stack {
	st := make(Stack, len(items))
	for i, v := range slices.Backward(items) {
		st[len(items)-1-i] = v
	}
	return st
}

// Len returns the stack depth.
func (st Stack) Len() int {
	return len(st)
}

// Peek returns item i, counting from the top.
func (st Stack) Peek(i int) (*uint256.Int, bool) {
	if i < 0 || i >= len(st) {
		return nil, false
	}
	return &st[i], true
}

// Step is the state of the machine at one instruction, as seen by a debugger.
type Step struct {
	PC          uint64
	Instruction Instruction
	Stack       Stack
}
