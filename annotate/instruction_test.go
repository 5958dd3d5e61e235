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
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
)

func TestInstructionKinds(t *testing.T) {
	var zero Instruction
	if op, ok := zero.OpCode(); !ok || op != vm.STOP {
		t.Errorf("zero instruction is %v, want plain STOP", zero)
	}

	push := PushInstruction(vm.PUSH2, []byte{0xab, 0xcd})
	if _, ok := push.OpCode(); ok {
		t.Error("push instruction reports plain opcode")
	}
	if op, data, ok := push.PushOp(); !ok || op != vm.PUSH2 || len(data) != 2 {
		t.Errorf("wrong push op: %v %x %v", op, data, ok)
	}
	if push.Size() != 3 {
		t.Errorf("wrong push size %d", push.Size())
	}

	cheat := CheatcodeInstruction([4]byte{0xff, 0x48, 0x3c, 0x54})
	if _, ok := cheat.OpCode(); ok {
		t.Error("cheatcode reports plain opcode")
	}
	if sel, ok := cheat.Selector(); !ok || sel != [4]byte{0xff, 0x48, 0x3c, 0x54} {
		t.Errorf("wrong selector %x", sel)
	}
	if cheat.Size() != 0 {
		t.Errorf("cheatcode occupies %d code bytes", cheat.Size())
	}
}

func TestInstructionString(t *testing.T) {
	tests := []struct {
		ins       Instruction
		str, name string
	}{
		{OpCodeInstruction(vm.MSTORE), "MSTORE", "mstore"},
		{PushInstruction(vm.PUSH1, []byte{0x80}), "PUSH1 0x80", "push1"},
		{PushInstruction(vm.PUSH0, nil), "PUSH0", "push0"},
		{CheatcodeInstruction([4]byte{0xff, 0x48, 0x3c, 0x54}), "cheatcode 0xff483c54", "cheatcode"},
	}
	for _, test := range tests {
		if s := test.ins.String(); s != test.str {
			t.Errorf("wrong String() %q, want %q", s, test.str)
		}
		if n := test.ins.Name(); n != test.name {
			t.Errorf("wrong Name() %q, want %q", n, test.name)
		}
	}
}
