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

package stack

import (
	"errors"
	"slices"
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"

	"github.com/fjl/opview/annotate"
)

func TestParseValues(t *testing.T) {
	st, err := ParseValues("[0x40, 128, 0x0000ff, 0x00, 0X1f, offset=0x20, value = 7, 0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff]")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0x40", "0x80", "0xff", "0x0", "0x1f", "0x20", "0x7", "0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"}
	if len(st) != len(want) {
		t.Fatalf("wrong stack depth %d", len(st))
	}
	for i := range want {
		if st[i].Hex() != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, st[i].Hex(), want[i])
		}
	}

	empty, err := ParseValues("[]")
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty listing: %v, %v", empty, err)
	}
}

func TestParseValuesErrors(t *testing.T) {
	tests := []struct {
		input string
		slot  int
		err   error
	}{
		{"[1, x]", 1, errSyntax},
		{"[0x]", 0, errSyntax},
		{"[0xzz]", 0, errSyntax},
		{"[1, 2, ?]", 2, errSyntax},
		{"[115792089237316195423570985008687907853269984665640564039457584007913129639936]", 0, errOverflow},
		{"[-1]", 0, errNegative},
		{"[0x1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff]", 0, errOverflow},
	}
	for _, test := range tests {
		_, err := ParseValues(test.input)
		var bv ErrBadValue
		if !errors.As(err, &bv) {
			t.Errorf("%s: wrong error %v", test.input, err)
			continue
		}
		if bv.Slot != test.slot || !errors.Is(err, test.err) {
			t.Errorf("%s: wrong error %v", test.input, err)
		}
	}
	if _, err := ParseValues("1, 2"); err != ErrNotListing {
		t.Errorf("wrong error for missing bracket: %v", err)
	}
}

func TestLabeled(t *testing.T) {
	st, _ := ParseValues("[0x40, 0x80, 0x04]")
	tests := []struct {
		op   vm.OpCode
		want []string
	}{
		{vm.MSTORE, []string{"offset=0x40", "value=0x80", "0x4"}},
		{vm.DUP2, []string{"0x40", "dup_value=0x80", "0x4"}},
		{vm.SWAP3, []string{"a=0x40", "0x80", "0x4", "swap_value=?"}},
		{vm.PUSH1, []string{"0x40", "0x80", "0x4"}},
	}
	for _, test := range tests {
		got := Labeled(st, annotate.OperandsOf(test.op))
		if !slices.Equal(got, test.want) {
			t.Errorf("%v: got %v, want %v", test.op, got, test.want)
		}
	}
	if got := Render(Labeled(nil, annotate.OperandsOf(vm.POP))); got != "[y=?]" {
		t.Errorf("empty stack: got %s", got)
	}
}

// Labeled output can be parsed back into the same values.
func TestLabeledRoundTrip(t *testing.T) {
	st, _ := ParseValues("[0x40, 0x80, 0x04]")
	text := Render(Labeled(st, annotate.OperandsOf(vm.MSTORE)))
	back, err := ParseValues(text)
	if err != nil {
		t.Fatalf("can't parse %s: %v", text, err)
	}
	if !slices.EqualFunc(st, back, func(a, b uint256.Int) bool { return a.Eq(&b) }) {
		t.Fatalf("round trip through %s changed values: %v", text, back)
	}
}

func TestLabels(t *testing.T) {
	got := Render(Labels(annotate.OperandsOf(vm.LOG2)))
	if got != "[offset, size, topic1, topic2]" {
		t.Errorf("wrong labels %s", got)
	}
}
