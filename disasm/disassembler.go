// Copyright 2024 The go-ethereum Authors
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

// Package disasm decodes EVM bytecode and prints it with operand annotations.
package disasm

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/fjl/opview/annotate"
	"github.com/fjl/opview/internal/evm"
	"github.com/fjl/opview/internal/stack"
)

// commentColumn is the column where operand comments start.
const commentColumn = 24

// Disassembler turns EVM bytecode into readable text instructions.
type Disassembler struct {
	uppercase  bool
	showPC     bool
	noBlanks   bool
	noOperands bool
	pcBuffer   []byte
	pcHex      []byte
	lineLen    int
}

// New creates a disassembler.
func New() *Disassembler {
	return new(Disassembler)
}

// SetUppercase toggles printing instruction names in uppercase.
func (d *Disassembler) SetUppercase(on bool) {
	d.uppercase = on
}

// SetShowPC toggles printing of program counter on each line.
func (d *Disassembler) SetShowPC(on bool) {
	d.showPC = on
}

// SetShowBlocks toggles printing of blank lines at block boundaries.
func (d *Disassembler) SetShowBlocks(on bool) {
	d.noBlanks = !on
}

// SetShowOperands toggles printing of the stack operands read by each instruction.
// This is enabled by default.
func (d *Disassembler) SetShowOperands(on bool) {
	d.noOperands = !on
}

// Disassemble is the main entry point of the disassembler.
// It runs through the bytecode and emits text to outW.
func (d *Disassembler) Disassemble(bytecode []byte, outW io.Writer) error {
	prog, decodeErr := Decode(bytecode)
	var truncated ErrTruncatedPush
	if decodeErr != nil && !errors.As(decodeErr, &truncated) {
		return decodeErr
	}

	d.pcBuffer = make([]byte, digitsOfPC(len(bytecode)))
	d.pcHex = make([]byte, hex.EncodedLen(len(d.pcBuffer)))
	out := bufio.NewWriter(outW)

	var prevOp *evm.Op
	for _, e := range prog.Entries {
		op := evm.OpByCode(bytecode[e.PC])
		if op == nil {
			op = invalidOp
		}
		d.newline(out, prevOp, op)
		d.printPrefix(out, e.PC)
		if op == invalidOp {
			d.printBytes(out, bytecode[e.PC:e.PC+1])
		} else {
			d.printInstruction(out, e.Instruction)
		}
		prevOp = op
	}
	if decodeErr != nil {
		d.newline(out, prevOp, invalidOp)
		d.printPrefix(out, truncated.PC)
		d.printBytes(out, bytecode[truncated.PC:])
		prevOp = invalidOp
	}
	d.newline(out, prevOp, nil)
	if err := out.Flush(); err != nil {
		return err
	}
	return decodeErr
}

func (d *Disassembler) printPrefix(out io.Writer, pc uint64) {
	d.lineLen = 0
	if d.showPC {
		for i := 0; i < len(d.pcBuffer); i++ {
			d.pcBuffer[len(d.pcBuffer)-1-i] = byte(pc >> (8 * i))
		}
		hex.Encode(d.pcHex, d.pcBuffer)
		fmt.Fprintf(out, "%s: ", d.pcHex)
	}
}

// invalidOp stands in for bytes that do not decode to an instruction.
var invalidOp = new(evm.Op)

func (d *Disassembler) printBytes(out io.Writer, b []byte) {
	d.write(out, fmt.Sprintf("#bytes %#x", b))
}

func (d *Disassembler) printInstruction(out io.Writer, ins annotate.Instruction) {
	name := ins.Name()
	if d.uppercase {
		name = strings.ToUpper(name)
	}
	d.write(out, name)
	if _, data, ok := ins.PushOp(); ok && len(data) > 0 {
		d.write(out, fmt.Sprintf(" %#x", data))
	}
	if d.noOperands {
		return
	}
	op, ok := ins.OpCode()
	if !ok {
		return
	}
	var depth int
	for _, o := range annotate.OperandsOf(op) {
		depth = max(depth, o.Index+1)
	}
	if depth == 0 {
		return
	}
	pad := max(commentColumn-d.lineLen, 1)
	d.write(out, strings.Repeat(" ", pad))
	d.write(out, "; "+stack.Render(operandComment(op, depth)))
}

// operandComment lists the stack slots of op down to depth. Slots which are not
// operands of the instruction are shown as '_'.
func operandComment(op vm.OpCode, depth int) []string {
	items := make([]string, depth)
	for i := range items {
		if label, ok := annotate.Label(op, i); ok {
			items[i] = label
		} else {
			items[i] = "_"
		}
	}
	return items
}

func (d *Disassembler) write(out io.Writer, s string) {
	d.lineLen += len(s)
	io.WriteString(out, s)
}

func (d *Disassembler) newline(out io.Writer, prevOp *evm.Op, nextOp *evm.Op) {
	if prevOp == nil {
		return
	}
	out.Write([]byte{'\n'})
	if d.noBlanks || nextOp == nil {
		return
	}
	if prevOp.Jump || nextOp.JumpDest {
		out.Write([]byte{'\n'})
	}
}

func digitsOfPC(codesize int) int {
	switch {
	case codesize < (1<<16 - 1):
		return 2
	case codesize < (1<<24 - 1):
		return 3
	case codesize < (1<<32 - 1):
		return 4
	default:
		return 8
	}
}
