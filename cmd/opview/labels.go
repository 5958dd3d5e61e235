// Copyright 2023 The go-ethereum Authors
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

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/urfave/cli/v2"

	"github.com/fjl/opview/annotate"
	"github.com/fjl/opview/internal/evm"
	"github.com/fjl/opview/internal/stack"
)

var labelsCmd = cli.Command{
	Action:    doLabels,
	Name:      "labels",
	Usage:     "Print the stack operands of opcodes",
	ArgsUsage: "<opcode>...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "all",
			Usage: "list all opcodes which have operands",
		},
		&cli.StringFlag{
			Name:  "stack",
			Usage: "stack listing, top first, to label with the operands, e.g. \"[0x40, 0x80]\"",
		},
	},
}

func doLabels(ctx *cli.Context) error {
	var st annotate.Stack
	if ctx.IsSet("stack") {
		var err error
		if st, err = stack.ParseValues(ctx.String("stack")); err != nil {
			return fmt.Errorf("invalid --stack: %w", err)
		}
	}
	p := labelPrinter{w: ctx.App.Writer, stack: st, withStack: ctx.IsSet("stack")}

	if ctx.Bool("all") {
		for _, op := range evm.Ops() {
			if len(annotate.OperandsOf(op.Code)) > 0 {
				p.print(op.Code)
			}
		}
		return nil
	}
	if ctx.NArg() == 0 {
		return fmt.Errorf("need opcode name or number as argument")
	}
	for _, arg := range ctx.Args().Slice() {
		op, err := parseOpCode(arg)
		if err != nil {
			return err
		}
		p.print(op)
	}
	return nil
}

// parseOpCode accepts opcode names and numbers.
func parseOpCode(arg string) (vm.OpCode, error) {
	if op := evm.OpByName(arg); op != nil {
		return op.Code, nil
	}
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		n, err := strconv.ParseUint(arg[2:], 16, 8)
		if err == nil {
			return vm.OpCode(n), nil
		}
	}
	return 0, fmt.Errorf("unknown opcode %q", arg)
}

type labelPrinter struct {
	w         io.Writer
	stack     annotate.Stack
	withStack bool
}

func (p *labelPrinter) print(op vm.OpCode) {
	ops := annotate.OperandsOf(op)
	items := stack.Labels(ops)
	if p.withStack {
		items = stack.Labeled(p.stack, ops)
	}
	fmt.Fprintf(p.w, "%v %s\n", op, stack.Render(items))
}
