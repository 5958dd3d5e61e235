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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fjl/opview/disasm"
)

var disasmCmd = cli.Command{
	Action:    doDisasm,
	Name:      "disasm",
	Usage:     "Disassemble bytecode with operand comments",
	ArgsUsage: "<hexfile|->",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "pc", Usage: "show program counter"},
		&cli.BoolFlag{Name: "uppercase", Usage: "print instruction names in uppercase"},
		&cli.BoolFlag{Name: "no-blocks", Usage: "disable blank lines at block boundaries"},
		&cli.BoolFlag{Name: "no-operands", Usage: "disable operand comments"},
	},
}

func doDisasm(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("need bytecode file as argument")
	}
	text, err := readInput(ctx.App.Reader, ctx.Args().First())
	if err != nil {
		return err
	}
	code, err := decodeHex(text)
	if err != nil {
		return err
	}

	d := disasm.New()
	d.SetShowPC(ctx.Bool("pc"))
	d.SetUppercase(ctx.Bool("uppercase"))
	d.SetShowBlocks(!ctx.Bool("no-blocks"))
	d.SetShowOperands(!ctx.Bool("no-operands"))
	return d.Disassemble(code, ctx.App.Writer)
}

// readInput reads a file. The name "-" reads stdin.
func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

func decodeHex(text []byte) ([]byte, error) {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	code, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return code, nil
}
