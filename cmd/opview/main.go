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

// Command opview shows the stack operands and memory words used by EVM instructions.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var verbosityFlag = &cli.IntFlag{
	Name:  "verbosity",
	Usage: "log level (0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace)",
	Value: 3,
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "opview",
		Usage: "EVM instruction operand viewer",
		Flags: []cli.Flag{verbosityFlag},
		Before: func(ctx *cli.Context) error {
			setupLogging(ctx.Int(verbosityFlag.Name))
			return nil
		},
		Commands: []*cli.Command{
			&labelsCmd,
			&disasmCmd,
			&traceCmd,
		},
	}
}

func setupLogging(verbosity int) {
	level := log.FromLegacyLevel(verbosity)
	useColor := false
	if fi, err := os.Stderr.Stat(); err == nil {
		useColor = fi.Mode()&os.ModeCharDevice != 0
	}
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, level, useColor)))
}
