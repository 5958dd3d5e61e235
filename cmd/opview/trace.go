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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fjl/opview/trace"
)

var traceCmd = cli.Command{
	Action:    doTrace,
	Name:      "trace",
	Usage:     "Annotate the steps of a trace file",
	ArgsUsage: "<file.yaml>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "cache",
			Usage: "number of decoded programs to keep (negative disables the cache)",
			Value: trace.DefaultCacheSize,
		},
	},
}

func doTrace(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("need trace file as argument")
	}
	fd, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer fd.Close()
	file, err := trace.Load(fd)
	if err != nil {
		return err
	}

	a, err := trace.New(trace.Config{CacheSize: ctx.Int("cache")})
	if err != nil {
		return err
	}
	src := trace.NewFileSource(file, a)
	return a.Run(ctx.Context, src, func(an trace.Annotation) error {
		_, err := fmt.Fprintln(ctx.App.Writer, an)
		return err
	})
}
