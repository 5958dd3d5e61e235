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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"opview", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestLabelsCommand(t *testing.T) {
	out, err := runApp(t, "", "labels", "mstore", "0x57", "ADD", "0x5f")
	if err != nil {
		t.Fatal(err)
	}
	want := "MSTORE [offset, value]\nJUMPI [jump_to, if]\nADD [a, b]\nPUSH0 []\n"
	if out != want {
		t.Fatalf("wrong output:\n%s\nwant:\n%s", out, want)
	}

	if _, err := runApp(t, "", "labels", "nope"); err == nil {
		t.Fatal("unknown opcode accepted")
	}
}

func TestLabelsStack(t *testing.T) {
	out, err := runApp(t, "", "labels", "--stack", "[0x40, 0x80, 4]", "mstore", "swap3", "push1")
	if err != nil {
		t.Fatal(err)
	}
	want := "MSTORE [offset=0x40, value=0x80, 0x4]\nSWAP3 [a=0x40, 0x80, 0x4, swap_value=?]\nPUSH1 [0x40, 0x80, 0x4]\n"
	if out != want {
		t.Fatalf("wrong output:\n%s\nwant:\n%s", out, want)
	}

	if _, err := runApp(t, "", "labels", "--stack", "0x40", "mstore"); err == nil {
		t.Fatal("stack without brackets accepted")
	}
}

func TestLabelsAll(t *testing.T) {
	out, err := runApp(t, "", "labels", "--all")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "ADD [a, b]" {
		t.Errorf("wrong first line %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "SELFDESTRUCT [address]" {
		t.Errorf("wrong last line %q", last)
	}
	for _, l := range lines {
		if strings.HasSuffix(l, "[]") {
			t.Errorf("line without operands: %q", l)
		}
	}
}

func TestDisasmCommand(t *testing.T) {
	out, err := runApp(t, "0x6080604052\n", "disasm", "--uppercase", "-")
	if err != nil {
		t.Fatal(err)
	}
	want := "PUSH1 0x80\nPUSH1 0x40\nMSTORE                  ; [offset, value]\n"
	if out != want {
		t.Fatalf("wrong output:\n%q\nwant:\n%q", out, want)
	}

	if _, err := runApp(t, "zz", "disasm", "-"); err == nil {
		t.Fatal("invalid hex accepted")
	}
}

func TestTraceCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "trace.yaml")
	trace := "frames:\n  - code: \"0x600051\"\n    steps:\n      - pc: 2\n        stack: [\"0x40\"]\n"
	if err := os.WriteFile(file, []byte(trace), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := runApp(t, "", "trace", file)
	if err != nil {
		t.Fatal(err)
	}
	want := "0002 mload          [offset=0x40] mem[word 2 @ 0x40]\n"
	if out != want {
		t.Fatalf("wrong output:\n%q\nwant:\n%q", out, want)
	}
}
