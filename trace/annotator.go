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

// Package trace annotates the steps of recorded EVM executions.
package trace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"

	"github.com/fjl/opview/annotate"
	"github.com/fjl/opview/disasm"
	"github.com/fjl/opview/internal/stack"
)

// DefaultCacheSize is the number of decoded programs kept by an Annotator
// if Config.CacheSize is zero.
const DefaultCacheSize = 256

// Config contains the configuration options of an Annotator.
type Config struct {
	// CacheSize is the number of decoded programs retained.
	// If set to 0, DefaultCacheSize is used. If negative, no cache is used.
	CacheSize int
}

// ErrNoInstruction is returned when a step refers to a position in the code
// where no instruction starts.
type ErrNoInstruction struct {
	PC uint64
}

func (e ErrNoInstruction) Error() string {
	return fmt.Sprintf("no instruction at pc %d", e.PC)
}

// Annotator applies the operand and memory lookups to execution steps.
// It is safe for concurrent use.
type Annotator struct {
	cache *lru.Cache[common.Hash, *disasm.Program]
}

// New creates an annotator.
func New(config Config) (*Annotator, error) {
	if config.CacheSize == 0 {
		config.CacheSize = DefaultCacheSize
	}
	a := new(Annotator)
	if config.CacheSize > 0 {
		cache, err := lru.New[common.Hash, *disasm.Program](config.CacheSize)
		if err != nil {
			return nil, err
		}
		a.cache = cache
	}
	return a, nil
}

// Program decodes the given code. Results are cached by code hash.
//
// Truncated code is not an error here: the instructions before the
// truncated push remain addressable.
func (a *Annotator) Program(code []byte) *disasm.Program {
	if a.cache == nil {
		return decode(code)
	}
	hash := codeHash(code)
	if prog, ok := a.cache.Get(hash); ok {
		log.Trace("Program cache hit", "hash", hash)
		return prog
	}
	prog := decode(code)
	a.cache.Add(hash, prog)
	return prog
}

func decode(code []byte) *disasm.Program {
	prog, err := disasm.Decode(code)
	if err != nil {
		log.Debug("Decoded truncated program", "size", len(code), "err", err)
	} else {
		log.Debug("Decoded program", "size", len(code), "instructions", prog.Len())
	}
	return prog
}

func codeHash(code []byte) (h common.Hash) {
	kh := sha3.NewLegacyKeccak256()
	kh.Write(code)
	kh.Sum(h[:0])
	return h
}

// Step creates the debugger step at pc.
func (a *Annotator) Step(code []byte, pc uint64, st annotate.Stack) (annotate.Step, error) {
	ins, ok := a.Program(code).At(pc)
	if !ok {
		return annotate.Step{}, ErrNoInstruction{PC: pc}
	}
	return annotate.Step{PC: pc, Instruction: ins, Stack: st}, nil
}

// Annotation describes a step for display.
type Annotation struct {
	PC       uint64
	Name     string
	Operands []annotate.Operand
	Stack    []string             // labeled stack items, top first
	Memory   *annotate.MemoryWord // set for MLOAD and MSTORE
}

func (an Annotation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d %-14s %s", an.PC, an.Name, stack.Render(an.Stack))
	if an.Memory != nil {
		fmt.Fprintf(&b, " mem[word %s @ %s]", an.Memory.Word.Dec(), an.Memory.Offset().Hex())
	}
	return b.String()
}

// Annotate computes the annotation of a step.
func (a *Annotator) Annotate(step annotate.Step) Annotation {
	ops := annotate.AffectedStackItems(step.Instruction)
	an := Annotation{
		PC:       step.PC,
		Name:     step.Instruction.Name(),
		Operands: ops,
		Stack:    stack.Labeled(step.Stack, ops),
	}
	if w, ok := annotate.AffectedMemoryWord(step); ok {
		an.Memory = &w
	}
	return an
}

// Run annotates all steps of src, calling fn for each of them.
// It returns when src is exhausted, fn fails, or ctx is canceled.
func (a *Annotator) Run(ctx context.Context, src StepSource, fn func(Annotation) error) error {
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		step, err := src.Next()
		if errors.Is(err, io.EOF) {
			log.Debug("Trace finished", "steps", n)
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(a.Annotate(step)); err != nil {
			return err
		}
	}
}
