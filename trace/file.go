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

package trace

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fjl/opview/annotate"
	"github.com/fjl/opview/internal/stack"
)

// File is a recorded execution trace.
//
// Example:
//
//	frames:
//	  - code: "0x6080604052"
//	    steps:
//	      - pc: 2
//	        stack: "[0x80]"
//	      - pc: 4
//	        op: MSTORE
//	        stack: ["0x80", "0x40"]
type File struct {
	Frames []Frame `yaml:"frames"`
}

// Frame is the execution of one contract code.
type Frame struct {
	Code  string       `yaml:"code"`
	Steps []StepRecord `yaml:"steps"`
}

// StepRecord is one step of a frame.
type StepRecord struct {
	PC uint64 `yaml:"pc"`
	// Op is optional. When set, it must match the instruction at PC.
	Op    string     `yaml:"op,omitempty"`
	Stack StackItems `yaml:"stack"`
}

// StackItems is the stack of a step. In trace files it is either a list of items,
// bottom-first like EVM struct logs, or a bracket listing string with the top of
// stack first, e.g. "[offset=0x40, value=0x80]".
type StackItems struct {
	Items    []string
	TopFirst bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StackItems) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		items, err := stack.ParseListing(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = StackItems{Items: items, TopFirst: true}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*s = StackItems{Items: items}
		return nil
	default:
		return fmt.Errorf("line %d: stack must be a list or a stack listing string", node.Line)
	}
}

// Values converts the items to a top-first stack.
func (s StackItems) Values() (annotate.Stack, error) {
	st, err := stack.ParseItems(s.Items)
	if err != nil || s.TopFirst {
		return st, err
	}
	return annotate.StackFromBottom(st), nil
}

var errEmptyFile = errors.New("empty trace file")

// Load reads a trace file. JSON input is accepted as well.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, errEmptyFile
		}
		return nil, fmt.Errorf("invalid trace file: %w", err)
	}
	return &f, nil
}
