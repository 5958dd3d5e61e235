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

//go:generate mockgen -source=source.go -destination=source_mock.go -package=trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/fjl/opview/annotate"
)

// StepSource produces debugger steps. Next returns io.EOF when there are no
// more steps.
type StepSource interface {
	Next() (annotate.Step, error)
}

// FileSource produces the steps of a trace file.
type FileSource struct {
	file *File
	an   *Annotator

	frame, step int
	code        []byte
	loaded      bool
}

// NewFileSource creates a step source reading f. Code is decoded through a.
func NewFileSource(f *File, a *Annotator) *FileSource {
	return &FileSource{file: f, an: a}
}

// Next implements StepSource.
func (s *FileSource) Next() (annotate.Step, error) {
	for s.frame < len(s.file.Frames) {
		fr := &s.file.Frames[s.frame]
		if s.step >= len(fr.Steps) {
			s.frame++
			s.step, s.loaded = 0, false
			continue
		}
		if !s.loaded {
			code, err := hexutil.Decode(fr.Code)
			if err != nil {
				return annotate.Step{}, fmt.Errorf("frame %d: invalid code: %w", s.frame, err)
			}
			s.code, s.loaded = code, true
		}
		rec := fr.Steps[s.step]
		step, err := s.makeStep(rec)
		if err != nil {
			return annotate.Step{}, fmt.Errorf("frame %d step %d: %w", s.frame, s.step, err)
		}
		s.step++
		return step, nil
	}
	return annotate.Step{}, io.EOF
}

func (s *FileSource) makeStep(rec StepRecord) (annotate.Step, error) {
	st, err := rec.Stack.Values()
	if err != nil {
		return annotate.Step{}, err
	}
	step, err := s.an.Step(s.code, rec.PC, st)
	if err != nil {
		return annotate.Step{}, err
	}
	if rec.Op != "" && !strings.EqualFold(rec.Op, step.Instruction.Name()) {
		return annotate.Step{}, fmt.Errorf("op %s does not match %s at pc %d", rec.Op, step.Instruction.Name(), rec.PC)
	}
	return step, nil
}
