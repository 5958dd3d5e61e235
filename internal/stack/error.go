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
	"fmt"
)

// Listing errors.
var (
	ErrNotListing        = errors.New("not a stack listing, missing [")
	ErrEmptyListing      = errors.New("empty stack listing")
	errIncompleteListing = errors.New("incomplete stack listing, missing ]")
	errTrailingText      = errors.New("text after end of stack listing")
	errBadChar           = errors.New("invalid character in stack listing")
	errEmptyItem         = errors.New("empty item in stack listing")
)

// Value errors.
var (
	errNegative = errors.New("negative value")
	errOverflow = errors.New("value exceeds 256 bits")
	errSyntax   = errors.New("not a number")
)

// ErrBadValue is reported when an item of a stack listing is not a valid
// 256-bit unsigned integer.
type ErrBadValue struct {
	Slot int    // stack slot index
	Item string // the item text
	Err  error
}

func (e ErrBadValue) Error() string {
	return fmt.Sprintf("invalid value %q in stack slot %d: %v", e.Item, e.Slot, e.Err)
}

func (e ErrBadValue) Unwrap() error {
	return e.Err
}
