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
	"slices"
	"testing"
)

var parseListingTests = []struct {
	input   string
	output  []string
	wantErr error
}{
	// valid cases
	{
		input:  "[]",
		output: []string{},
	},
	{
		input:  "  [ ]  ",
		output: []string{},
	},
	{
		input:  "[0x40, 0x80, 4]",
		output: []string{"0x40", "0x80", "4"},
	},
	{
		input:  "[offset = 0x40,value=0x80 , 0x4]",
		output: []string{"offset=0x40", "value=0x80", "0x4"},
	},

	// errors
	{
		input:   "",
		wantErr: ErrEmptyListing,
	},
	{
		input:   "0x40, 0x80",
		wantErr: ErrNotListing,
	},
	{
		input:   "[0x40",
		wantErr: errIncompleteListing,
	},
	{
		input:   "[0x40] 0x80",
		wantErr: errTrailingText,
	},
	{
		input:   "[0x40,,1]",
		wantErr: errEmptyItem,
	},
	{
		input:   "[0x40,]",
		wantErr: errEmptyItem,
	},
	{
		input:   `[0x40, "b"]`,
		wantErr: errBadChar,
	},
	{
		input:   "[[1], 2]",
		wantErr: errBadChar,
	},
}

func TestParseListing(t *testing.T) {
	for _, test := range parseListingTests {
		items, err := ParseListing(test.input)
		if err != nil {
			if test.wantErr == nil {
				t.Errorf("test(%q): unexpected error: %q", test.input, err)
			} else if !errors.Is(err, test.wantErr) {
				t.Errorf("test(%q): wrong error: %q, want %q", test.input, err, test.wantErr)
			}
		} else {
			if test.wantErr != nil {
				t.Errorf("test(%q): expected error, got none (result %v)", test.input, items)
			} else if !slices.Equal(items, test.output) {
				t.Errorf("test(%q): wrong result %#v", test.input, items)
			}
		}
	}
}
