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

// Package stack parses and renders stack snapshots in bracket notation,
// e.g. [offset=0x40, value=0x80, 0x4].
package stack

import (
	"fmt"
	"strings"
)

// ParseListing splits a bracketed stack listing into its items. The first item
// is the top of the stack. Whitespace within items is removed, so "offset = 0x40"
// becomes "offset=0x40".
func ParseListing(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, ErrEmptyListing
	case text[0] != '[':
		return nil, ErrNotListing
	}
	end := strings.IndexByte(text, ']')
	if end < 0 {
		return nil, errIncompleteListing
	}
	if rest := strings.TrimSpace(text[end+1:]); rest != "" {
		return nil, fmt.Errorf("%w: %q", errTrailingText, rest)
	}
	body := text[1:end]
	if i := strings.IndexAny(body, "[\""); i >= 0 {
		return nil, fmt.Errorf("%w: %q", errBadChar, body[i])
	}
	if strings.TrimSpace(body) == "" {
		return []string{}, nil
	}

	parts := strings.Split(body, ",")
	items := make([]string, len(parts))
	for i, part := range parts {
		items[i] = strings.Join(strings.Fields(part), "")
		if items[i] == "" {
			return nil, fmt.Errorf("stack slot %d: %w", i, errEmptyItem)
		}
	}
	return items, nil
}
