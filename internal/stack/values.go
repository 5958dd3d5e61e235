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
	"strings"

	"github.com/holiman/uint256"

	"github.com/fjl/opview/annotate"
)

// ParseValues parses a stack listing of numbers, e.g. [0x40, 128].
// Items can be decimal or 0x-prefixed hexadecimal, and may carry a label
// as produced by Labeled, e.g. [offset=0x40].
func ParseValues(text string) (annotate.Stack, error) {
	items, err := ParseListing(text)
	if err != nil {
		return nil, err
	}
	return ParseItems(items)
}

// ParseItems converts stack items to values.
func ParseItems(items []string) (annotate.Stack, error) {
	st := make(annotate.Stack, len(items))
	for i, item := range items {
		if err := parseValue(&st[i], item); err != nil {
			return nil, ErrBadValue{Slot: i, Item: item, Err: err}
		}
	}
	return st, nil
}

func parseValue(z *uint256.Int, item string) error {
	if _, value, ok := strings.Cut(item, "="); ok {
		item = value
	}
	item = strings.TrimSpace(item)
	if strings.HasPrefix(item, "-") {
		return errNegative
	}
	var err error
	if digits, ok := cutHexPrefix(item); ok {
		// uint256 rejects leading zeros, but padded words are common in traces.
		digits = strings.TrimLeft(digits, "0")
		if digits == "" && len(item) > 2 {
			digits = "0"
		}
		err = z.SetFromHex("0x" + digits)
	} else {
		err = z.SetFromDecimal(item)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, uint256.ErrBig256Range):
		return errOverflow
	default:
		return errSyntax
	}
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return s, false
}

// Render formats stack items as a bracketed listing.
func Render(stk []string) string {
	var out strings.Builder
	out.WriteByte('[')
	for i, name := range stk {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name)
	}
	out.WriteByte(']')
	return out.String()
}

// Labeled creates display items for a stack snapshot. Slots named by an operand are
// rendered as label=value. Operands may refer to slots beyond the snapshot, their
// value is shown as '?'.
func Labeled(st annotate.Stack, ops []annotate.Operand) []string {
	depth := len(st)
	for _, o := range ops {
		depth = max(depth, o.Index+1)
	}
	items := make([]string, depth)
	for i := range items {
		if v, ok := st.Peek(i); ok {
			items[i] = v.Hex()
		} else {
			items[i] = "?"
		}
	}
	for _, o := range ops {
		items[o.Index] = o.Label + "=" + items[o.Index]
	}
	return items
}

// Labels returns the operand labels, in order.
func Labels(ops []annotate.Operand) []string {
	labels := make([]string, len(ops))
	for i, o := range ops {
		labels[i] = o.Label
	}
	return labels
}
