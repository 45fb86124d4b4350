// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "strings"

// index is a line-alphabet token. Each distinct line of the inputs is assigned one index; the encoded texts handed to the diff are strings of these tokens rendered as runes.
type index uint32

const (
	// runeSkipStart and runeSkipEnd delimit the surrogate range, which cannot appear in a valid Go string. Indexes at or above runeSkipStart are shifted past it when rendered as runes.
	runeSkipStart = 0xD800
	runeSkipEnd   = 0xE000

	// runeMax is one past the largest Unicode code point.
	runeMax = 0x110000

	// maxLines1 and maxLines2 cap the number of distinct lines the first and second text may allocate in the shared line array. Once a text hits its cap, the remainder of that text collapses into a single synthesised line.
	maxLines1 = 40000
	maxLines2 = 65535
)

// indexesToString renders a token sequence as a string, one rune per token.
func indexesToString(indexes []index) string {
	var sb strings.Builder
	for _, i := range indexes {
		if i < runeSkipStart {
			sb.WriteRune(rune(i))
		} else {
			sb.WriteRune(rune(i + (runeSkipEnd - runeSkipStart)))
		}
	}
	return sb.String()
}

// stringToIndex recovers the token sequence rendered by indexesToString.
func stringToIndex(text string) []index {
	runes := []rune(text)
	indexes := make([]index, len(runes))
	for i, r := range runes {
		if r < runeSkipEnd {
			indexes[i] = index(r)
		} else {
			indexes[i] = index(r) - (runeSkipEnd - runeSkipStart)
		}
	}
	return indexes
}
