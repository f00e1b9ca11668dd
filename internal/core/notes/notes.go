// Package notes canonicalizes free text attached to mood entries
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Line endings folded to \n
// 3 Drop control and invisible format runes (tab, newline and ZWJ survive)
// 4 Unicode NFC composition
// 5 Trim surrounding whitespace
package notes

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMax is the longest note accepted, counted in runes after normalization
const DefaultMax = 2000

const zwj = '\u200d'

var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// unwanted reports runes that never belong in stored notes
func unwanted(r rune) bool {
	switch r {
	case '\n', '\t', zwj:
		return false
	}
	return unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r)
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.Predicate(unwanted)),
			norm.NFC,
		)
	},
}

// Normalize returns the canonical form of s
// Normalize(Normalize(s)) == Normalize(s)
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")
	s = crlf.Replace(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// chains over valid UTF-8 do not fail; keep the repaired input rather than lose text
		ns = s
	}

	return strings.TrimSpace(ns)
}

// Len counts runes, the unit note limits are expressed in
func Len(s string) int { return utf8.RuneCountInString(s) }
