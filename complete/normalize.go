// Copyright (c) 2026 The Liftscript Authors. All rights reserved.

package complete

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	normalizeOnce sync.Once
	abbreviate    *strings.Replacer

	titleOnce sync.Once
	titleCase cases.Caser
	lowerCase cases.Caser
)

// abbreviations anywhere they appear in a lowercased, underscore-joined key.
var abbreviationPairs = []string{
	"dumbbell", "db",
	"single_leg", "sl",
	"single_arm", "sa",
}

var expansionWords = map[string]string{
	"db": "DB",
	"sl": "SL",
	"sa": "SA",
}

func initNormalizeTables() {
	normalizeOnce.Do(func() {
		abbreviate = strings.NewReplacer(abbreviationPairs...)
	})
	titleOnce.Do(func() {
		lowerCase = cases.Lower(language.Und)
		titleCase = cases.Title(language.Und)
	})
}

var whitespaceOrDash = func(r rune) bool {
	return unicode.IsSpace(r) || r == '-'
}

// Normalize maps a display exercise name to its trie lookup key: lowercase
// (via the host Unicode facility, not byte-oriented ASCII folding),
// collapse any run of whitespace or hyphens to a single underscore, then
// abbreviate dumbbell/single_leg/single_arm wherever they occur.
func Normalize(name string) string {
	initNormalizeTables()

	lowered := lowerCase.String(name)

	var sb strings.Builder
	inRun := false
	for _, r := range lowered {
		if whitespaceOrDash(r) {
			if !inRun {
				sb.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		sb.WriteRune(r)
	}

	return abbreviate.Replace(strings.Trim(sb.String(), "_"))
}

// Denormalize renders a trie key back to a display string: db/sl/sa tokens
// become DB/SL/SA, underscores become spaces, and every remaining word is
// capitalized.
func Denormalize(key string) string {
	initNormalizeTables()

	words := strings.Split(key, "_")
	for i, w := range words {
		if up, ok := expansionWords[w]; ok {
			words[i] = up
			continue
		}
		words[i] = titleCase.String(w)
	}
	return strings.Join(words, " ")
}
