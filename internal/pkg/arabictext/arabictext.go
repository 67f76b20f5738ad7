// Package arabictext folds common Arabic orthography variants so that user
// input matches store values regardless of how alef, teh marbuta and yeh
// were typed.
package arabictext

import "strings"

var foldReplacer = strings.NewReplacer(
	"إ", "ا",
	"أ", "ا",
	"ٱ", "ا",
	"آ", "ا",
	"ة", "ه",
	"ى", "ي",
)

// Normalize lowercases text, folds alef/teh-marbuta/yeh variants and
// collapses whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = foldReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

// Matches reports whether the normalized target contains the normalized
// query.
func Matches(query, target string) bool {
	if query == "" || target == "" {
		return false
	}
	return strings.Contains(Normalize(target), Normalize(query))
}
