package facebook

import (
	"strings"
	"unicode"

	"fbcheck/internal/domain"
)

// negativeWords is the lexicon a comment must hit to count as negative
var negativeWords = map[string]struct{}{
	"angry":         {},
	"awful":         {},
	"bad":           {},
	"broken":        {},
	"disappointed":  {},
	"disappointing": {},
	"disgusting":    {},
	"hate":          {},
	"horrible":      {},
	"poor":          {},
	"refund":        {},
	"scam":          {},
	"terrible":      {},
	"useless":       {},
	"worst":         {},
}

// FilterNegativeComments returns, in input order, the comments whose message
// contains a word from the negative lexicon. Matching is case-insensitive and
// on whole words, so "badge" does not match "bad".
func FilterNegativeComments(comments domain.Comments) []domain.Comment {
	negative := make([]domain.Comment, 0)
	for _, c := range comments.Data {
		if isNegative(c.Message) {
			negative = append(negative, c)
		}
	}
	return negative
}

func isNegative(message string) bool {
	words := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if _, ok := negativeWords[w]; ok {
			return true
		}
	}
	return false
}
