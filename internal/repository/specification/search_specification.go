package specification

import (
	"strings"

	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/pkg/utils"
)

// QuoteSearchQuery matches when the lower-cased query occurs in text, source,
// category or explanation (all lower-cased), or verbatim in the original text.
// The original is never case-folded: its script has no case.
type QuoteSearchQuery struct {
	Query string
}

func (s QuoteSearchQuery) IsSatisfiedBy(q *entity.Quote) bool {
	term := utils.Fold(s.Query)

	return utils.ContainsFold(q.Text, term) ||
		strings.Contains(q.Original, term) ||
		utils.ContainsFold(q.Source, term) ||
		utils.ContainsFold(q.Category, term) ||
		utils.ContainsFold(q.Explanation, term)
}
