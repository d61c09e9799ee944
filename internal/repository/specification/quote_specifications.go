package specification

import (
	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/pkg/utils"
)

// ByCategory matches quotes whose category equals Category, ignoring case.
type ByCategory struct {
	Category string
}

func (s ByCategory) IsSatisfiedBy(q *entity.Quote) bool {
	return utils.Fold(q.Category) == s.CategoryKey()
}

func (s ByCategory) CategoryKey() string {
	return utils.Fold(s.Category)
}
