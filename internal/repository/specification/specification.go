package specification

import "islamic-quotes-be/internal/entity"

// Specification defines the interface for query specifications
type Specification interface {
	IsSatisfiedBy(q *entity.Quote) bool
}

// CategoryScoped is implemented by specifications a repository can answer from
// a category index instead of a scan. CategoryKey must be folded.
type CategoryScoped interface {
	Specification
	CategoryKey() string
}
