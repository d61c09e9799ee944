package memory

import (
	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/repository/specification"
	"islamic-quotes-be/pkg/utils"

	"github.com/RoaringBitmap/roaring/v2"
)

// quoteIndex is built once per snapshot and only read afterwards, so it is
// shared between requests without locking.
type quoteIndex struct {
	items      []entity.Quote
	byId       map[int]int
	categories []string
	// folded category -> positions in items
	byCategory map[string]*roaring.Bitmap
	stats      entity.CatalogStats
}

func newQuoteIndex(quotes []entity.Quote) *quoteIndex {
	idx := &quoteIndex{
		items:      append([]entity.Quote(nil), quotes...),
		byId:       make(map[int]int, len(quotes)),
		byCategory: make(map[string]*roaring.Bitmap),
	}

	seenCategory := make(map[string]struct{})
	for i, q := range idx.items {
		// First occurrence wins, matching a front-to-back scan.
		if _, dup := idx.byId[q.Id]; !dup {
			idx.byId[q.Id] = i
		}

		if _, seen := seenCategory[q.Category]; !seen {
			seenCategory[q.Category] = struct{}{}
			idx.categories = append(idx.categories, q.Category)
		}

		key := utils.Fold(q.Category)
		bm, ok := idx.byCategory[key]
		if !ok {
			bm = roaring.New()
			idx.byCategory[key] = bm
		}
		bm.Add(uint32(i))

		if i == 0 || q.Id < idx.stats.MinId {
			idx.stats.MinId = q.Id
		}
		if i == 0 || q.Id > idx.stats.MaxId {
			idx.stats.MaxId = q.Id
		}
	}

	for _, bm := range idx.byCategory {
		bm.RunOptimize()
	}

	idx.stats.TotalQuotes = len(idx.items)
	idx.stats.TotalCategories = len(idx.categories)
	return idx
}

// find narrows candidates through the category index where it can, then
// scans the rest. Bitmap iteration is ascending, which keeps catalog order.
func (idx *quoteIndex) find(specs []specification.Specification) []entity.Quote {
	candidates := roaring.New()
	candidates.AddRange(0, uint64(len(idx.items)))

	var residual []specification.Specification
	for _, spec := range specs {
		scoped, ok := spec.(specification.CategoryScoped)
		if !ok {
			residual = append(residual, spec)
			continue
		}
		bm, found := idx.byCategory[scoped.CategoryKey()]
		if !found {
			return []entity.Quote{}
		}
		candidates.And(bm)
	}

	result := make([]entity.Quote, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		q := &idx.items[it.Next()]
		if satisfiesAll(q, residual) {
			result = append(result, *q)
		}
	}
	return result
}

func satisfiesAll(q *entity.Quote, specs []specification.Specification) bool {
	for _, spec := range specs {
		if !spec.IsSatisfiedBy(q) {
			return false
		}
	}
	return true
}
