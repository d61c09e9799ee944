package memory

import (
	"context"

	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/pkg/apperror"
	"islamic-quotes-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

const snapshotKey = "quotes"

type QuoteLoader interface {
	Load(ctx context.Context) ([]entity.Quote, error)
}

// QuoteRepository serves reads from an immutable snapshot that is loaded on
// first use and kept for the life of the process. A failed load is not
// cached, so the next call tries again. Two callers racing on the first
// load both read the dataset and the later Set wins; the results are equal.
type QuoteRepository struct {
	loader QuoteLoader
	cache  *cache.Cache
}

func NewQuoteRepository(loader QuoteLoader) *QuoteRepository {
	// No expiration and no janitor: the snapshot lives until shutdown.
	c := cache.New(cache.NoExpiration, 0)
	return &QuoteRepository{
		loader: loader,
		cache:  c,
	}
}

// Warm loads the snapshot eagerly.
func (r *QuoteRepository) Warm(ctx context.Context) error {
	_, err := r.snapshot(ctx)
	return err
}

func (r *QuoteRepository) snapshot(ctx context.Context) (*quoteIndex, error) {
	if x, found := r.cache.Get(snapshotKey); found {
		return x.(*quoteIndex), nil
	}

	quotes, err := r.loader.Load(ctx)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindDataUnavailable {
			err = apperror.DataUnavailable(err)
		}
		return nil, err
	}

	idx := newQuoteIndex(quotes)
	r.cache.Set(snapshotKey, idx, cache.NoExpiration)
	return idx, nil
}

func (r *QuoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Quote, error) {
	idx, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return idx.find(specs), nil
}

func (r *QuoteRepository) FindById(ctx context.Context, id int) (*entity.Quote, error) {
	idx, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pos, ok := idx.byId[id]
	if !ok {
		return nil, nil
	}
	q := idx.items[pos]
	return &q, nil
}

func (r *QuoteRepository) FindCategories(ctx context.Context) ([]string, error) {
	idx, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), idx.categories...), nil
}

func (r *QuoteRepository) Stats(ctx context.Context) (*entity.CatalogStats, error) {
	idx, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := idx.stats
	return &stats, nil
}
