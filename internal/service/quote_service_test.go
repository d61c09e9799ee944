package service

import (
	"context"
	"errors"
	"testing"

	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/pkg/apperror"
	"islamic-quotes-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	quotes []entity.Quote
	err    error
}

func (l staticLoader) Load(ctx context.Context) ([]entity.Quote, error) {
	return l.quotes, l.err
}

func strPtr(s string) *string { return &s }

func catalog() []entity.Quote {
	return []entity.Quote{
		{Id: 1, Text: "Menuntut ilmu itu wajib", Original: "طَلَبُ الْعِلْمِ", Source: "HR. Ibnu Majah", Category: "Menuntut Ilmu", Explanation: "belajar", Status: strPtr("Shahih")},
		{Id: 2, Text: "Ajarilah dengan lembut", Original: "عَلِّمُوا", Source: "HR. Ahmad", Category: "Mengajar", Explanation: "guru yang sabar"},
		{Id: 3, Text: "Akhlak yang baik", Original: "خُلُق", Source: "HR. Tirmidzi", Category: "Akhlak", Explanation: "ilmu dan adab"},
		{Id: 5, Text: "Ajarkan ilmu", Original: "بَلِّغُوا", Source: "HR. Bukhari", Category: "mengajar", Explanation: "menyampaikan"},
	}
}

func newService(t *testing.T, quotes []entity.Quote, opts ...QuoteServiceOption) IQuoteService {
	t.Helper()
	repo := memory.NewQuoteRepository(staticLoader{quotes: quotes})
	return NewQuoteService(repo, opts...)
}

func ids(items []dto.QuoteResponse) []int {
	out := make([]int, 0, len(items))
	for _, q := range items {
		out = append(out, q.Id)
	}
	return out
}

func TestQuoteService_Search(t *testing.T) {
	svc := newService(t, catalog())
	ctx := context.Background()
	one := 1
	missing := 42

	tests := []struct {
		name    string
		filter  dto.SearchQuoteFilter
		wantIds []int
	}{
		{"no filters returns everything in order", dto.SearchQuoteFilter{}, []int{1, 2, 3, 5}},
		{"category ignores case", dto.SearchQuoteFilter{Category: "MENGAJAR"}, []int{2, 5}},
		{"unknown category", dto.SearchQuoteFilter{Category: "Fiqih"}, []int{}},
		{"query over text and explanation", dto.SearchQuoteFilter{Query: "ILMU"}, []int{1, 3, 5}},
		{"query over source", dto.SearchQuoteFilter{Query: "bukhari"}, []int{5}},
		{"query over original verbatim", dto.SearchQuoteFilter{Query: "عَلِّمُوا"}, []int{2}},
		{"category and query are ANDed", dto.SearchQuoteFilter{Category: "mengajar", Query: "ilmu"}, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Search(ctx, &tt.filter)
			require.NoError(t, err)
			assert.Nil(t, res.Single)
			assert.Equal(t, tt.wantIds, ids(res.Items))
		})
	}

	t.Run("id wins over other filters", func(t *testing.T) {
		res, err := svc.Search(ctx, &dto.SearchQuoteFilter{Id: &one, Category: "Akhlak", Query: "zzz"})
		require.NoError(t, err)
		require.NotNil(t, res.Single)
		assert.Equal(t, 1, res.Single.Id)
		assert.Equal(t, res.Single, res.Payload())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Search(ctx, &dto.SearchQuoteFilter{Id: &missing})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Quote not found", appErr.Message)
	})
}

func TestQuoteService_Show(t *testing.T) {
	svc := newService(t, catalog())
	ctx := context.Background()

	q, err := svc.Show(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "HR. Ahmad", q.Source)
	assert.Nil(t, q.Status)

	again, err := svc.Show(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, q, again)

	_, err = svc.Show(ctx, 999999)
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Quote with ID 999999 not found", appErr.Message)
	assert.Equal(t, "Please check if the ID is correct (valid range: 1-5)", appErr.Detail)
}

func TestQuoteService_Random(t *testing.T) {
	t.Run("uses the injected source", func(t *testing.T) {
		var gotN int
		svc := newService(t, catalog(), WithRandomSource(func(n int) int {
			gotN = n
			return 2
		}))

		q, err := svc.Random(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, gotN)
		assert.Equal(t, 3, q.Id)
	})

	t.Run("default source stays within the catalog", func(t *testing.T) {
		svc := newService(t, catalog())
		valid := map[int]bool{1: true, 2: true, 3: true, 5: true}

		for i := 0; i < 50; i++ {
			q, err := svc.Random(context.Background())
			require.NoError(t, err)
			assert.True(t, valid[q.Id])
		}
	})

	t.Run("default source varies across calls", func(t *testing.T) {
		svc := newService(t, catalog())
		seen := make(map[int]struct{})

		for i := 0; i < 100; i++ {
			q, err := svc.Random(context.Background())
			require.NoError(t, err)
			seen[q.Id] = struct{}{}
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("empty catalog is unavailable", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Random(context.Background())
		assert.True(t, errors.Is(err, apperror.ErrDataUnavailable))
	})
}

func TestQuoteService_Categories(t *testing.T) {
	res, err := newService(t, catalog()).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Menuntut Ilmu", "Mengajar", "Akhlak", "mengajar"}, res)

	empty, err := newService(t, nil).Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestQuoteService_Stats(t *testing.T) {
	res, err := newService(t, catalog()).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CatalogStatsResponse{TotalQuotes: 4, TotalCategories: 4, MinId: 1, MaxId: 5}, *res)
}

func TestQuoteService_LoadFailure(t *testing.T) {
	repo := memory.NewQuoteRepository(staticLoader{err: errors.New("unreadable")})
	svc := NewQuoteService(repo)

	_, err := svc.Categories(context.Background())
	assert.True(t, errors.Is(err, apperror.ErrDataUnavailable))
}
