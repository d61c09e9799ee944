// FILE: internal/service/quote_service.go
package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/mapper"
	"islamic-quotes-be/internal/pkg/apperror"
	"islamic-quotes-be/internal/repository/contract"
	"islamic-quotes-be/internal/repository/specification"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=quote_service.go -destination=../mocks/service/mock_quote_service.go -package=mock_service

type IQuoteService interface {
	Search(ctx context.Context, filter *dto.SearchQuoteFilter) (*dto.SearchQuoteResult, error)
	Show(ctx context.Context, id int) (*dto.QuoteResponse, error)
	Random(ctx context.Context) (*dto.QuoteResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*dto.CatalogStatsResponse, error)
}

type QuoteServiceOption func(*quoteService)

// WithRandomSource replaces the uniform source used by Random. intn must
// return a value in [0, n).
func WithRandomSource(intn func(n int) int) QuoteServiceOption {
	return func(s *quoteService) {
		s.intn = intn
	}
}

type quoteService struct {
	repo   contract.QuoteRepository
	mapper *mapper.QuoteMapper
	intn   func(n int) int
	tracer trace.Tracer
}

func NewQuoteService(repo contract.QuoteRepository, opts ...QuoteServiceOption) IQuoteService {
	s := &quoteService{
		repo:   repo,
		mapper: mapper.NewQuoteMapper(),
		intn:   rand.IntN,
		tracer: otel.Tracer("islamic-quotes-be/service/quote"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search applies the id-priority rule: an id ignores the other filters and
// yields a single quote. Otherwise category (exact, case-insensitive) and
// query (substring) are ANDed over the catalog in order.
func (s *quoteService) Search(ctx context.Context, filter *dto.SearchQuoteFilter) (*dto.SearchQuoteResult, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Search")
	defer span.End()

	if filter.Id != nil {
		span.SetAttributes(attribute.Int("quote.id", *filter.Id))
		q, err := s.repo.FindById(ctx, *filter.Id)
		if err != nil {
			return nil, recordError(span, err)
		}
		if q == nil {
			return nil, recordError(span, NewQuoteNotFound())
		}
		return &dto.SearchQuoteResult{Single: s.mapper.ToResponse(q)}, nil
	}

	var specs []specification.Specification
	if filter.Category != "" {
		span.SetAttributes(attribute.String("quote.category", filter.Category))
		specs = append(specs, specification.ByCategory{Category: filter.Category})
	}
	if filter.Query != "" {
		span.SetAttributes(attribute.String("quote.query", filter.Query))
		specs = append(specs, specification.QuoteSearchQuery{Query: filter.Query})
	}

	quotes, err := s.repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("quote.results", len(quotes)))
	return &dto.SearchQuoteResult{Items: s.mapper.ToResponses(quotes)}, nil
}

func (s *quoteService) Show(ctx context.Context, id int) (*dto.QuoteResponse, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Show", trace.WithAttributes(attribute.Int("quote.id", id)))
	defer span.End()

	q, err := s.repo.FindById(ctx, id)
	if err != nil {
		return nil, recordError(span, err)
	}
	if q == nil {
		stats, err := s.repo.Stats(ctx)
		if err != nil {
			return nil, recordError(span, err)
		}
		return nil, recordError(span, NewQuoteIdNotFound(strconv.Itoa(id), stats.MinId, stats.MaxId))
	}

	return s.mapper.ToResponse(q), nil
}

func (s *quoteService) Random(ctx context.Context) (*dto.QuoteResponse, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Random")
	defer span.End()

	quotes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}
	if len(quotes) == 0 {
		return nil, recordError(span, apperror.DataUnavailable(fmt.Errorf("quote catalog is empty")))
	}

	i := s.intn(len(quotes))
	span.SetAttributes(attribute.Int("quote.id", quotes[i].Id))
	return s.mapper.ToResponse(&quotes[i]), nil
}

func (s *quoteService) Categories(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Categories")
	defer span.End()

	categories, err := s.repo.FindCategories(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *quoteService) Stats(ctx context.Context) (*dto.CatalogStatsResponse, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Stats")
	defer span.End()

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}

	return &dto.CatalogStatsResponse{
		TotalQuotes:     stats.TotalQuotes,
		TotalCategories: stats.TotalCategories,
		MinId:           stats.MinId,
		MaxId:           stats.MaxId,
	}, nil
}

// NewQuoteNotFound is the error for an id given to Search that matches nothing.
func NewQuoteNotFound() *apperror.Error {
	return apperror.NotFound("Quote not found", "")
}

// NewQuoteIdNotFound is the error for /quotes/{id} when no quote has the id.
// id is taken as text so ids too large for int can be reported as given.
func NewQuoteIdNotFound(id string, minId, maxId int) *apperror.Error {
	return apperror.NotFound(
		fmt.Sprintf("Quote with ID %s not found", id),
		fmt.Sprintf("Please check if the ID is correct (valid range: %d-%d)", minId, maxId),
	)
}

func recordError(span trace.Span, err error) error {
	// Lookups that miss are normal traffic, not span failures.
	if apperror.KindOf(err) != apperror.KindNotFound {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
