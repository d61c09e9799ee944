package cli

import (
	"context"

	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/pkg/logger"
	"islamic-quotes-be/internal/repository/memory"
	"islamic-quotes-be/internal/service"
	"islamic-quotes-be/pkg/dataset"
	"islamic-quotes-be/pkg/quoteclient"
)

// QuoteReader is the read surface shared by the local catalog and the HTTP client.
type QuoteReader interface {
	Random(ctx context.Context) (*quoteclient.Quote, error)
	Get(ctx context.Context, id int) (*quoteclient.Quote, error)
	Search(ctx context.Context, category, query string) ([]quoteclient.Quote, error)
	Categories(ctx context.Context) ([]string, error)
}

func newReader(opts *RootOptions) QuoteReader {
	if opts.Server != "" {
		return quoteclient.New(opts.Server)
	}

	src := dataset.Embedded()
	if opts.Dataset != "" {
		src = dataset.File(opts.Dataset)
	}
	loader := dataset.NewLoader(src, logger.NewNopLogger())
	return &localReader{
		service: service.NewQuoteService(memory.NewQuoteRepository(loader)),
	}
}

type localReader struct {
	service service.IQuoteService
}

func (r *localReader) Random(ctx context.Context) (*quoteclient.Quote, error) {
	res, err := r.service.Random(ctx)
	if err != nil {
		return nil, err
	}
	q := toClientQuote(*res)
	return &q, nil
}

func (r *localReader) Get(ctx context.Context, id int) (*quoteclient.Quote, error) {
	res, err := r.service.Show(ctx, id)
	if err != nil {
		return nil, err
	}
	q := toClientQuote(*res)
	return &q, nil
}

func (r *localReader) Search(ctx context.Context, category, query string) ([]quoteclient.Quote, error) {
	res, err := r.service.Search(ctx, &dto.SearchQuoteFilter{
		Category: category,
		Query:    query,
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]quoteclient.Quote, 0, len(res.Items))
	for _, item := range res.Items {
		quotes = append(quotes, toClientQuote(item))
	}
	return quotes, nil
}

func (r *localReader) Categories(ctx context.Context) ([]string, error) {
	return r.service.Categories(ctx)
}

func toClientQuote(res dto.QuoteResponse) quoteclient.Quote {
	return quoteclient.Quote{
		Id:          res.Id,
		Text:        res.Text,
		Original:    res.Original,
		Source:      res.Source,
		Category:    res.Category,
		Explanation: res.Explanation,
		Status:      res.Status,
	}
}
