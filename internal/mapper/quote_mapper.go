package mapper

import (
	"islamic-quotes-be/internal/dto"
	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/model"
)

type QuoteMapper struct{}

func NewQuoteMapper() *QuoteMapper {
	return &QuoteMapper{}
}

func (m *QuoteMapper) ToEntity(r *model.QuoteRecord) *entity.Quote {
	if r == nil {
		return nil
	}

	original := r.Original
	if original == "" {
		original = r.Arabic
	}

	return &entity.Quote{
		Id:          r.Id,
		Text:        r.Text,
		Original:    original,
		Source:      r.Source,
		Category:    r.Category,
		Explanation: r.Explanation,
		Status:      r.Status,
	}
}

func (m *QuoteMapper) ToEntities(records []model.QuoteRecord) []entity.Quote {
	quotes := make([]entity.Quote, 0, len(records))
	for i := range records {
		quotes = append(quotes, *m.ToEntity(&records[i]))
	}
	return quotes
}

func (m *QuoteMapper) ToResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}

	return &dto.QuoteResponse{
		Id:          q.Id,
		Text:        q.Text,
		Original:    q.Original,
		Source:      q.Source,
		Category:    q.Category,
		Explanation: q.Explanation,
		Status:      q.Status,
	}
}

func (m *QuoteMapper) ToResponses(quotes []entity.Quote) []dto.QuoteResponse {
	res := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		res = append(res, *m.ToResponse(&quotes[i]))
	}
	return res
}
