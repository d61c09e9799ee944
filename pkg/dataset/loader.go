package dataset

import (
	"context"
	"fmt"

	"islamic-quotes-be/internal/entity"
	"islamic-quotes-be/internal/mapper"
	"islamic-quotes-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Logger is the subset of the application logger the loader reports through.
type Logger interface {
	Warn(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
}

type Loader struct {
	source   Source
	mapper   *mapper.QuoteMapper
	validate *validator.Validate
	log      Logger
}

func NewLoader(source Source, log Logger) *Loader {
	return &Loader{
		source:   source,
		mapper:   mapper.NewQuoteMapper(),
		validate: validator.New(),
		log:      log,
	}
}

func (l *Loader) SourceName() string {
	return l.source.Name()
}

// Load reads and parses the whole dataset, preserving source order. Any failure
// is reported as a DataUnavailable error. Entries that fail validation or reuse
// an id are logged and kept as they are.
func (l *Loader) Load(ctx context.Context) ([]entity.Quote, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return nil, apperror.DataUnavailable(fmt.Errorf("open %s > %w", l.source.Name(), err))
	}
	defer rc.Close()

	records, err := Decode(rc, l.source.Name())
	if err != nil {
		return nil, apperror.DataUnavailable(err)
	}

	quotes := l.mapper.ToEntities(records)
	l.audit(quotes)

	if l.log != nil {
		l.log.Info("dataset", "Quote dataset loaded", map[string]interface{}{
			"source": l.source.Name(),
			"count":  len(quotes),
		})
	}
	return quotes, nil
}

func (l *Loader) audit(quotes []entity.Quote) {
	if l.log == nil {
		return
	}

	seen := make(map[int]struct{}, len(quotes))
	for i := range quotes {
		q := &quotes[i]
		if err := l.validate.Struct(q); err != nil {
			l.log.Warn("dataset", "Malformed quote entry", map[string]interface{}{
				"position": i,
				"id":       q.Id,
				"error":    err.Error(),
			})
		}
		if _, dup := seen[q.Id]; dup {
			l.log.Warn("dataset", "Duplicate quote id", map[string]interface{}{
				"position": i,
				"id":       q.Id,
			})
		}
		seen[q.Id] = struct{}{}
	}
}
