package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"islamic-quotes-be/internal/model"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Decode parses a dataset stream. The format follows the name's extension:
// .json (default), .yaml or .yml, optionally wrapped in .gz or .zst.
func Decode(r io.Reader, name string) ([]model.QuoteRecord, error) {
	lower := strings.ToLower(name)

	switch {
	case strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip.NewReader > %w", err)
		}
		defer zr.Close()
		return Decode(zr, strings.TrimSuffix(lower, ".gz"))

	case strings.HasSuffix(lower, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd.NewReader > %w", err)
		}
		defer zr.Close()
		return Decode(zr, strings.TrimSuffix(lower, ".zst"))

	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		var records []model.QuoteRecord
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("yaml decode %s > %w", name, err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, trailingDataError("yaml", name, err)
		}
		return records, nil
	}

	var records []model.QuoteRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("json decode %s > %w", name, err)
	}
	// The whole stream must be one array; anything after it is malformed.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, trailingDataError("json", name, err)
	}
	return records, nil
}

func trailingDataError(format, name string, err error) error {
	if err == nil {
		return fmt.Errorf("%s decode %s > unexpected trailing data", format, name)
	}
	return fmt.Errorf("%s decode %s > unexpected trailing data: %w", format, name, err)
}
