package dto

type QuoteResponse struct {
	Id          int     `json:"id"`
	Text        string  `json:"text"`
	Original    string  `json:"original"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Explanation string  `json:"explanation"`
	Status      *string `json:"status,omitempty"`
}

// SearchQuoteFilter is the parsed /quotes query string. Empty strings mean
// "not given". limit and page are documented on the companion page but are
// not part of the filter.
type SearchQuoteFilter struct {
	Category string
	Query    string
	Id       *int
}

// SearchQuoteResult keeps the historical response shape: a bare object when the
// caller asked for an id, an array otherwise.
type SearchQuoteResult struct {
	Single *QuoteResponse
	Items  []QuoteResponse
}

func (r *SearchQuoteResult) Payload() interface{} {
	if r.Single != nil {
		return r.Single
	}
	if r.Items == nil {
		return []QuoteResponse{}
	}
	return r.Items
}

type CatalogStatsResponse struct {
	TotalQuotes     int `json:"total_quotes"`
	TotalCategories int `json:"total_categories"`
	MinId           int `json:"min_id"`
	MaxId           int `json:"max_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Quotes int    `json:"quotes"`
}
