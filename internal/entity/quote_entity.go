package entity

// Quote is one catalog record. Instances are never mutated after the dataset is loaded.
type Quote struct {
	Id          int    `validate:"gt=0"`
	Text        string `validate:"required"`
	Original    string `validate:"required"`
	Source      string `validate:"required"`
	Category    string `validate:"required"`
	Explanation string `validate:"required"`
	Status      *string
}

// CatalogStats summarises a loaded catalog.
type CatalogStats struct {
	TotalQuotes     int
	TotalCategories int
	MinId           int
	MaxId           int
}
