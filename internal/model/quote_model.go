package model

// QuoteRecord is the on-disk shape of a dataset entry. Older datasets carry the
// source-language text under "arabic"; both keys are accepted.
type QuoteRecord struct {
	Id          int     `json:"id" yaml:"id"`
	Text        string  `json:"text" yaml:"text"`
	Original    string  `json:"original,omitempty" yaml:"original,omitempty"`
	Arabic      string  `json:"arabic,omitempty" yaml:"arabic,omitempty"`
	Source      string  `json:"source" yaml:"source"`
	Category    string  `json:"category" yaml:"category"`
	Explanation string  `json:"explanation" yaml:"explanation"`
	Status      *string `json:"status,omitempty" yaml:"status,omitempty"`
}
