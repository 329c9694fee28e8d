package models

// Page is the list envelope returned by the API's list endpoints.
type Page[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// First returns the first result, or nil for an empty page.
func (p *Page[T]) First() *T {
	if p == nil || len(p.Results) == 0 {
		return nil
	}
	return &p.Results[0]
}
