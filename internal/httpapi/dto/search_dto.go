package dto

// SearchQuery carries catalog search criteria. Pointer fields distinguish
// "parameter absent" from "parameter present but empty": an absent title
// means the title filter was not used at all, while a present-but-empty
// title is a submitted query that needs clarification.
type SearchQuery struct {
	Title     *string
	AuthorID  *int64
	Genre     string
	Languages []string
}

// HasCriteria reports whether any filter was supplied.
func (q SearchQuery) HasCriteria() bool {
	return q.Title != nil || q.AuthorID != nil || q.Genre != "" || len(q.Languages) > 0
}

// SearchResponse wraps search results with the human-readable status line.
type SearchResponse struct {
	Message string         `json:"message"`
	Books   []BookResponse `json:"books"`
}
