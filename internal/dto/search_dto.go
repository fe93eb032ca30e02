package dto

// SearchResponse bundles the two result lists of the workspace-wide search.
// Both slices are always non-nil so clients get [] rather than null.
type SearchResponse struct {
	Objects []*ObjectResponse `json:"objects"`
	Notes   []*NoteResponse   `json:"notes"`
}
