package models

// APIResponse is the generic envelope shared by upstream list and detail endpoints.
// Pagination is only present when Data is a paged collection.
type APIResponse[T any] struct {
	Success    bool        `json:"success"`
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
