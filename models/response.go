package models

// Response is the envelope returned by every API endpoint. Callers branch on
// Success for business-level failure; HTTP status carries the transport-level
// outcome.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is echoed by list endpoints.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
