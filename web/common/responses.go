package common

// ErrorResponse is the error payload for every failing route.
type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Message: message}
}

type Pagination struct {
	Total int64 `json:"total"`
}

// SearchResponse wraps search results with their total match count.
type SearchResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewSearchResponse(data any, total int64) *SearchResponse {
	return &SearchResponse{
		Data:       data,
		Pagination: Pagination{Total: total},
	}
}
