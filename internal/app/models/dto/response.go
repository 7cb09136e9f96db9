package dto

// APIResponse is the envelope returned by every endpoint.
// Failures carry the same envelope with Success=false and no Data.
type APIResponse struct {
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message" example:"OK"`
	Data       interface{} `json:"data,omitempty"`
	Success    bool        `json:"success" example:"true"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(statusCode int, message string, data interface{}) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Success:    true,
	}
}

// NewErrorResponse creates a failure envelope; Data is always omitted
func NewErrorResponse(statusCode int, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	}
}

// PaginationInfo carries paging metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"5"`
}
