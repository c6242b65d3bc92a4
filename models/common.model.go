package models

// ErrorDetail is the body of every non-2xx API response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Detail creates an error response body.
func Detail(message string) ErrorDetail {
	return ErrorDetail{Detail: message}
}
