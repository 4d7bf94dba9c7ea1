package dto

import "net/http"

// ErrorResponse представляет единый конверт ошибки API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// statusMessages задает тексты сообщений для статусов, которые отдает API
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "something went wrong",
}

// NewErrorResponse создает конверт ошибки для HTTP-статуса
func NewErrorResponse(status int) *ErrorResponse {
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return &ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	}
}
