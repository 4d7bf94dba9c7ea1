package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader содержит имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет уникальный идентификатор запроса.
// Идентификатор из входящего заголовка сохраняется, отсутствующий — генерируется.
// Значение доступно обработчикам через контекст и возвращается клиенту в заголовке.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
