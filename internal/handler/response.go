package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/dto"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// RespondError отправляет конверт ошибки для указанного статуса и прерывает
// обработку запроса
func RespondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// handleServiceError переводит ошибки сервисов в HTTP-ответы с конвертом
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUnprocessable), errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: Internal server error: %v", err)
		RespondError(c, http.StatusInternalServerError)
	}
}

// NoRoute возвращает обработчик несуществующих маршрутов
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondError(c, http.StatusNotFound)
	}
}

// NoMethod возвращает обработчик неподдерживаемых методов
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondError(c, http.StatusMethodNotAllowed)
	}
}

// Recovery возвращает обработчик паник, отдающий стандартный конверт
func Recovery() gin.RecoveryFunc {
	return func(c *gin.Context, recovered interface{}) {
		log.Printf("ERROR: Panic recovered: %v", recovered)
		RespondError(c, http.StatusInternalServerError)
	}
}

// Health сообщает о готовности сервиса
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// pageFromQuery читает номер страницы из query-параметра page.
// Отсутствующее или нечисловое значение дает страницу 1.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
