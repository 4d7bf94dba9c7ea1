package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/dto"
	"github.com/abdullahwaheed/fsnd-capstone/internal/service"
)

// QuizHandler обрабатывает запросы игрового раунда викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный вопрос, не входящий в previous_questions.
// Ненулевая категория в quiz_category ограничивает выбор. Когда вопросы
// исчерпаны, question в ответе равен null.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(req.PreviousIDs(), req.QuizCategory.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNextQuestionResponse(question))
}
