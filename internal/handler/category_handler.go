package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/dto"
	"github.com/abdullahwaheed/fsnd-capstone/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями вопросов
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает словарь всех категорий
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoriesResponse(categories))
}

// ListCategoryQuestions возвращает страницу вопросов одной категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	questions, total, category, err := h.questionService.ListPageByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(questions, total, category))
}
