package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/dto"
	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/helper"
	"github.com/abdullahwaheed/fsnd-capstone/internal/service"
)

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу вопросов вместе со словарем категорий
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, total, err := h.questionService.ListPage(pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, total, categories))
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Категория и сложность принимаются числом или числовой строкой.
type CreateQuestionRequest struct {
	Question   string       `json:"question" binding:"required"`
	Answer     string       `json:"answer" binding:"required"`
	Category   dto.FlexUint `json:"category"`
	Difficulty dto.FlexUint `json:"difficulty"`
}

// CreateQuestion добавляет вопрос в банк и возвращает страницу,
// пересчитанную после вставки
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	question := &entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: int(req.Difficulty),
	}
	if err := h.questionService.Create(question); err != nil {
		handleServiceError(c, err)
		return
	}

	questions, total, err := h.questionService.ListPage(pageFromQuery(c))
	if err != nil {
		// Любой сбой пересчета страницы внутри мутирующей операции
		// отдается как unprocessable
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionCreatedResponse(question.ID, questions, total))
}

// DeleteQuestion удаляет вопрос и возвращает страницу, пересчитанную
// после удаления
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.Delete(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	questions, total, err := h.questionService.ListPage(pageFromQuery(c))
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionDeletedResponse(questionID, questions, total))
}

// SearchQuestionsRequest представляет запрос поиска по тексту вопроса
type SearchQuestionsRequest struct {
	Search string `json:"search"`
}

// SearchQuestions возвращает все вопросы, текст которых содержит искомую
// подстроку. Пустой запрос соответствует всем вопросам.
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.Search(req.Search)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(questions))
}

// ExportQuestions выгружает весь банк вопросов в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	questions, err := h.questionService.ExportAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListAll()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	labels := helper.CategoriesToMap(categories)

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, labels, filename)
	default:
		h.exportCSV(c, questions, labels, filename)
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, labels map[uint]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID", "Question", "Answer", "Category", "Difficulty"})

	for _, q := range questions {
		writer.Write([]string{
			strconv.Itoa(int(q.ID)),
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			sanitizeForExcel(labels[q.Category]),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, labels map[uint]string, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		RespondError(c, http.StatusInternalServerError)
		return
	}

	headers := []interface{}{"ID", "Question", "Answer", "Category", "Difficulty"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // Первая строка занята заголовками
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{
			q.ID,
			sanitizeForExcel(q.Question),
			sanitizeForExcel(q.Answer),
			sanitizeForExcel(labels[q.Category]),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
