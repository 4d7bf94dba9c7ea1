package dto

import (
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	"github.com/abdullahwaheed/fsnd-capstone/internal/handler/helper"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionListResponse представляет страницу вопросов вместе с общим
// количеством вопросов в банке и словарем категорий
type QuestionListResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
	Categories     map[uint]string    `json:"categories"`
}

// SearchResponse представляет результат поиска: все совпадения без пагинации
type SearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CategoryQuestionsResponse представляет страницу вопросов одной категории.
// TotalQuestions содержит размер всего банка, а не количество в категории.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// QuestionDeletedResponse подтверждает удаление и возвращает обновленную страницу
type QuestionDeletedResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// QuestionCreatedResponse подтверждает создание и возвращает обновленную страницу
type QuestionCreatedResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// CategoriesResponse представляет словарь всех категорий
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewListQuestionResponse создает слайс DTO для списка вопросов.
// Для пустого списка возвращается пустой слайс, а не nil, чтобы в JSON
// всегда попадал массив.
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i, question := range questions {
		list[i] = NewQuestionResponse(&question)
	}
	return list
}

// NewQuestionListResponse создает DTO страницы вопросов
func NewQuestionListResponse(questions []entity.Question, total int64, categories []entity.Category) *QuestionListResponse {
	return &QuestionListResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: total,
		Categories:     helper.CategoriesToMap(categories),
	}
}

// NewSearchResponse создает DTO результата поиска
func NewSearchResponse(questions []entity.Question) *SearchResponse {
	return &SearchResponse{
		Success:        true,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: len(questions),
	}
}

// NewCategoryQuestionsResponse создает DTO страницы вопросов категории
func NewCategoryQuestionsResponse(questions []entity.Question, total int64, category *entity.Category) *CategoryQuestionsResponse {
	return &CategoryQuestionsResponse{
		Success:         true,
		Questions:       NewListQuestionResponse(questions),
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}
}

// NewQuestionDeletedResponse создает DTO подтверждения удаления
func NewQuestionDeletedResponse(deletedID uint, questions []entity.Question, total int64) *QuestionDeletedResponse {
	return &QuestionDeletedResponse{
		Success:        true,
		Deleted:        deletedID,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: total,
	}
}

// NewQuestionCreatedResponse создает DTO подтверждения создания
func NewQuestionCreatedResponse(createdID uint, questions []entity.Question, total int64) *QuestionCreatedResponse {
	return &QuestionCreatedResponse{
		Success:        true,
		Created:        createdID,
		Questions:      NewListQuestionResponse(questions),
		TotalQuestions: total,
	}
}

// NewCategoriesResponse создает DTO словаря категорий
func NewCategoriesResponse(categories []entity.Category) *CategoriesResponse {
	return &CategoriesResponse{
		Success:    true,
		Categories: helper.CategoriesToMap(categories),
	}
}
