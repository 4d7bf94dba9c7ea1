package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
)

// FlexUint представляет неотрицательное целое, которое клиент может
// прислать числом или числовой строкой. Фронтенд отправляет значения
// элементов select строками, поэтому обе формы равноправны.
type FlexUint uint

// UnmarshalJSON реализует json.Unmarshaler для FlexUint
func (n *FlexUint) UnmarshalJSON(data []byte) error {
	*n = 0

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := strings.Trim(string(data), `"`)
	if text == "" {
		return nil
	}

	parsed, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return fmt.Errorf("expected a non-negative integer, got %s", data)
	}
	*n = FlexUint(parsed)
	return nil
}

// NextQuestionRequest представляет тело запроса следующего вопроса викторины
type NextQuestionRequest struct {
	PreviousQuestions []FlexUint  `json:"previous_questions"`
	QuizCategory      CategoryRef `json:"quiz_category"`
}

// PreviousIDs возвращает идентификаторы уже заданных вопросов в виде []uint
func (r *NextQuestionRequest) PreviousIDs() []uint {
	ids := make([]uint, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		ids[i] = uint(id)
	}
	return ids
}

// NextQuestionResponse представляет следующий вопрос раунда.
// Question равен null, когда неотвеченные вопросы исчерпаны.
type NextQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewNextQuestionResponse создает DTO следующего вопроса
func NewNextQuestionResponse(question *entity.Question) *NextQuestionResponse {
	response := &NextQuestionResponse{Success: true}
	if question != nil {
		questionDTO := NewQuestionResponse(question)
		response.Question = &questionDTO
	}
	return response
}

// CategoryRef представляет ссылку на категорию в теле quiz-запроса.
// Клиент передает объект вида {"id": ..., "type": ...}; значим только id.
// Ноль, пустая строка, null и отсутствие id означают выбор по всем
// категориям. Значение иной формы считается ошибкой формата.
type CategoryRef struct {
	ID *uint
}

// UnmarshalJSON реализует json.Unmarshaler для CategoryRef
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	r.ID = nil

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return errors.New("quiz_category must be an object")
	}

	var raw struct {
		ID   json.RawMessage `json:"id"`
		Type string          `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// Отсутствующий id не ограничивает выбор
	if len(raw.ID) == 0 {
		return nil
	}

	var id FlexUint
	if err := id.UnmarshalJSON(raw.ID); err != nil {
		return fmt.Errorf("quiz_category.id: %w", err)
	}
	if id == 0 {
		// Ноль — сентинел выбора по всем категориям
		return nil
	}

	categoryID := uint(id)
	r.ID = &categoryID
	return nil
}
