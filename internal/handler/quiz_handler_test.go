package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
)

// helper для создания pointer на категорию
func categoryPtr(v uint) *uint { return &v }

// ============================================================================
// POST /quizzes
// ============================================================================

func TestNextQuestion_AllCategories(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	expected := &entity.Question{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1}

	// Нулевой id категории означает выбор по всему банку
	mockQuestionRepo.On("CountEligible", []uint{}, (*uint)(nil)).Return(int64(19), nil)
	mockQuestionRepo.On("EligibleAt", []uint{}, (*uint)(nil), mock.AnythingOfType("int")).Return(expected, nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	question, ok := resp["question"].(map[string]interface{})
	require.True(t, ok, "question should be an object")
	assert.Equal(t, float64(9), question["id"])
	mockQuestionRepo.AssertExpectations(t)
}

func TestNextQuestion_CategoryScoped(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	expected := &entity.Question{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3}

	mockQuestionRepo.On("CountEligible", []uint{}, categoryPtr(6)).Return(int64(2), nil)
	mockQuestionRepo.On("EligibleAt", []uint{}, categoryPtr(6), mock.AnythingOfType("int")).Return(expected, nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": 6, "type": "Sports"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question, ok := resp["question"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(6), question["category"])
	mockQuestionRepo.AssertExpectations(t)
}

func TestNextQuestion_NumericStringCategory(t *testing.T) {
	// Фронтенд может прислать id категории строкой
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	expected := &entity.Question{ID: 20, Category: 1}

	mockQuestionRepo.On("CountEligible", []uint{}, categoryPtr(1)).Return(int64(3), nil)
	mockQuestionRepo.On("EligibleAt", []uint{}, categoryPtr(1), mock.AnythingOfType("int")).Return(expected, nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": "1", "type": "Science"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockQuestionRepo.AssertExpectations(t)
}

func TestNextQuestion_PreviousQuestionsExcluded(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	// Идентификаторы уже заданных вопросов доходят до хранилища как есть
	mockQuestionRepo.On("CountEligible", []uint{10, 11}, categoryPtr(6)).Return(int64(0), nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []int{10, 11},
		"quiz_category":      map[string]interface{}{"id": 6, "type": "Sports"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	// Вопросы категории исчерпаны: question равен null
	value, exists := resp["question"]
	require.True(t, exists, "question key should be present")
	assert.Nil(t, value)
	mockQuestionRepo.AssertNotCalled(t, "EligibleAt")
}

func TestNextQuestion_NumericStringPreviousQuestions(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	mockQuestionRepo.On("CountEligible", []uint{2, 4}, (*uint)(nil)).Return(int64(0), nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []string{"2", "4"},
		"quiz_category":      map[string]interface{}{"id": 0},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockQuestionRepo.AssertExpectations(t)
}

func TestNextQuestion_MissingBodyFields(t *testing.T) {
	// Отсутствие previous_questions и quiz_category эквивалентно пустому
	// списку и выбору по всем категориям
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	mockQuestionRepo.On("CountEligible", []uint{}, (*uint)(nil)).Return(int64(0), nil)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Nil(t, resp["question"])
}

func TestNextQuestion_InvalidCategoryID(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", map[string]interface{}{
		"previous_questions": []int{},
		"quiz_category":      map[string]interface{}{"id": "abc", "type": "click"},
	})

	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "unprocessable")
	mockQuestionRepo.AssertNotCalled(t, "CountEligible")
}

func TestNextQuestion_NullQuizCategory(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", `{"previous_questions": [], "quiz_category": null}`)

	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "unprocessable")
	mockQuestionRepo.AssertNotCalled(t, "CountEligible")
}

func TestNextQuestion_MalformedJSON(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", `{"previous_questions": [`)

	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "unprocessable")
}

func TestNextQuestion_EmptyBody(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepo)
	mockCategoryRepo := new(MockCategoryRepo)

	router := newTestRouter(mockQuestionRepo, mockCategoryRepo)
	w := performRequest(router, "POST", "/quizzes", nil)

	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "unprocessable")
}
