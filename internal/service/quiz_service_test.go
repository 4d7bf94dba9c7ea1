package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// ============================================================================
// Тесты для QuizService
// Используем моки из question_service_test.go: MockQuestionRepository
// ============================================================================

// helper для создания pointer
func uintPtr(v uint) *uint { return &v }

// newQuizServiceWithDraw создает QuizService с детерминированным выбором индекса
func newQuizServiceWithDraw(questionRepo *MockQuestionRepository, draw func(n int) int) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		randInt:      draw,
	}
}

func TestQuizService_NextQuestion_ExhaustedPool(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)

	previous := []uint{2, 4, 5}
	mockQuestionRepo.On("CountEligible", previous, (*uint)(nil)).Return(int64(0), nil)

	quizService := NewQuizService(mockQuestionRepo)

	// Act
	question, err := quizService.NextQuestion(previous, nil)

	// Assert: исчерпание кандидатов не ошибка, раунд просто закончился
	require.NoError(t, err)
	assert.Nil(t, question)
	mockQuestionRepo.AssertNotCalled(t, "EligibleAt")
}

func TestQuizService_NextQuestion_DrawBoundedByCount(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)

	expected := &entity.Question{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?"}
	previous := []uint{13}

	mockQuestionRepo.On("CountEligible", previous, (*uint)(nil)).Return(int64(7), nil)
	mockQuestionRepo.On("EligibleAt", previous, (*uint)(nil), 4).Return(expected, nil)

	drawCalls := 0
	quizService := newQuizServiceWithDraw(mockQuestionRepo, func(n int) int {
		drawCalls++
		assert.Equal(t, 7, n, "Индекс выбирается из количества кандидатов")
		return 4
	})

	// Act
	question, err := quizService.NextQuestion(previous, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(14), question.ID)
	assert.Equal(t, 1, drawCalls)
	mockQuestionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_ForwardsCategory(t *testing.T) {
	// Arrange: ограничение по категории доходит до репозитория как есть
	mockQuestionRepo := new(MockQuestionRepository)

	categoryID := uintPtr(6)
	expected := &entity.Question{ID: 10, Category: 6}

	mockQuestionRepo.On("CountEligible", []uint{}, categoryID).Return(int64(2), nil)
	mockQuestionRepo.On("EligibleAt", []uint{}, categoryID, 1).Return(expected, nil)

	quizService := newQuizServiceWithDraw(mockQuestionRepo, func(n int) int { return 1 })

	// Act
	question, err := quizService.NextQuestion([]uint{}, categoryID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(6), question.Category)
	mockQuestionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_SingleCandidate(t *testing.T) {
	// Arrange: при одном кандидате настоящий rand.Intn(1) детерминирован
	mockQuestionRepo := new(MockQuestionRepository)

	expected := &entity.Question{ID: 23}
	previous := []uint{20, 21, 22}

	mockQuestionRepo.On("CountEligible", previous, (*uint)(nil)).Return(int64(1), nil)
	mockQuestionRepo.On("EligibleAt", previous, (*uint)(nil), 0).Return(expected, nil)

	quizService := NewQuizService(mockQuestionRepo)

	// Act
	question, err := quizService.NextQuestion(previous, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(23), question.ID)
	mockQuestionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_SetShrankBetweenCalls(t *testing.T) {
	// Arrange: между подсчетом и выборкой вопрос удалили
	mockQuestionRepo := new(MockQuestionRepository)

	mockQuestionRepo.On("CountEligible", []uint{}, (*uint)(nil)).Return(int64(3), nil)
	mockQuestionRepo.On("EligibleAt", []uint{}, (*uint)(nil), 2).Return(nil, apperrors.ErrNotFound)

	quizService := newQuizServiceWithDraw(mockQuestionRepo, func(n int) int { return 2 })

	// Act
	question, err := quizService.NextQuestion([]uint{}, nil)

	// Assert
	require.NoError(t, err, "Исчезнувший кандидат трактуется как конец раунда")
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_CountError(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)

	mockQuestionRepo.On("CountEligible", []uint{}, (*uint)(nil)).Return(int64(0), errors.New("connection refused"))

	quizService := NewQuizService(mockQuestionRepo)

	// Act
	question, err := quizService.NextQuestion([]uint{}, nil)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, question)
	mockQuestionRepo.AssertNotCalled(t, "EligibleAt")
}
