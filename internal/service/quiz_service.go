package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/repository"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// QuizService выбирает следующий вопрос раунда викторины
type QuizService struct {
	questionRepo repository.QuestionRepository

	// randInt подменяется в тестах для детерминированного выбора
	randInt func(n int) int
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		randInt:      rand.Intn,
	}
}

// NextQuestion выбирает равновероятно случайный вопрос, не входящий в
// previousIDs. Ненулевой categoryID ограничивает выбор одной категорией.
// Когда кандидатов не осталось, возвращается (nil, nil): для клиента это
// означает конец раунда.
func (s *QuizService) NextQuestion(previousIDs []uint, categoryID *uint) (*entity.Question, error) {
	count, err := s.questionRepo.CountEligible(previousIDs, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count eligible questions: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	question, err := s.questionRepo.EligibleAt(previousIDs, categoryID, s.randInt(int(count)))
	if err != nil {
		// Набор кандидатов сократился между подсчетом и выборкой
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch eligible question: %w", err)
	}
	return question, nil
}
