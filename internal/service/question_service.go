package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/repository"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// QuestionsPerPage определяет фиксированный размер страницы во всех постраничных выборках
const QuestionsPerPage = 10

// QuestionService предоставляет методы для работы с банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPage возвращает страницу вопросов и общее количество вопросов в банке.
// Страница за пределами данных пуста и трактуется как ErrNotFound.
func (s *QuestionService) ListPage(page int) ([]entity.Question, int64, error) {
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page %d is out of range", apperrors.ErrNotFound, page)
	}

	questions, err := s.questionRepo.List(pageOffset(page), QuestionsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, 0, fmt.Errorf("%w: page %d is out of range", apperrors.ErrNotFound, page)
	}

	total, err := s.questionRepo.CountAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return questions, total, nil
}

// ListPageByCategory возвращает страницу вопросов указанной категории вместе
// с самой категорией. Общее количество считается по всему банку, а не по
// категории: фронтенд показывает его как размер банка.
// Пустая страница проверяется до обращения к категории, поэтому неизвестная
// категория дает тот же ErrNotFound, что и вышедший за пределы номер страницы.
func (s *QuestionService) ListPageByCategory(categoryID uint, page int) ([]entity.Question, int64, *entity.Category, error) {
	if page < 1 {
		return nil, 0, nil, fmt.Errorf("%w: page %d is out of range", apperrors.ErrNotFound, page)
	}

	questions, err := s.questionRepo.ListByCategory(categoryID, pageOffset(page), QuestionsPerPage)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to list questions for category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, 0, nil, fmt.Errorf("%w: category %d page %d is empty", apperrors.ErrNotFound, categoryID, page)
	}

	total, err := s.questionRepo.CountAll()
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to count questions: %w", err)
	}

	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, nil, err
	}
	return questions, total, category, nil
}

// Search возвращает все вопросы, содержащие подстроку term, без пагинации.
// Пустой term соответствует всем вопросам.
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// Create добавляет вопрос в банк. Ошибки хранилища при записи
// классифицируются как ErrUnprocessable.
func (s *QuestionService) Create(question *entity.Question) error {
	if strings.TrimSpace(question.Question) == "" {
		return fmt.Errorf("%w: question text is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(question.Answer) == "" {
		return fmt.Errorf("%w: answer text is required", apperrors.ErrValidation)
	}
	if question.Category == 0 {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if question.Difficulty < 1 {
		return fmt.Errorf("%w: difficulty must be a positive integer", apperrors.ErrValidation)
	}

	if err := s.questionRepo.Create(question); err != nil {
		if errors.Is(err, apperrors.ErrUnprocessable) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
	}
	return nil
}

// Delete удаляет вопрос по ID. Отсутствие записи и любые ошибки хранилища
// классифицируются как ErrUnprocessable.
func (s *QuestionService) Delete(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: question %d not found", apperrors.ErrUnprocessable, id)
		}
		return fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
	}
	return nil
}

// ExportAll возвращает все вопросы банка для выгрузки в файл
func (s *QuestionService) ExportAll() ([]entity.Question, error) {
	return s.questionRepo.ListAll()
}

// pageOffset вычисляет смещение окна для 1-индексированного номера страницы
func pageOffset(page int) int {
	return (page - 1) * QuestionsPerPage
}
