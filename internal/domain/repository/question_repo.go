package repository

import (
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с банком вопросов
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Delete(id uint) error

	// Постраничные выборки, упорядоченные по id
	List(offset, limit int) ([]entity.Question, error)
	ListByCategory(categoryID uint, offset, limit int) ([]entity.Question, error)
	ListAll() ([]entity.Question, error)

	// Search возвращает вопросы, текст которых содержит подстроку term
	// без учета регистра
	Search(term string) ([]entity.Question, error)

	CountAll() (int64, error)

	// Методы выборки кандидатов для викторины: вопросы вне excludeIDs,
	// при ненулевом categoryID — только из этой категории
	CountEligible(excludeIDs []uint, categoryID *uint) (int64, error)
	EligibleAt(excludeIDs []uint, categoryID *uint, offset int) (*entity.Question, error)
}
