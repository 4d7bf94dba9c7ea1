package service

import (
	"fmt"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/repository"
)

// CategoryService предоставляет методы для работы с категориями вопросов
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListAll возвращает все категории, упорядоченные по ID
func (s *CategoryService) ListAll() ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
