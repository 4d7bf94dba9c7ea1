package repository

import (
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями вопросов
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
