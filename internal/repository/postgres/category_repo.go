package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetAll возвращает все категории, упорядоченные по ID
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
