package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
	apperrors "github.com/abdullahwaheed/fsnd-capstone/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	err := r.db.Create(question).Error
	if err != nil {
		// Ссылка на несуществующую категорию нарушает внешний ключ
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %d does not exist: %w", question.Category, apperrors.ErrUnprocessable)
		}
		return err
	}
	return nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List возвращает окно вопросов, упорядоченных по ID
func (r *QuestionRepo) List(offset, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает окно вопросов указанной категории
func (r *QuestionRepo) ListByCategory(categoryID uint, offset, limit int) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).
		Order("id").Offset(offset).Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListAll возвращает все вопросы, упорядоченные по ID
func (r *QuestionRepo) ListAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search возвращает вопросы, текст которых содержит подстроку term без учета регистра
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountAll возвращает общее количество вопросов в банке
func (r *QuestionRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// CountEligible возвращает количество вопросов вне excludeIDs.
// Ненулевой categoryID ограничивает выборку одной категорией.
func (r *QuestionRepo) CountEligible(excludeIDs []uint, categoryID *uint) (int64, error) {
	var count int64
	err := r.eligibleQuery(excludeIDs, categoryID).Count(&count).Error
	return count, err
}

// EligibleAt возвращает вопрос на позиции offset среди кандидатов,
// упорядоченных по ID
func (r *QuestionRepo) EligibleAt(excludeIDs []uint, categoryID *uint, offset int) (*entity.Question, error) {
	var question entity.Question
	err := r.eligibleQuery(excludeIDs, categoryID).
		Order("id").Offset(offset).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// eligibleQuery строит общий запрос кандидатов для CountEligible и EligibleAt
func (r *QuestionRepo) eligibleQuery(excludeIDs []uint, categoryID *uint) *gorm.DB {
	query := r.db.Model(&entity.Question{})
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}
	return query
}

// isForeignKeyViolation проверяет Postgres foreign key violation (23503) для pgconn и lib/pq драйверов
func isForeignKeyViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return true
	}
	return false
}
