package entity

// Question представляет вопрос в банке викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:500;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// MatchesCategory проверяет, относится ли вопрос к указанной категории.
// Нулевой указатель означает отсутствие ограничения по категории.
func (q *Question) MatchesCategory(categoryID *uint) bool {
	return categoryID == nil || q.Category == *categoryID
}
