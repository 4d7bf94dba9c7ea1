package helper

import (
	"github.com/abdullahwaheed/fsnd-capstone/internal/domain/entity"
)

// CategoriesToMap преобразует список категорий в словарь из id в название
// в формате, который ожидает фронтенд. Ключи словаря сериализуются
// в JSON как строки.
func CategoriesToMap(categories []entity.Category) map[uint]string {
	converted := make(map[uint]string, len(categories))
	for _, category := range categories {
		converted[category.ID] = category.Type
	}
	return converted
}
