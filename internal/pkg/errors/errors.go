package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или страница выборки не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnprocessable используется, когда корректный по форме запрос
	// не может быть выполнен (нарушение ссылочной целостности, удаление
	// несуществующей записи и т.п.).
	ErrUnprocessable = errors.New("unprocessable request")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)
