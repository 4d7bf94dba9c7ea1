package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_MatchesCategory_NoRestriction(t *testing.T) {
	// Arrange
	question := &Question{
		ID:         13,
		Question:   "What is the largest lake in Africa?",
		Answer:     "Lake Victoria",
		Category:   3,
		Difficulty: 2,
	}

	// Act & Assert: nil означает отсутствие ограничения по категории
	assert.True(t, question.MatchesCategory(nil), "Без ограничения подходит любой вопрос")
}

func TestQuestion_MatchesCategory_SameCategory(t *testing.T) {
	// Arrange
	question := &Question{ID: 13, Category: 3}
	categoryID := uint(3)

	// Act & Assert
	assert.True(t, question.MatchesCategory(&categoryID), "Вопрос своей категории должен подходить")
}

func TestQuestion_MatchesCategory_OtherCategory(t *testing.T) {
	// Arrange
	question := &Question{ID: 13, Category: 3}
	categoryID := uint(5)

	// Act & Assert
	assert.False(t, question.MatchesCategory(&categoryID), "Вопрос чужой категории не должен подходить")
}

func TestQuestion_TableName(t *testing.T) {
	question := Question{}
	assert.Equal(t, "questions", question.TableName(), "TableName должен возвращать 'questions'")
}

func TestQuestion_JSONSerialization(t *testing.T) {
	// Arrange
	question := Question{
		ID:         5,
		Question:   "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?",
		Answer:     "Maya Angelou",
		Category:   4,
		Difficulty: 2,
	}

	// Act
	data, err := json.Marshal(question)

	// Assert: ключи соответствуют формату API
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, float64(5), parsed["id"])
	assert.Equal(t, "Maya Angelou", parsed["answer"])
	assert.Equal(t, float64(4), parsed["category"])
	assert.Equal(t, float64(2), parsed["difficulty"])
}

func TestCategory_TableName(t *testing.T) {
	category := Category{}
	assert.Equal(t, "categories", category.TableName(), "TableName должен возвращать 'categories'")
}

func TestCategory_JSONSerialization(t *testing.T) {
	// Arrange
	category := Category{ID: 1, Type: "Science"}

	// Act
	data, err := json.Marshal(category)

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "type": "Science"}`, string(data))
}
