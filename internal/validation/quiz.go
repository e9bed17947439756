package validation

import (
	"fmt"
	"strings"
)

const (
	// MinQuestionCount минимальное число вопросов в квизе
	MinQuestionCount = 1
	// MaxQuestionCount максимальное число вопросов в квизе
	MaxQuestionCount = 50
	// MaxQuizTitleLen максимальная длина названия квиза
	MaxQuizTitleLen = 200
	// MaxQuizDocuments максимальное число исходных документов
	MaxQuizDocuments = 10
)

// ValidateQuizTitle проверяет название квиза
func ValidateQuizTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("quiz title cannot be empty")
	}

	if len(title) > MaxQuizTitleLen {
		return fmt.Errorf("quiz title must not exceed %d characters", MaxQuizTitleLen)
	}

	return nil
}

// ValidateQuizParams проверяет параметры создания квиза
func ValidateQuizParams(title string, documentIDs []string, questionCount int) error {
	if err := ValidateQuizTitle(title); err != nil {
		return err
	}

	if len(documentIDs) == 0 {
		return fmt.Errorf("quiz requires at least one source document")
	}

	if len(documentIDs) > MaxQuizDocuments {
		return fmt.Errorf("quiz cannot use more than %d source documents", MaxQuizDocuments)
	}

	for _, id := range documentIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("document ID cannot be empty")
		}
	}

	if questionCount < MinQuestionCount || questionCount > MaxQuestionCount {
		return fmt.Errorf("question count must be between %d and %d", MinQuestionCount, MaxQuestionCount)
	}

	return nil
}
