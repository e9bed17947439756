package cache

import (
	"sort"

	"github.com/iudanet/quizkeeper/internal/models"
)

// ReconcileDocuments объединяет удаленный и закешированный списки
// документов: дедупликация по ID, при совпадении побеждает удаленная
// запись, результат отсортирован по времени создания по убыванию.
// Чистая функция без побочных эффектов.
func ReconcileDocuments(remote, cached []*models.Document) []*models.Document {
	seen := make(map[string]bool, len(remote))
	merged := make([]*models.Document, 0, len(remote)+len(cached))

	// Сначала удаленные записи: remote wins
	for _, doc := range remote {
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		merged = append(merged, doc)
	}

	// Затем закешированные, которых нет в удаленном списке
	for _, doc := range cached {
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true
		merged = append(merged, doc)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

// ReconcileQuizzes объединяет удаленный и закешированный списки квизов
// по тем же правилам, что и ReconcileDocuments
func ReconcileQuizzes(remote, cached []*models.Quiz) []*models.Quiz {
	seen := make(map[string]bool, len(remote))
	merged := make([]*models.Quiz, 0, len(remote)+len(cached))

	for _, quiz := range remote {
		if seen[quiz.ID] {
			continue
		}
		seen[quiz.ID] = true
		merged = append(merged, quiz)
	}

	for _, quiz := range cached {
		if seen[quiz.ID] {
			continue
		}
		seen[quiz.ID] = true
		merged = append(merged, quiz)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}
