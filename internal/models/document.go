package models

import (
	"fmt"
	"strings"
	"time"
)

// Document представляет загруженный учебный материал.
// ID совпадает с серверным идентификатором после синхронизации;
// для документов, созданных оффлайн, используется placeholder-id.
type Document struct {
	ID          string    `json:"id"`                   // ID уникальный идентификатор (UUID или offline-id)
	UserID      string    `json:"user_id"`              // UserID владелец документа
	Name        string    `json:"name"`                 // Name имя файла, как его видит пользователь
	MimeType    string    `json:"mime_type"`            // MimeType MIME-тип файла (например, "application/pdf")
	Size        int64     `json:"size"`                 // Size размер файла в байтах
	StoragePath string    `json:"storage_path"`         // StoragePath путь в удаленном blob-хранилище
	LocalPath   string    `json:"local_path,omitempty"` // LocalPath локальный путь до выгрузки на сервер
	CreatedAt   time.Time `json:"created_at"`           // CreatedAt время создания
	CachedAt    time.Time `json:"cached_at,omitempty"`  // CachedAt время последней локальной записи в кеш
}

// OfflineIDPrefix префикс для идентификаторов, созданных без связи с сервером
const OfflineIDPrefix = "offline-"

// NewOfflineID создает placeholder-идентификатор для сущности,
// созданной оффлайн. Канонический серверный ID появится после синхронизации.
func NewOfflineID() string {
	return fmt.Sprintf("%s%d", OfflineIDPrefix, time.Now().UnixNano())
}

// IsOfflineID сообщает, является ли идентификатор локальным placeholder-ом
func IsOfflineID(id string) bool {
	return strings.HasPrefix(id, OfflineIDPrefix)
}
