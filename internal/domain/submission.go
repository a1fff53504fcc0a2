package domain

import (
	"strings"
	"time"
)

// Submission is one uploaded photo. StoragePath is the blob key, laid out as
// countryID/batchID/file for batched uploads and countryID/file for rows
// written before batching existed.
type Submission struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CountryID   string    `gorm:"type:uuid;not null;index" json:"country_id"`
	BatchID     *string   `gorm:"type:text;index" json:"batch_id,omitempty"`
	StoragePath string    `gorm:"column:image_path;type:text;not null" json:"image_path"`
	Caption     *string   `gorm:"type:text" json:"caption,omitempty"`
	AuthorName  *string   `gorm:"type:text" json:"author_name,omitempty"`
	Story       *string   `gorm:"type:text" json:"story,omitempty"`
	Approved    bool      `gorm:"not null;default:true" json:"approved"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// Batch is the set of submissions created by a single upload call.
type Batch struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	CountryID  string    `gorm:"type:uuid;not null;index" json:"country_id"`
	Caption    *string   `gorm:"type:text" json:"caption,omitempty"`
	AuthorName *string   `gorm:"type:text" json:"author_name,omitempty"`
	Story      *string   `gorm:"type:text" json:"story,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Batch) TableName() string {
	return "batches"
}

// GroupKey is the storage prefix shared by every file of the batch.
func (b *Batch) GroupKey() string {
	return b.CountryID + "/" + b.ID
}

// GroupKeyFromPath derives the gallery group of a storage path. Paths with at
// least three segments group by their first two; shorter legacy paths form a
// group of their own.
func GroupKeyFromPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) >= 3 {
		return parts[0] + "/" + parts[1]
	}
	if len(parts) == 2 && parts[1] != "" {
		return parts[0] + "/" + parts[1]
	}
	return parts[0] + "/" + path
}

// IsLegacyPath reports whether path predates batched uploads.
func IsLegacyPath(path string) bool {
	return strings.Count(path, "/") < 2
}

// GalleryImage is one photo inside a gallery group.
type GalleryImage struct {
	ID          string    `json:"id"`
	StoragePath string    `json:"image_path"`
	PublicURL   string    `json:"public_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Group is a gallery post: every approved submission sharing a group key.
type Group struct {
	GroupKey   string         `json:"group_key"`
	CountryID  string         `json:"country_id"`
	Caption    *string        `json:"caption,omitempty"`
	AuthorName *string        `json:"author_name,omitempty"`
	Story      *string        `json:"story,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Legacy     bool           `json:"legacy"`
	Images     []GalleryImage `json:"images"`
}
