package dto

import (
	"time"
)

type CountryResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Slug      string    `json:"slug" example:"norway"`
	Name      string    `json:"name" example:"Norway"`
	FlagURL   *string   `json:"flag_url" example:"https://flagcdn.com/no.svg"`
	CreatedAt time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

type LoginResponse struct {
	Country   CountryResponse `json:"country"`
	Token     string          `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time       `json:"expires_at" example:"2026-03-02T12:00:00Z"`
}

type UploadedImageResponse struct {
	SubmissionID string `json:"submission_id" example:"9b2f6c1e-8d7a-4e3b-a1c5-2f4d6e8a0b1c"`
	StoragePath  string `json:"storage_path" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b/1772366400000-k3j9x2.jpg"`
	PublicURL    string `json:"public_url" example:"https://cdn.example.com/550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b/1772366400000-k3j9x2.jpg"`
}

type UploadResponse struct {
	Success  bool                    `json:"success" example:"true"`
	BatchID  string                  `json:"batch_id" example:"01jq3v6x0d8m2k4r5t7w9y1z3b"`
	GroupKey string                  `json:"group_key" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b"`
	Uploaded []UploadedImageResponse `json:"uploaded"`
}

type GalleryImageResponse struct {
	ID          string    `json:"id" example:"9b2f6c1e-8d7a-4e3b-a1c5-2f4d6e8a0b1c"`
	StoragePath string    `json:"image_path" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b/1772366400000-k3j9x2.jpg"`
	PublicURL   string    `json:"public_url" example:"https://cdn.example.com/550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b/1772366400000-k3j9x2.jpg"`
	CreatedAt   time.Time `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

// GroupResponse is one gallery post. Legacy groups cannot be removed by
// group key; delete their images by submission id instead.
type GroupResponse struct {
	GroupKey   string                 `json:"group_key" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b"`
	Caption    *string                `json:"caption" example:"Midsummer in Tromsø"`
	AuthorName *string                `json:"author_name" example:"Ingrid"`
	Story      *string                `json:"story" example:"We stayed up all night."`
	CreatedAt  time.Time              `json:"created_at" example:"2026-03-01T12:00:00Z"`
	Legacy     bool                   `json:"legacy" example:"false"`
	Images     []GalleryImageResponse `json:"images"`
}

type GalleryResponse struct {
	CountryID string          `json:"country_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Groups    []GroupResponse `json:"groups"`
}

type DeleteSubmissionsResponse struct {
	Success bool   `json:"success" example:"true"`
	Mode    string `json:"mode" example:"group"`
	Target  string `json:"target" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b"`
	Deleted int64  `json:"deleted" example:"3"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
