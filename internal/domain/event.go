package domain

import "time"

type GalleryEventType string

const (
	GalleryEventBatchCreated GalleryEventType = "batch.created"
	GalleryEventBatchDeleted GalleryEventType = "batch.deleted"
)

// GalleryEvent tells live gallery viewers of a country that a group changed.
type GalleryEvent struct {
	Type          GalleryEventType `json:"type"`
	CountryID     string           `json:"country_id"`
	GroupKey      string           `json:"group_key"`
	SubmissionIDs []string         `json:"submission_ids,omitempty"`
	ImageURLs     []string         `json:"image_urls,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}
