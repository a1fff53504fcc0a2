package dto

type LoginRequest struct {
	CountrySlug string `json:"country_slug" binding:"required" example:"norway"`
	AccessCode  string `json:"access_code" binding:"required" example:"fjord-2026"`
}

// UploadForm is the non-file part of the multipart upload. Files arrive as
// repeated "images" parts, or as a single "image" part from older clients.
type UploadForm struct {
	CountrySlug string `form:"country_slug" example:"norway"`
	AccessCode  string `form:"access_code" example:"fjord-2026"`
	Caption     string `form:"caption" example:"Midsummer in Tromsø"`
	AuthorName  string `form:"author_name" example:"Ingrid"`
	Story       string `form:"story" example:"We stayed up all night."`
}

// FillLegacyFields copies the camelCase field names posted by older clients
// into any field the snake_case form left empty.
func (f *UploadForm) FillLegacyFields(values map[string][]string) {
	fill := func(dst *string, key string) {
		if *dst == "" && len(values[key]) > 0 {
			*dst = values[key][0]
		}
	}
	fill(&f.CountrySlug, "countrySlug")
	fill(&f.AccessCode, "accessCode")
	fill(&f.AuthorName, "authorName")
}

type GalleryQuery struct {
	CountryID string `form:"country_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}

type SearchQuery struct {
	CountryID string `form:"country_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Query     string `form:"q" example:"midsummer"`
}

// DeleteSubmissionsRequest names either a whole group or one submission.
// GroupKey wins when both are present.
type DeleteSubmissionsRequest struct {
	AdminDeleteCode string `json:"admin_delete_code" example:"s3cret"`
	GroupKey        string `json:"group_key,omitempty" example:"550e8400-e29b-41d4-a716-446655440000/01jq3v6x0d8m2k4r5t7w9y1z3b"`
	SubmissionID    string `json:"submission_id,omitempty" example:"9b2f6c1e-8d7a-4e3b-a1c5-2f4d6e8a0b1c"`
}
