package domain

import (
	"time"
)

type Country struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug       string    `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	FlagSVGURL *string   `gorm:"column:flag_svg_url;type:text" json:"flag_svg_url,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Country) TableName() string {
	return "countries"
}
