package domain

import (
	"time"
)

// AccessCode is a shared secret that lets anyone holding it submit photos for
// one country. Only the SHA-1 hex digest of the code is stored.
type AccessCode struct {
	ID        string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CountryID string     `gorm:"type:uuid;not null;index" json:"country_id"`
	CodeHash  string     `gorm:"type:text;not null" json:"-"`
	ExpiresAt *time.Time `gorm:"type:timestamp with time zone" json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	UsedCount int        `gorm:"not null;default:0" json:"used_count"`
	CreatedAt time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AccessCode) TableName() string {
	return "country_access_codes"
}

// IsExpired reports whether the code can no longer be used at now.
// A code with no expiry never expires.
func (c *AccessCode) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// IsExhausted reports whether the usage cap has been reached.
// A nil cap is unlimited; a cap of zero is never usable.
func (c *AccessCode) IsExhausted() bool {
	return c.MaxUses != nil && c.UsedCount >= *c.MaxUses
}

// IsUsable combines the expiry and cap checks.
func (c *AccessCode) IsUsable(now time.Time) bool {
	return !c.IsExpired(now) && !c.IsExhausted()
}
