package domain

import "time"

type AdminDeleteCode struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CodeHash  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AdminDeleteCode) TableName() string {
	return "admin_delete_code"
}
