package domain

import "time"

// QuotaUsage is one client installation's interpretation counter for one
// day. The date is a plain YYYY-MM-DD string; the counter resets when the
// stored date differs from the current date.
type QuotaUsage struct {
	ClientID  string    `json:"client_id" gorm:"type:varchar(64);primaryKey"`
	Date      string    `json:"date" gorm:"type:char(10);not null"`
	Used      int       `json:"used" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for QuotaUsage
func (QuotaUsage) TableName() string { return "quota_usage" }
