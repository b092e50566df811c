package review

import "time"

// Review is an append-only clinical note authored against a client.
type Review struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ClientID  string    `gorm:"type:uuid;not null;index"`
	Comment   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
