package program

import "time"

type Program struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null;default:''"`
	Logo        string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Patch carries partial-update fields. A nil pointer means the field was
// absent from the request and keeps its stored value; a non-nil pointer
// is applied even when it points at an empty string.
type Patch struct {
	Name        *string
	Description *string
	Logo        *string
}

type CreateInput struct {
	Name        string
	Description string
	Logo        string
}
