package client

import "time"

type Client struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	Email     *string   `gorm:""`
	Phone     *string   `gorm:""`
	ProgramID string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Detail is a client joined with the summary fields of its owning
// program, used by the single-client read.
type Detail struct {
	Client
	ProgramName        string
	ProgramDescription string
}

// ListFilter fields are AND-combined; empty fields are ignored. Text
// fields match as case-insensitive substrings.
type ListFilter struct {
	ProgramID string
	FullName  string
	Email     string
	Phone     string
}

// Patch carries partial-update fields with explicit presence: nil means
// absent. Present-but-empty email and phone clear the stored value;
// full name and program may not be cleared.
type Patch struct {
	FullName  *string
	Email     *string
	Phone     *string
	ProgramID *string
}

type CreateInput struct {
	ProgramID string
	FullName  string
	Email     *string
	Phone     *string
}
