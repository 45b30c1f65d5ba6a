package models

// TicketModel is the persistence shape of a ticket. TitleNormalized holds
// the lowercased trimmed title; its unique index is what enforces the
// case-insensitive title uniqueness invariant under concurrent writers.
type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:80;not null"`
	TitleNormalized string `gorm:"uniqueIndex;size:80;not null"`
	Description     string `gorm:"type:text;not null"`
	Status          string `gorm:"size:20;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	Tags            string `gorm:"type:json"`
	CreatedAt       int64  `gorm:"not null"`
	UpdatedAt       int64  `gorm:"not null"`
	ResolvedAt      *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
