package models

import "time"

// Base carries the identity and timestamp fields shared by every record.
// Stores assign these on write; values sent by clients are ignored.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b Base) GetID() uint { return b.ID }

func (b *Base) SetID(id uint) { b.ID = id }

// Stamp sets CreatedAt on the first write and bumps UpdatedAt on every write.
func (b *Base) Stamp(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
