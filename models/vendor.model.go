package models

const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
)

type Vendor struct {
	Base
	Name       string  `gorm:"not null" json:"name"`
	Email      string  `gorm:"default:''" json:"email"`
	Phone      string  `gorm:"default:''" json:"phone"`
	Contact    string  `gorm:"default:''" json:"contact"`
	Category   string  `gorm:"default:''" json:"category"`
	Rating     float64 `gorm:"default:0" json:"rating"`
	TotalSpent float64 `gorm:"default:0" json:"totalSpent"`
	Status     string  `gorm:"default:'active'" json:"status"`
}
