package models

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusProposal  = "proposal"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// LeadFunnelOrder is the pipeline ordering used by the sales funnel chart.
var LeadFunnelOrder = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusWon,
	LeadStatusLost,
}

type Lead struct {
	Base
	Name    string  `gorm:"not null" json:"name"`
	Company string  `gorm:"default:''" json:"company"`
	Email   string  `gorm:"default:''" json:"email"`
	Phone   string  `gorm:"default:''" json:"phone"`
	Value   float64 `gorm:"default:0" json:"value"`
	Source  string  `gorm:"default:''" json:"source"`
	Status  string  `gorm:"default:'new'" json:"status"`
}
