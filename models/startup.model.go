package models

import "time"

// Business classification of a registered startup.
const (
	BusinessTypeManufacturing    = "manufacturing"
	BusinessTypeFMCGDistribution = "fmcg_distribution"
	BusinessTypeEngineeringGoods = "engineering_goods"
	BusinessTypeDigitalServices  = "digital_services"
	BusinessTypeOther            = "other"
)

const (
	BusinessStageIdea      = "idea"
	BusinessStageMVP       = "mvp"
	BusinessStagePrototype = "prototype"
	BusinessStagePilot     = "pilot"
	BusinessStageLaunch    = "launch"
)

const (
	StartupStatusPending = "pending"
	StartupStatusActive  = "active"
)

// Onboarding progression markers stored on the startup so the portal knows
// which page to send the founder to next.
const (
	NextStepKYC     = "kyc"
	NextStepPayment = "payment"
)

type Startup struct {
	Base
	FounderName       string `gorm:"not null" json:"founderName"`
	FounderEmail      string `gorm:"not null" json:"founderEmail"`
	FounderPhone      string `gorm:"default:''" json:"founderPhone"`
	FounderExperience string `gorm:"default:''" json:"founderExperience"`

	BusinessName     string `gorm:"not null" json:"businessName"`
	BusinessType     string `gorm:"not null" json:"businessType"`
	BusinessIdea     string `gorm:"type:text" json:"businessIdea"`
	BusinessStage    string `gorm:"default:''" json:"businessStage"`
	BusinessLocation string `gorm:"default:''" json:"businessLocation"`

	PitchDeckRequired  bool `gorm:"default:false" json:"pitchDeckRequired"`
	MentorshipRequired bool `gorm:"default:false" json:"mentorshipRequired"`
	FundingRequired    bool `gorm:"default:false" json:"fundingRequired"`

	ComplianceConsent     bool `gorm:"default:false" json:"complianceConsent"`
	DataProcessingConsent bool `gorm:"default:false" json:"dataProcessingConsent"`

	Status             string     `gorm:"default:'pending'" json:"status"`
	OnboardingComplete bool       `gorm:"default:false" json:"onboardingComplete"`
	RegistrationDate   *time.Time `json:"registrationDate"`
	NextStep           string     `gorm:"default:''" json:"nextStep"`
}
