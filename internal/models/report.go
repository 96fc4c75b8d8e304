package models

import "time"

// Severity levels accepted on crime reports.
const (
	SeverityMinor    = "minor"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
	SeverityCritical = "critical"
)

// CrimeReport is one submitted crime incident record. Rows are written
// once by the submission handler and never updated or deleted.
//
// ImageURLs holds the uploaded image references serialized as a JSON
// array; the first element is the cover image. It is stored and
// returned in serialized form, clients parse it.
type CrimeReport struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	IncidentDate string `json:"incident_date" gorm:"not null;index:idx_crime_reports_incident_date"`
	Address      string `json:"address" gorm:"not null"`
	District     string `json:"district" gorm:"not null"`
	Landmark     string `json:"landmark" gorm:"not null"`
	Pincode      string `json:"pincode" gorm:"not null"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CrimeType     string   `json:"crime_type" gorm:"not null"`
	SeverityLevel string   `json:"severity_level" gorm:"not null"`
	WeaponUsed    *string  `json:"weapon_used"`
	EstimatedLoss *float64 `json:"estimated_loss"`

	NumVictims        int     `json:"num_victims"`
	VictimInjuryLevel *string `json:"victim_injury_level"`
	VictimAgeRange    *string `json:"victim_age_range"`
	VictimGender      *string `json:"victim_gender"`

	NumSuspects               *int    `json:"num_suspects"`
	SuspectDescription        *string `json:"suspect_description"`
	SuspectVehicleDescription *string `json:"suspect_vehicle_description"`
	SuspectDirectionOfTravel  *string `json:"suspect_direction_of_travel"`

	NumWitnesses                *int    `json:"num_witnesses"`
	PhysicalEvidenceDescription *string `json:"physical_evidence_description"`

	ReporterContact *string `json:"reporter_contact"`
	IsAnonymous     bool    `json:"is_anonymous"`

	ImageURLs string `json:"image_urls" gorm:"not null;default:'[]'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CrimeReport) TableName() string {
	return "crime_reports"
}
