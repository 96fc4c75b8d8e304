package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// incidentDatePattern accepts YYYY-MM-DD or an ISO-8601 datetime with
// a trailing Z, optionally with milliseconds.
var incidentDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{3})?Z)?$`)

// requiredReportFields, in the order they are reported back when missing.
var requiredReportFields = []string{
	"title",
	"description",
	"incident_date",
	"address",
	"district",
	"landmark",
	"pincode",
	"crime_type",
	"severity_level",
}

// SubmitReportRequest is the JSON body of POST /submit-report.
type SubmitReportRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	IncidentDate  string `json:"incident_date"`
	Address       string `json:"address"`
	District      string `json:"district"`
	Landmark      string `json:"landmark"`
	Pincode       string `json:"pincode"`
	CrimeType     string `json:"crime_type"`
	SeverityLevel string `json:"severity_level"`

	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	WeaponUsed    *string  `json:"weapon_used"`
	EstimatedLoss *float64 `json:"estimated_loss"`

	NumVictims        *int    `json:"num_victims"`
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

	ImageURLs []string `json:"image_urls"`
}

// MissingFields returns the required fields absent from the payload,
// in the canonical order.
func (r *SubmitReportRequest) MissingFields() []string {
	values := map[string]string{
		"title":          r.Title,
		"description":    r.Description,
		"incident_date":  r.IncidentDate,
		"address":        r.Address,
		"district":       r.District,
		"landmark":       r.Landmark,
		"pincode":        r.Pincode,
		"crime_type":     r.CrimeType,
		"severity_level": r.SeverityLevel,
	}

	var missing []string
	for _, field := range requiredReportFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// Validate checks the payload before any store access: every required
// field present, the incident date well formed and counts non-negative.
// The returned error message is surfaced to the client as-is.
func (r *SubmitReportRequest) Validate() error {
	if missing := r.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !incidentDatePattern.MatchString(r.IncidentDate) {
		return fmt.Errorf("Invalid date format. Use YYYY-MM-DD or ISO format")
	}

	if r.EstimatedLoss != nil && *r.EstimatedLoss < 0 {
		return fmt.Errorf("estimated_loss must be non-negative")
	}
	counts := []struct {
		field string
		value *int
	}{
		{"num_victims", r.NumVictims},
		{"num_suspects", r.NumSuspects},
		{"num_witnesses", r.NumWitnesses},
	}
	for _, c := range counts {
		if c.value != nil && *c.value < 0 {
			return fmt.Errorf("%s must be non-negative", c.field)
		}
	}
	return nil
}

// ToReport converts a validated payload into the row to insert. The
// image list is serialized to its storage form, an empty array when
// absent, and num_victims defaults to 1.
func (r *SubmitReportRequest) ToReport() *CrimeReport {
	urls := r.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	// marshaling a []string cannot fail
	serialized, _ := json.Marshal(urls)

	numVictims := 1
	if r.NumVictims != nil {
		numVictims = *r.NumVictims
	}

	return &CrimeReport{
		Title:                       r.Title,
		Description:                 r.Description,
		IncidentDate:                r.IncidentDate,
		Address:                     r.Address,
		District:                    r.District,
		Landmark:                    r.Landmark,
		Pincode:                     r.Pincode,
		Latitude:                    r.Latitude,
		Longitude:                   r.Longitude,
		CrimeType:                   r.CrimeType,
		SeverityLevel:               r.SeverityLevel,
		WeaponUsed:                  r.WeaponUsed,
		EstimatedLoss:               r.EstimatedLoss,
		NumVictims:                  numVictims,
		VictimInjuryLevel:           r.VictimInjuryLevel,
		VictimAgeRange:              r.VictimAgeRange,
		VictimGender:                r.VictimGender,
		NumSuspects:                 r.NumSuspects,
		SuspectDescription:          r.SuspectDescription,
		SuspectVehicleDescription:   r.SuspectVehicleDescription,
		SuspectDirectionOfTravel:    r.SuspectDirectionOfTravel,
		NumWitnesses:                r.NumWitnesses,
		PhysicalEvidenceDescription: r.PhysicalEvidenceDescription,
		ReporterContact:             r.ReporterContact,
		IsAnonymous:                 r.IsAnonymous,
		ImageURLs:                   string(serialized),
	}
}
