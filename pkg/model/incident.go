package model

import (
	"strings"
	"time"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Incident is one recorded incident.
type Incident struct {
	ID            int64     `json:"id" yaml:"id"`
	InmateID      int64     `json:"inmateId" yaml:"inmateId"`
	Date          time.Time `json:"date" yaml:"date,omitempty"`
	IncidentType  string    `json:"incidentType" yaml:"incidentType"`
	Description   string    `json:"description" yaml:"description"`
	Severity      int       `json:"severity" yaml:"severity"`
	StaffInvolved []int64   `json:"staffInvolved" yaml:"staffInvolved,omitempty"`
}

// EntityID implements roster.Entity.
func (i Incident) EntityID() int64 { return i.ID }

// WithID implements roster.Entity.
func (i Incident) WithID(id int64) Incident {
	i.ID = id
	return i
}

// Env exposes the record fields to search expressions.
func (i Incident) Env() map[string]any {
	return map[string]any{
		"id":            i.ID,
		"inmateId":      i.InmateID,
		"incidentType":  i.IncidentType,
		"description":   i.Description,
		"severity":      i.Severity,
		"staffInvolved": i.StaffInvolved,
	}
}

// CreateIncident is the input for recording a new incident. Referential
// checks (the inmate and staff must exist) happen in the request layer,
// which can see the other collections.
type CreateIncident struct {
	InmateID      int64      `json:"inmateId"`
	Date          *time.Time `json:"date"`
	IncidentType  string     `json:"incidentType"`
	Description   string     `json:"description"`
	Severity      int        `json:"severity"`
	StaffInvolved []int64    `json:"staffInvolved"`
}

// Validate checks the input against the incident field rules.
func (c *CreateIncident) Validate() error {
	if c.InmateID <= 0 {
		return &roster.ValidationError{Field: "inmateId", Message: "is required"}
	}
	if err := requireString("incidentType", c.IncidentType, 2, maxTitleLen); err != nil {
		return err
	}
	if err := requireString("description", c.Description, minDescLen, 0); err != nil {
		return err
	}
	return requireRange("severity", c.Severity, 1, 10)
}

// Record builds the incident record, defaulting the date to now.
func (c *CreateIncident) Record(now time.Time) Incident {
	date := now
	if c.Date != nil {
		date = *c.Date
	}
	staff := c.StaffInvolved
	if staff == nil {
		staff = []int64{}
	}
	return Incident{
		InmateID:      c.InmateID,
		Date:          date,
		IncidentType:  strings.TrimSpace(c.IncidentType),
		Description:   strings.TrimSpace(c.Description),
		Severity:      c.Severity,
		StaffInvolved: staff,
	}
}

// IncidentPatch is a partial update: only non-nil fields are applied.
// The referenced inmate cannot be changed after the fact.
type IncidentPatch struct {
	IncidentType  *string    `json:"incidentType"`
	Description   *string    `json:"description"`
	Severity      *int       `json:"severity"`
	Date          *time.Time `json:"date"`
	StaffInvolved *[]int64   `json:"staffInvolved"`
}

// Validate checks every supplied field.
func (p *IncidentPatch) Validate() error {
	if p.IncidentType != nil {
		if err := requireString("incidentType", *p.IncidentType, 2, maxTitleLen); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := requireString("description", *p.Description, minDescLen, 0); err != nil {
			return err
		}
	}
	return optionalRange("severity", p.Severity, 1, 10)
}

// Apply merges the supplied fields into in.
func (p *IncidentPatch) Apply(in Incident) Incident {
	if p.IncidentType != nil {
		in.IncidentType = strings.TrimSpace(*p.IncidentType)
	}
	if p.Description != nil {
		in.Description = strings.TrimSpace(*p.Description)
	}
	if p.Severity != nil {
		in.Severity = *p.Severity
	}
	if p.Date != nil {
		in.Date = *p.Date
	}
	if p.StaffInvolved != nil {
		in.StaffInvolved = *p.StaffInvolved
	}
	return in
}

// IncidentFilter narrows incident searches. Incident type matches exactly
// (it is categorical: "Escape Attempt", "Assault", ...), description by
// substring.
type IncidentFilter struct {
	InmateID    *int64
	Type        string
	Description string
	MinSeverity *int
	After       *time.Time
}

// Validate rejects filter values outside the severity scale.
func (f *IncidentFilter) Validate() error {
	return optionalRange("minSeverity", f.MinSeverity, 1, 10)
}

// Predicate returns the conjunction of all supplied filters.
func (f *IncidentFilter) Predicate() func(Incident) bool {
	return func(in Incident) bool {
		if f.InmateID != nil && in.InmateID != *f.InmateID {
			return false
		}
		if !roster.EqualFold(in.IncidentType, f.Type) {
			return false
		}
		if !roster.ContainsFold(in.Description, f.Description) {
			return false
		}
		if f.MinSeverity != nil && in.Severity < *f.MinSeverity {
			return false
		}
		if f.After != nil && in.Date.Before(*f.After) {
			return false
		}
		return true
	}
}
