package model

import (
	"strings"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Treatment is one treatment program record.
type Treatment struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	SuccessRate float64 `json:"successRate" yaml:"successRate"`
}

// EntityID implements roster.Entity.
func (t Treatment) EntityID() int64 { return t.ID }

// WithID implements roster.Entity.
func (t Treatment) WithID(id int64) Treatment {
	t.ID = id
	return t
}

// Env exposes the record fields to search expressions.
func (t Treatment) Env() map[string]any {
	return map[string]any{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"successRate": t.SuccessRate,
	}
}

// CreateTreatment is the input for a new treatment program.
type CreateTreatment struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SuccessRate float64 `json:"successRate"`
}

// Validate checks the input against the treatment field rules.
func (c *CreateTreatment) Validate() error {
	if err := requireString("name", c.Name, minNameLen, maxNameLen); err != nil {
		return err
	}
	if err := requireString("description", c.Description, minDescLen, 0); err != nil {
		return err
	}
	if c.SuccessRate < 0 || c.SuccessRate > 1 {
		return &roster.ValidationError{Field: "successRate", Message: "must be between 0 and 1"}
	}
	return nil
}

// Record builds the treatment record.
func (c *CreateTreatment) Record() Treatment {
	return Treatment{
		Name:        strings.TrimSpace(c.Name),
		Description: strings.TrimSpace(c.Description),
		SuccessRate: c.SuccessRate,
	}
}

// TreatmentPatch is a partial update: only non-nil fields are applied.
type TreatmentPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	SuccessRate *float64 `json:"successRate"`
}

// Validate checks every supplied field.
func (p *TreatmentPatch) Validate() error {
	if p.Name != nil {
		if err := requireString("name", *p.Name, minNameLen, maxNameLen); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := requireString("description", *p.Description, minDescLen, 0); err != nil {
			return err
		}
	}
	if p.SuccessRate != nil && (*p.SuccessRate < 0 || *p.SuccessRate > 1) {
		return &roster.ValidationError{Field: "successRate", Message: "must be between 0 and 1"}
	}
	return nil
}

// Apply merges the supplied fields into t.
func (p *TreatmentPatch) Apply(t Treatment) Treatment {
	if p.Name != nil {
		t.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.SuccessRate != nil {
		t.SuccessRate = *p.SuccessRate
	}
	return t
}

// TreatmentFilter narrows treatment searches by name or description
// substring and minimum success rate.
type TreatmentFilter struct {
	Name           string
	Description    string
	MinSuccessRate *float64
}

// Predicate returns the conjunction of all supplied filters.
func (f *TreatmentFilter) Predicate() func(Treatment) bool {
	return func(t Treatment) bool {
		if !roster.ContainsFold(t.Name, f.Name) {
			return false
		}
		if !roster.ContainsFold(t.Description, f.Description) {
			return false
		}
		if f.MinSuccessRate != nil && t.SuccessRate < *f.MinSuccessRate {
			return false
		}
		return true
	}
}
