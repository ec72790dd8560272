package model

import (
	"strings"
	"time"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// Staff is one staff member record.
type Staff struct {
	ID              int64     `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Age             *int      `json:"age,omitempty" yaml:"age,omitempty"`
	Position        string    `json:"position" yaml:"position"`
	Department      string    `json:"department" yaml:"department"`
	IsActive        bool      `json:"isActive" yaml:"isActive"`
	HireDate        time.Time `json:"hireDate" yaml:"hireDate,omitempty"`
	AssignedInmates []int64   `json:"assignedInmates" yaml:"assignedInmates,omitempty"`
}

// EntityID implements roster.Entity.
func (s Staff) EntityID() int64 { return s.ID }

// WithID implements roster.Entity.
func (s Staff) WithID(id int64) Staff {
	s.ID = id
	return s
}

// Env exposes the record fields to search expressions.
func (s Staff) Env() map[string]any {
	var age any
	if s.Age != nil {
		age = *s.Age
	}
	return map[string]any{
		"id":              s.ID,
		"name":            s.Name,
		"age":             age,
		"position":        s.Position,
		"department":      s.Department,
		"isActive":        s.IsActive,
		"assignedInmates": s.AssignedInmates,
	}
}

// CreateStaff is the input for a new staff record.
type CreateStaff struct {
	Name            string  `json:"name"`
	Age             *int    `json:"age"`
	Position        string  `json:"position"`
	Department      string  `json:"department"`
	IsActive        *bool   `json:"isActive"`
	AssignedInmates []int64 `json:"assignedInmates"`
}

// Validate checks the input against the staff field rules.
func (c *CreateStaff) Validate() error {
	if err := requireString("name", c.Name, minNameLen, maxNameLen); err != nil {
		return err
	}
	if err := optionalRange("age", c.Age, 21, 80); err != nil {
		return err
	}
	if err := requireString("position", c.Position, 2, maxTitleLen); err != nil {
		return err
	}
	return requireString("department", c.Department, 2, maxTitleLen)
}

// Record builds the staff record with defaults filled in.
func (c *CreateStaff) Record(now time.Time) Staff {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	assigned := c.AssignedInmates
	if assigned == nil {
		assigned = []int64{}
	}
	return Staff{
		Name:            strings.TrimSpace(c.Name),
		Age:             c.Age,
		Position:        strings.TrimSpace(c.Position),
		Department:      strings.TrimSpace(c.Department),
		IsActive:        active,
		HireDate:        now,
		AssignedInmates: assigned,
	}
}

// StaffPatch is a partial update: only non-nil fields are applied.
type StaffPatch struct {
	Name            *string  `json:"name"`
	Age             *int     `json:"age"`
	Position        *string  `json:"position"`
	Department      *string  `json:"department"`
	IsActive        *bool    `json:"isActive"`
	AssignedInmates *[]int64 `json:"assignedInmates"`
}

// Validate checks every supplied field.
func (p *StaffPatch) Validate() error {
	if p.Name != nil {
		if err := requireString("name", *p.Name, minNameLen, maxNameLen); err != nil {
			return err
		}
	}
	if err := optionalRange("age", p.Age, 21, 80); err != nil {
		return err
	}
	if p.Position != nil {
		if err := requireString("position", *p.Position, 2, maxTitleLen); err != nil {
			return err
		}
	}
	if p.Department != nil {
		if err := requireString("department", *p.Department, 2, maxTitleLen); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the supplied fields into s.
func (p *StaffPatch) Apply(s Staff) Staff {
	if p.Name != nil {
		s.Name = strings.TrimSpace(*p.Name)
	}
	if p.Age != nil {
		s.Age = p.Age
	}
	if p.Position != nil {
		s.Position = strings.TrimSpace(*p.Position)
	}
	if p.Department != nil {
		s.Department = strings.TrimSpace(*p.Department)
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	if p.AssignedInmates != nil {
		s.AssignedInmates = *p.AssignedInmates
	}
	return s
}

// StaffFilter narrows staff searches. Name matches by substring, department
// by substring (the original records search "Psychiatry" inside "Psychiatry
// & Behavioral"), position by substring.
type StaffFilter struct {
	Name       string
	Position   string
	Department string
	Active     *bool
}

// Predicate returns the conjunction of all supplied filters.
func (f *StaffFilter) Predicate() func(Staff) bool {
	return func(s Staff) bool {
		if !roster.ContainsFold(s.Name, f.Name) {
			return false
		}
		if !roster.ContainsFold(s.Position, f.Position) {
			return false
		}
		if !roster.ContainsFold(s.Department, f.Department) {
			return false
		}
		if f.Active != nil && s.IsActive != *f.Active {
			return false
		}
		return true
	}
}
