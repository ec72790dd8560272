package model

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arkhamd/arkhamd/pkg/roster"
)

// CellBlock identifies a security wing of the asylum.
type CellBlock string

// Cell blocks, from maximum (A) to low (D) security.
const (
	CellBlockA CellBlock = "A"
	CellBlockB CellBlock = "B"
	CellBlockC CellBlock = "C"
	CellBlockD CellBlock = "D"
)

// DefaultCellBlock is assigned when intake does not specify one.
const DefaultCellBlock = CellBlockD

// Valid reports whether the cell block is one of the known wings.
func (c CellBlock) Valid() bool {
	switch c {
	case CellBlockA, CellBlockB, CellBlockC, CellBlockD:
		return true
	}
	return false
}

// CellBlocks returns all cell blocks in security order.
func CellBlocks() []CellBlock {
	return []CellBlock{CellBlockA, CellBlockB, CellBlockC, CellBlockD}
}

// Inmate is one inmate record.
type Inmate struct {
	ID            int64      `json:"id" yaml:"id"`
	Name          string     `json:"name" yaml:"name"`
	Alias         string     `json:"alias" yaml:"alias"`
	Age           *int       `json:"age,omitempty" yaml:"age,omitempty"`
	DangerLevel   int        `json:"dangerLevel" yaml:"dangerLevel"`
	Disorders     []string   `json:"disorders" yaml:"disorders,omitempty"`
	CellBlock     CellBlock  `json:"cellBlock" yaml:"cellBlock"`
	IsActive      bool       `json:"isActive" yaml:"isActive"`
	Notes         string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	AdmissionDate time.Time  `json:"admissionDate" yaml:"admissionDate,omitempty"`
	ReleaseDate   *time.Time `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
}

// EntityID implements roster.Entity.
func (i Inmate) EntityID() int64 { return i.ID }

// WithID implements roster.Entity.
func (i Inmate) WithID(id int64) Inmate {
	i.ID = id
	return i
}

// Env exposes the record fields to search expressions.
func (i Inmate) Env() map[string]any {
	var age any
	if i.Age != nil {
		age = *i.Age
	}
	return map[string]any{
		"id":          i.ID,
		"name":        i.Name,
		"alias":       i.Alias,
		"age":         age,
		"dangerLevel": i.DangerLevel,
		"disorders":   i.Disorders,
		"cellBlock":   string(i.CellBlock),
		"isActive":    i.IsActive,
		"notes":       i.Notes,
	}
}

// normalizeAlias applies intake capitalization to a criminal alias.
// A Caser carries state, so each call gets its own.
func normalizeAlias(alias string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(alias))
}

// validateAlias enforces the alias rules. Nobody gets booked as Batman.
func validateAlias(alias string) error {
	if err := requireString("alias", alias, 1, maxAliasLen); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(alias), "batman") {
		return &roster.ValidationError{Field: "alias", Message: "no inmate can claim to be Batman"}
	}
	return nil
}

// CreateInmate is the intake input for a new inmate record.
type CreateInmate struct {
	Name        string    `json:"name"`
	Alias       string    `json:"alias"`
	Age         *int      `json:"age"`
	DangerLevel int       `json:"dangerLevel"`
	Disorders   []string  `json:"disorders"`
	CellBlock   CellBlock `json:"cellBlock"`
	IsActive    *bool     `json:"isActive"`
	Notes       string    `json:"notes"`
}

// Validate checks the intake input against the asylum field rules.
func (c *CreateInmate) Validate() error {
	if err := requireString("name", c.Name, minNameLen, maxNameLen); err != nil {
		return err
	}
	if err := validateAlias(c.Alias); err != nil {
		return err
	}
	if err := optionalRange("age", c.Age, 18, 120); err != nil {
		return err
	}
	if err := requireRange("dangerLevel", c.DangerLevel, 1, 10); err != nil {
		return err
	}
	if c.CellBlock != "" && !c.CellBlock.Valid() {
		return &roster.ValidationError{Field: "cellBlock", Message: "must be one of A, B, C, D"}
	}
	return nil
}

// Record builds the inmate record, filling declared defaults. The collection
// assigns the ID.
func (c *CreateInmate) Record(now time.Time) Inmate {
	block := c.CellBlock
	if block == "" {
		block = DefaultCellBlock
	}
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}
	disorders := c.Disorders
	if disorders == nil {
		disorders = []string{}
	}
	return Inmate{
		Name:          strings.TrimSpace(c.Name),
		Alias:         normalizeAlias(c.Alias),
		Age:           c.Age,
		DangerLevel:   c.DangerLevel,
		Disorders:     disorders,
		CellBlock:     block,
		IsActive:      active,
		Notes:         c.Notes,
		AdmissionDate: now,
	}
}

// InmatePatch is a partial update: only non-nil fields are applied.
type InmatePatch struct {
	Name        *string    `json:"name"`
	Alias       *string    `json:"alias"`
	Age         *int       `json:"age"`
	DangerLevel *int       `json:"dangerLevel"`
	Disorders   *[]string  `json:"disorders"`
	CellBlock   *CellBlock `json:"cellBlock"`
	IsActive    *bool      `json:"isActive"`
	Notes       *string    `json:"notes"`
	ReleaseDate *time.Time `json:"releaseDate"`
}

// Validate checks every supplied field; omitted fields are not checked.
func (p *InmatePatch) Validate() error {
	if p.Name != nil {
		if err := requireString("name", *p.Name, minNameLen, maxNameLen); err != nil {
			return err
		}
	}
	if p.Alias != nil {
		if err := validateAlias(*p.Alias); err != nil {
			return err
		}
	}
	if err := optionalRange("age", p.Age, 18, 120); err != nil {
		return err
	}
	if err := optionalRange("dangerLevel", p.DangerLevel, 1, 10); err != nil {
		return err
	}
	if p.CellBlock != nil && !p.CellBlock.Valid() {
		return &roster.ValidationError{Field: "cellBlock", Message: "must be one of A, B, C, D"}
	}
	return nil
}

// Apply merges the supplied fields into in. Unmentioned fields keep their
// prior values; the ID and admission date are never patched.
func (p *InmatePatch) Apply(in Inmate) Inmate {
	if p.Name != nil {
		in.Name = strings.TrimSpace(*p.Name)
	}
	if p.Alias != nil {
		in.Alias = normalizeAlias(*p.Alias)
	}
	if p.Age != nil {
		in.Age = p.Age
	}
	if p.DangerLevel != nil {
		in.DangerLevel = *p.DangerLevel
	}
	if p.Disorders != nil {
		in.Disorders = *p.Disorders
	}
	if p.CellBlock != nil {
		in.CellBlock = *p.CellBlock
	}
	if p.IsActive != nil {
		in.IsActive = *p.IsActive
	}
	if p.Notes != nil {
		in.Notes = *p.Notes
	}
	if p.ReleaseDate != nil {
		in.ReleaseDate = p.ReleaseDate
	}
	return in
}

// InmateFilter narrows inmate searches. Name, alias, disorder, and notes
// match by substring; cell block matches exactly. All comparisons ignore
// case, and filters compose conjunctively.
type InmateFilter struct {
	Name      string
	Alias     string
	Disorder  string
	Notes     string
	CellBlock string
	Active    *bool
	MinDanger *int
	MaxDanger *int
}

// Validate rejects filter values that cannot match anything well-formed.
func (f *InmateFilter) Validate() error {
	if f.CellBlock != "" && !CellBlock(strings.ToUpper(f.CellBlock)).Valid() {
		return &roster.ValidationError{Field: "cellBlock", Message: "must be one of A, B, C, D"}
	}
	if err := optionalRange("minDanger", f.MinDanger, 1, 10); err != nil {
		return err
	}
	return optionalRange("maxDanger", f.MaxDanger, 1, 10)
}

// Predicate returns the conjunction of all supplied filters.
func (f *InmateFilter) Predicate() func(Inmate) bool {
	return func(in Inmate) bool {
		if !roster.ContainsFold(in.Name, f.Name) {
			return false
		}
		if !roster.ContainsFold(in.Alias, f.Alias) {
			return false
		}
		if !roster.AnyContainsFold(in.Disorders, f.Disorder) {
			return false
		}
		if !roster.ContainsFold(in.Notes, f.Notes) {
			return false
		}
		if !roster.EqualFold(string(in.CellBlock), f.CellBlock) {
			return false
		}
		if f.Active != nil && in.IsActive != *f.Active {
			return false
		}
		return roster.InRange(in.DangerLevel, f.MinDanger, f.MaxDanger)
	}
}
