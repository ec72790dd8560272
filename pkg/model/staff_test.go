package model

import (
	"testing"
	"time"
)

func validCreateStaff() CreateStaff {
	return CreateStaff{
		Name:       "Dr. Joan Leland",
		Position:   "Senior Psychiatrist",
		Department: "Psychiatry",
	}
}

func TestCreateStaff_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateStaff)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *CreateStaff) {}},
		{name: "valid with age", mutate: func(c *CreateStaff) { c.Age = intPtr(45) }},
		{name: "name missing", mutate: func(c *CreateStaff) { c.Name = "" }, wantErr: true},
		{name: "position too short", mutate: func(c *CreateStaff) { c.Position = "X" }, wantErr: true},
		{name: "department missing", mutate: func(c *CreateStaff) { c.Department = "" }, wantErr: true},
		{name: "age below minimum", mutate: func(c *CreateStaff) { c.Age = intPtr(20) }, wantErr: true},
		{name: "age above maximum", mutate: func(c *CreateStaff) { c.Age = intPtr(81) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCreateStaff()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateStaff_RecordDefaults(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	c := validCreateStaff()
	rec := c.Record(now)

	if !rec.IsActive {
		t.Error("IsActive should default to true")
	}
	if rec.AssignedInmates == nil || len(rec.AssignedInmates) != 0 {
		t.Errorf("AssignedInmates = %#v, want empty non-nil slice", rec.AssignedInmates)
	}
	if !rec.HireDate.Equal(now) {
		t.Errorf("HireDate = %v, want %v", rec.HireDate, now)
	}
}

func TestStaffPatch_Apply(t *testing.T) {
	s := Staff{
		ID:         2,
		Name:       "Aaron Cash",
		Position:   "Guard",
		Department: "Security",
		IsActive:   true,
	}

	patch := StaffPatch{Position: strPtr("Head of Security")}
	if err := patch.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	out := patch.Apply(s)
	if out.Position != "Head of Security" {
		t.Errorf("Position = %q", out.Position)
	}
	if out.Name != s.Name || out.Department != s.Department || out.ID != 2 {
		t.Errorf("unpatched fields changed: %+v", out)
	}
}

func TestStaffFilter_Predicate(t *testing.T) {
	staff := []Staff{
		{Name: "Dr. Joan Leland", Position: "Senior Psychiatrist", Department: "Psychiatry", IsActive: true},
		{Name: "Aaron Cash", Position: "Head of Security", Department: "Security", IsActive: true},
		{Name: "Lyle Bolton", Position: "Guard", Department: "Security", IsActive: false},
	}

	pred := (&StaffFilter{Department: "security", Active: boolPtr(true)}).Predicate()
	var matched []string
	for _, s := range staff {
		if pred(s) {
			matched = append(matched, s.Name)
		}
	}
	if len(matched) != 1 || matched[0] != "Aaron Cash" {
		t.Errorf("matched = %v, want only Aaron Cash", matched)
	}
}
