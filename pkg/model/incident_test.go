package model

import (
	"testing"
	"time"
)

func validCreateIncident() CreateIncident {
	return CreateIncident{
		InmateID:     1,
		IncidentType: "Escape Attempt",
		Description:  "Attempted to escape through the laundry chute",
		Severity:     8,
	}
}

func TestCreateIncident_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateIncident)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *CreateIncident) {}},
		{name: "inmate id missing", mutate: func(c *CreateIncident) { c.InmateID = 0 }, wantErr: true},
		{name: "type missing", mutate: func(c *CreateIncident) { c.IncidentType = "" }, wantErr: true},
		{name: "description too short", mutate: func(c *CreateIncident) { c.Description = "fight" }, wantErr: true},
		{name: "severity zero", mutate: func(c *CreateIncident) { c.Severity = 0 }, wantErr: true},
		{name: "severity too high", mutate: func(c *CreateIncident) { c.Severity = 11 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCreateIncident()
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

func TestCreateIncident_RecordDefaultsDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 30, 0, 0, time.UTC)

	c := validCreateIncident()
	rec := c.Record(now)
	if !rec.Date.Equal(now) {
		t.Errorf("Date = %v, want %v", rec.Date, now)
	}
	if rec.StaffInvolved == nil || len(rec.StaffInvolved) != 0 {
		t.Errorf("StaffInvolved = %#v, want empty non-nil slice", rec.StaffInvolved)
	}

	explicit := now.AddDate(0, -1, 0)
	c.Date = &explicit
	rec = c.Record(now)
	if !rec.Date.Equal(explicit) {
		t.Errorf("explicit date ignored: %v", rec.Date)
	}
}

func TestIncidentFilter_Predicate(t *testing.T) {
	feb := time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)
	may := time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC)
	incidents := []Incident{
		{InmateID: 1, IncidentType: "Escape Attempt", Description: "Puzzle box escape", Severity: 8, Date: feb},
		{InmateID: 1, IncidentType: "Assault", Description: "Attacked a guard during transfer", Severity: 6, Date: may},
		{InmateID: 2, IncidentType: "Escape Attempt", Description: "Coin-flip hostage standoff", Severity: 9, Date: may},
	}

	one := int64(1)
	pred := (&IncidentFilter{InmateID: &one, Type: "escape attempt"}).Predicate()
	count := 0
	for _, in := range incidents {
		if pred(in) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("matched %d incidents, want 1", count)
	}

	after := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	pred = (&IncidentFilter{After: &after, MinSeverity: intPtr(7)}).Predicate()
	var sev []int
	for _, in := range incidents {
		if pred(in) {
			sev = append(sev, in.Severity)
		}
	}
	if len(sev) != 1 || sev[0] != 9 {
		t.Errorf("after+severity filter = %v", sev)
	}
}
