package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arkhamd/arkhamd/pkg/model"
)

// Roster is the seed data loaded into the collections at startup. Records
// may carry explicit IDs; records without one are assigned IDs in file
// order.
type Roster struct {
	// Version is the roster file format version.
	Version string `json:"version" yaml:"version"`
	// Inmates seeds the inmates collection.
	Inmates []model.Inmate `json:"inmates,omitempty" yaml:"inmates,omitempty"`
	// Staff seeds the staff collection.
	Staff []model.Staff `json:"staff,omitempty" yaml:"staff,omitempty"`
	// Treatments seeds the treatments collection.
	Treatments []model.Treatment `json:"treatments,omitempty" yaml:"treatments,omitempty"`
	// Incidents seeds the incidents collection.
	Incidents []model.Incident `json:"incidents,omitempty" yaml:"incidents,omitempty"`
}

// RosterVersion is the roster file format version this build writes.
const RosterVersion = "1.0"

// LoadRoster reads a seed roster from a JSON or YAML file. The file is
// checked against the embedded roster schema before decoding.
func LoadRoster(path string) (*Roster, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if err := ValidateRosterBytes(data, isYAMLPath(path)); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	var roster Roster
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	} else {
		if err := json.Unmarshal(data, &roster); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return &roster, nil
}

// SaveRoster writes a seed roster to a file. The format follows the file
// extension.
func SaveRoster(path string, roster *Roster) error {
	if roster == nil {
		return errors.New("roster cannot be nil")
	}
	if roster.Version == "" {
		roster.Version = RosterVersion
	}
	data, err := marshalByExt(path, roster)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// DefaultRoster returns the built-in example roster used when no seed file
// is configured: the records every fresh install of the asylum API starts
// with.
func DefaultRoster() *Roster {
	age := func(n int) *int { return &n }
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return &Roster{
		Version: RosterVersion,
		Inmates: []model.Inmate{
			{
				ID:            1,
				Name:          "Edward Nygma",
				Alias:         "Riddler",
				Age:           age(39),
				DangerLevel:   7,
				Disorders:     []string{"Narcissistic Personality Disorder", "Obsessive-Compulsive Disorder"},
				CellBlock:     model.CellBlockB,
				IsActive:      true,
				Notes:         "Exhibits obsession with riddles and puzzles. Compulsion to leave clues.",
				AdmissionDate: date(2023, time.January, 15),
			},
			{
				ID:            2,
				Name:          "Harvey Dent",
				Alias:         "Two-Face",
				Age:           age(42),
				DangerLevel:   8,
				Disorders:     []string{"Dissociative Identity Disorder"},
				CellBlock:     model.CellBlockA,
				IsActive:      true,
				Notes:         "All decisions made with his coin. Extremely dangerous when the coin lands scarred side up.",
				AdmissionDate: date(2022, time.November, 2),
			},
		},
		Staff: []model.Staff{
			{
				ID:              1,
				Name:            "Dr. Joan Leland",
				Position:        "Senior Psychiatrist",
				Department:      "Psychiatry",
				IsActive:        true,
				HireDate:        date(2020, time.March, 15),
				AssignedInmates: []int64{1, 2},
			},
			{
				ID:              2,
				Name:            "Aaron Cash",
				Position:        "Head of Security",
				Department:      "Security",
				IsActive:        true,
				HireDate:        date(2021, time.July, 22),
				AssignedInmates: []int64{},
			},
		},
		Treatments: []model.Treatment{
			{
				ID:          1,
				Name:        "Cognitive Behavioral Therapy",
				Description: "Focuses on challenging and changing cognitive distortions and behaviors",
				SuccessRate: 0.65,
			},
			{
				ID:          2,
				Name:        "Pharmacotherapy",
				Description: "Medication-based treatment to manage symptoms",
				SuccessRate: 0.70,
			},
		},
		Incidents: []model.Incident{
			{
				ID:            1,
				InmateID:      1,
				Date:          date(2023, time.February, 10),
				IncidentType:  "Escape Attempt",
				Description:   "Attempted to escape using a puzzle box to unlock his cell",
				Severity:      8,
				StaffInvolved: []int64{2},
			},
		},
	}
}
