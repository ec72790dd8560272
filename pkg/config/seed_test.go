package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRosterRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"roster.yaml", "roster.json"} {
		path := filepath.Join(dir, name)
		if err := SaveRoster(path, DefaultRoster()); err != nil {
			t.Fatalf("SaveRoster(%s): %v", name, err)
		}

		roster, err := LoadRoster(path)
		if err != nil {
			t.Fatalf("LoadRoster(%s): %v", name, err)
		}
		if len(roster.Inmates) != 2 || len(roster.Staff) != 2 || len(roster.Treatments) != 2 || len(roster.Incidents) != 1 {
			t.Errorf("%s counts = %d/%d/%d/%d", name,
				len(roster.Inmates), len(roster.Staff), len(roster.Treatments), len(roster.Incidents))
		}
		if roster.Inmates[0].Alias != "Riddler" {
			t.Errorf("%s first inmate alias = %q", name, roster.Inmates[0].Alias)
		}
	}
}

func TestLoadRoster_SchemaRejectsBadData(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "danger level off the scale",
			content: `version: "1.0"
inmates:
  - name: Edward Nygma
    dangerLevel: 15
`,
			wantErr: "schema validation failed",
		},
		{
			name: "unknown field",
			content: `version: "1.0"
inmates:
  - name: Edward Nygma
    dangerLevel: 7
    shoeSize: 44
`,
			wantErr: "schema validation failed",
		},
		{
			name: "bad cell block",
			content: `version: "1.0"
inmates:
  - name: Edward Nygma
    dangerLevel: 7
    cellBlock: Z
`,
			wantErr: "schema validation failed",
		},
		{
			name: "missing required incident fields",
			content: `version: "1.0"
incidents:
  - inmateId: 1
`,
			wantErr: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			writeTestFile(t, path, tt.content)

			_, err := LoadRoster(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRoster_ValidMinimal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	writeTestFile(t, path, `version: "1.0"
inmates:
  - name: Jervis Tetch
    alias: Mad Hatter
    dangerLevel: 6
staff:
  - name: Dr. Penelope Young
    position: Psychiatrist
    department: Psychiatry
`)

	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster.Inmates) != 1 || len(roster.Staff) != 1 {
		t.Errorf("counts = %d inmates, %d staff", len(roster.Inmates), len(roster.Staff))
	}
	if roster.Inmates[0].DangerLevel != 6 {
		t.Errorf("DangerLevel = %d, want 6", roster.Inmates[0].DangerLevel)
	}
}
