package roster

import (
	"errors"
	"strings"
	"testing"
)

// villain is the test record type.
type villain struct {
	ID    int64
	Name  string
	Cell  string
	Risk  int
	Notes string
}

func (v villain) EntityID() int64 { return v.ID }
func (v villain) WithID(id int64) villain {
	v.ID = id
	return v
}

func newTestCollection(t *testing.T, seed []villain) *Collection[villain] {
	t.Helper()
	c, err := NewCollection("villains", seed)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	return c
}

func TestNewCollection(t *testing.T) {
	tests := []struct {
		name    string
		cname   string
		seed    []villain
		wantErr string
	}{
		{
			name:  "empty seed",
			cname: "villains",
		},
		{
			name:  "seed with explicit ids",
			cname: "villains",
			seed:  []villain{{ID: 3, Name: "Joker"}, {ID: 7, Name: "Bane"}},
		},
		{
			name:  "seed without ids gets sequential ids",
			cname: "villains",
			seed:  []villain{{Name: "Joker"}, {Name: "Bane"}},
		},
		{
			name:    "empty name",
			cname:   "",
			wantErr: "name cannot be empty",
		},
		{
			name:    "duplicate seed ids",
			cname:   "villains",
			seed:    []villain{{ID: 1, Name: "Joker"}, {ID: 1, Name: "Bane"}},
			wantErr: "duplicate id",
		},
		{
			name:    "negative seed id",
			cname:   "villains",
			seed:    []villain{{ID: -4, Name: "Joker"}},
			wantErr: "negative id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCollection(tt.cname, tt.seed)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Count() != len(tt.seed) {
				t.Errorf("Count = %d, want %d", c.Count(), len(tt.seed))
			}
		})
	}
}

func TestCollection_SeedIDAssignment(t *testing.T) {
	c := newTestCollection(t, []villain{{Name: "Joker"}, {ID: 5, Name: "Bane"}, {Name: "Hatter"}})

	all := c.All()
	if all[0].ID != 1 || all[1].ID != 5 || all[2].ID != 2 {
		t.Errorf("seed ids = %d, %d, %d, want 1, 5, 2", all[0].ID, all[1].ID, all[2].ID)
	}
	if c.NextID() != 6 {
		t.Errorf("NextID = %d, want 6 (one above highest seed id)", c.NextID())
	}
}

func TestCollection_CreateAssignsUniqueIncreasingIDs(t *testing.T) {
	c := newTestCollection(t, nil)

	first := c.Create(villain{Name: "Joker"})
	second := c.Create(villain{Name: "Penguin"})

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	// An incoming ID on the record is overruled.
	third := c.Create(villain{ID: 99, Name: "Bane"})
	if third.ID != 3 {
		t.Errorf("id = %d, want 3 (caller-supplied id must be overruled)", third.ID)
	}
}

func TestCollection_IDsNeverReusedAfterDelete(t *testing.T) {
	c := newTestCollection(t, nil)

	a := c.Create(villain{Name: "Joker"})
	b := c.Create(villain{Name: "Penguin"})

	if _, err := c.Delete(b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	next := c.Create(villain{Name: "Riddler"})
	if next.ID != 3 {
		t.Errorf("id after deleting all records = %d, want 3", next.ID)
	}
}

func TestCollection_Get(t *testing.T) {
	c := newTestCollection(t, []villain{{ID: 1, Name: "Joker"}, {ID: 2, Name: "Bane"}})

	got, err := c.Get(2)
	if err != nil {
		t.Fatalf("Get(2): %v", err)
	}
	if got.Name != "Bane" {
		t.Errorf("Name = %q, want Bane", got.Name)
	}

	_, err = c.Get(42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Get(42) error = %v, want *NotFoundError", err)
	}
	if nf.Resource != "villains" || nf.ID != 42 {
		t.Errorf("NotFoundError = %+v, want resource villains id 42", nf)
	}
}

func TestCollection_AllReturnsCopyInInsertionOrder(t *testing.T) {
	c := newTestCollection(t, nil)
	c.Create(villain{Name: "Joker"})
	c.Create(villain{Name: "Penguin"})
	c.Create(villain{Name: "Riddler"})

	all := c.All()
	names := []string{"Joker", "Penguin", "Riddler"}
	for i, want := range names {
		if all[i].Name != want {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, want)
		}
	}

	// Listing twice gives the same result; mutating the copy changes nothing.
	all[0].Name = "Imposter"
	again := c.All()
	if again[0].Name != "Joker" {
		t.Error("mutating the returned slice leaked into the collection")
	}
}

func TestCollection_Update(t *testing.T) {
	c := newTestCollection(t, nil)
	joker := c.Create(villain{Name: "Joker", Cell: "B", Risk: 9, Notes: "keep away from chemicals"})

	updated, err := c.Update(joker.ID, func(v villain) villain {
		v.Cell = "A"
		return v
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Cell != "A" {
		t.Errorf("Cell = %q, want A", updated.Cell)
	}
	// Unmentioned fields survive.
	if updated.Risk != 9 || updated.Notes != "keep away from chemicals" {
		t.Errorf("unmentioned fields changed: %+v", updated)
	}

	// A patch that rewrites the ID is overruled.
	updated, err = c.Update(joker.ID, func(v villain) villain {
		v.ID = 999
		v.Risk = 10
		return v
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != joker.ID {
		t.Errorf("ID = %d, want %d (id is immutable)", updated.ID, joker.ID)
	}

	stored, err := c.Get(joker.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if stored.Risk != 10 {
		t.Errorf("update not persisted: Risk = %d, want 10", stored.Risk)
	}

	_, err = c.Update(404, func(v villain) villain { return v })
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Update(404) error = %v, want *NotFoundError", err)
	}
}

func TestCollection_DeleteRemovesExactlyOne(t *testing.T) {
	c := newTestCollection(t, nil)
	c.Create(villain{Name: "Joker"})
	penguin := c.Create(villain{Name: "Penguin"})
	c.Create(villain{Name: "Riddler"})

	removed, err := c.Delete(penguin.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Name != "Penguin" {
		t.Errorf("removed.Name = %q, want Penguin", removed.Name)
	}
	if c.Count() != 2 {
		t.Errorf("Count = %d, want 2", c.Count())
	}

	// Other records keep their positions and identifiers.
	all := c.All()
	if all[0].Name != "Joker" || all[0].ID != 1 || all[1].Name != "Riddler" || all[1].ID != 3 {
		t.Errorf("surviving records = %+v", all)
	}

	// Deleting again reports not found.
	_, err = c.Delete(penguin.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("second Delete error = %v, want *NotFoundError", err)
	}
}

func TestCollection_Select(t *testing.T) {
	c := newTestCollection(t, nil)
	c.Create(villain{Name: "Joker", Cell: "A", Risk: 10})
	c.Create(villain{Name: "Penguin", Cell: "B", Risk: 6})
	c.Create(villain{Name: "Riddler", Cell: "A", Risk: 7})

	// Conjunction of two conditions.
	got := c.Select(func(v villain) bool { return v.Cell == "A" && v.Risk >= 8 })
	if len(got) != 1 || got[0].Name != "Joker" {
		t.Errorf("Select = %+v, want only Joker", got)
	}

	// Nil predicate selects everything.
	if n := len(c.Select(nil)); n != 3 {
		t.Errorf("Select(nil) returned %d records, want 3", n)
	}

	// No matches yields an empty slice, not an error.
	if got := c.Select(func(v villain) bool { return v.Risk > 100 }); len(got) != 0 {
		t.Errorf("Select with impossible predicate = %+v, want empty", got)
	}
}

func TestCollection_ResetRestoresSeedState(t *testing.T) {
	seed := []villain{{ID: 1, Name: "Joker"}, {ID: 2, Name: "Bane"}}
	c := newTestCollection(t, seed)

	c.Create(villain{Name: "Hatter"})
	if _, err := c.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	c.Reset()

	if c.Count() != 2 {
		t.Fatalf("Count after reset = %d, want 2", c.Count())
	}
	if c.NextID() != 3 {
		t.Errorf("NextID after reset = %d, want 3", c.NextID())
	}
	if _, err := c.Get(1); err != nil {
		t.Errorf("seed record 1 missing after reset: %v", err)
	}
}

func TestCollection_Clear(t *testing.T) {
	c := newTestCollection(t, []villain{{ID: 1, Name: "Joker"}})
	c.Create(villain{Name: "Bane"})

	if n := c.Clear(); n != 2 {
		t.Errorf("Clear = %d, want 2", n)
	}
	if c.Count() != 0 {
		t.Errorf("Count after clear = %d, want 0", c.Count())
	}
	// The counter does not rewind.
	if c.NextID() != 3 {
		t.Errorf("NextID after clear = %d, want 3", c.NextID())
	}
}

// TestCollection_IntakeScenario walks the full create, search, update,
// delete lifecycle the way a client session would.
func TestCollection_IntakeScenario(t *testing.T) {
	c := newTestCollection(t, nil)

	joker := c.Create(villain{Name: "Joker", Cell: "A", Risk: 10})
	penguin := c.Create(villain{Name: "Penguin", Cell: "B", Risk: 6})

	if joker.ID == penguin.ID {
		t.Fatal("ids are not unique")
	}
	if c.Count() != 2 {
		t.Fatalf("Count = %d, want 2", c.Count())
	}

	// Search by substring finds exactly the Joker.
	found := c.Select(func(v villain) bool { return strings.Contains(strings.ToLower(v.Name), "jok") })
	if len(found) != 1 || found[0].ID != joker.ID {
		t.Fatalf("search = %+v, want only Joker", found)
	}

	// Transfer the Joker to a different cell.
	moved, err := c.Update(joker.ID, func(v villain) villain {
		v.Cell = "D"
		return v
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if moved.Cell != "D" || moved.Risk != 10 {
		t.Fatalf("after transfer = %+v", moved)
	}

	// The Penguin is released.
	if _, err := c.Delete(penguin.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(penguin.ID); err == nil {
		t.Fatal("released record still retrievable")
	}

	// The next intake gets a fresh identifier, not the Penguin's.
	riddler := c.Create(villain{Name: "Riddler", Cell: "B", Risk: 7})
	if riddler.ID != 3 {
		t.Errorf("Riddler id = %d, want 3", riddler.ID)
	}
	if c.Count() != 2 {
		t.Errorf("Count = %d, want 2", c.Count())
	}
}
