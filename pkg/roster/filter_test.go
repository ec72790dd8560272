package roster

import "testing"

func TestContainsFold(t *testing.T) {
	tests := []struct {
		value, substr string
		want          bool
	}{
		{"Edward Nygma", "nygma", true},
		{"Edward Nygma", "NYGMA", true},
		{"Edward Nygma", "wayne", false},
		{"Edward Nygma", "", true},
		{"", "x", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.value, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.value, tt.substr, got, tt.want)
		}
	}
}

func TestEqualFold(t *testing.T) {
	tests := []struct {
		value, want string
		match       bool
	}{
		{"A", "a", true},
		{"A", "A", true},
		{"A", "B", false},
		{"A", "", true},
		{"Escape Attempt", "escape attempt", true},
	}
	for _, tt := range tests {
		if got := EqualFold(tt.value, tt.want); got != tt.match {
			t.Errorf("EqualFold(%q, %q) = %v, want %v", tt.value, tt.want, got, tt.match)
		}
	}
}

func TestAnyContainsFold(t *testing.T) {
	disorders := []string{"Dissociative Identity Disorder", "OCD"}

	if !AnyContainsFold(disorders, "identity") {
		t.Error("expected substring match in list")
	}
	if AnyContainsFold(disorders, "paranoia") {
		t.Error("unexpected match")
	}
	if !AnyContainsFold(nil, "") {
		t.Error("empty filter must match even an empty list")
	}
	if AnyContainsFold(nil, "x") {
		t.Error("non-empty filter must not match an empty list")
	}
}

func TestInRange(t *testing.T) {
	five, nine := 5, 9

	if !InRange(7, &five, &nine) {
		t.Error("7 should be in [5, 9]")
	}
	if InRange(4, &five, nil) {
		t.Error("4 should be below open-ended min 5")
	}
	if InRange(10, nil, &nine) {
		t.Error("10 should be above open-ended max 9")
	}
	if !InRange(42, nil, nil) {
		t.Error("nil bounds should match everything")
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name          string
		offset, limit int
		wantItems     []int
		wantTotal     int
	}{
		{"first page", 0, 2, []int{1, 2}, 5},
		{"middle page", 2, 2, []int{3, 4}, 5},
		{"partial last page", 4, 2, []int{5}, 5},
		{"offset past end", 10, 2, []int{}, 5},
		{"default limit", 0, 0, []int{1, 2, 3, 4, 5}, 5},
		{"negative offset clamps", -3, 2, []int{1, 2}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total := Page(items, tt.offset, tt.limit, 100)
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(page) != len(tt.wantItems) {
				t.Fatalf("page = %v, want %v", page, tt.wantItems)
			}
			for i := range page {
				if page[i] != tt.wantItems[i] {
					t.Errorf("page[%d] = %d, want %d", i, page[i], tt.wantItems[i])
				}
			}
		})
	}
}
