package field

import "testing"

func TestDefaultType(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"created_at", "datetime"},
		{"updated_at", "datetime"},
		{"author_id", "integer"},
		{"is_active", "boolean"},
		{"has_comments", "boolean"},
		{"title", "string"},
		{"description", "string"},
		{"rating", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			if got := DefaultType(tt.column); got != tt.want {
				t.Errorf("DefaultType(%q) = %q, want %q", tt.column, got, tt.want)
			}
		})
	}
}

func TestTypesContainsRelationKinds(t *testing.T) {
	vocab := make(map[string]bool)
	for _, name := range Types() {
		vocab[name] = true
	}

	for _, kind := range []string{"many_to_many", "many_to_one", "one_to_one", "one_to_many"} {
		if !vocab[kind] {
			t.Errorf("Types() missing relation kind %q", kind)
		}
	}
	if !vocab["string"] || !vocab["datetime"] {
		t.Error("Types() missing scalar types")
	}
}

func TestIsRelation(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"many_to_many", true},
		{"many_to_one", true},
		{"one_to_one", true},
		{"one_to_many", true},
		{"string", false},
		{"datetime", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRelation(tt.name); got != tt.want {
				t.Errorf("IsRelation(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
