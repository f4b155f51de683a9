package field

import "testing"

func TestValidateColumn(t *testing.T) {
	taken := map[string]bool{"title": true}
	reserved := func(name string) bool { return name == "select" }

	tests := []struct {
		name    string
		column  string
		wantErr bool
	}{
		{"fresh name", "created_by", false},
		{"primary key name", "id", true},
		{"duplicate", "title", true},
		{"reserved word", "select", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumn(tt.column, taken, reserved)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumn(%q) error = %v, wantErr %v", tt.column, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumnNilReserved(t *testing.T) {
	if err := ValidateColumn("select", nil, nil); err != nil {
		t.Errorf("ValidateColumn with nil reserved predicate should pass, got %v", err)
	}
}

func TestValidateType(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"string", false},
		{"text", false},
		{"datetime", false},
		{"one_to_many", false},
		{"many_to_many", false},
		{"varchar", true},
		{"int", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateType(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateType(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		answer  string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"255", 255, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, err := ValidateLength(tt.answer)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLength(%q) error = %v, wantErr %v", tt.answer, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ValidateLength(%q) = %d, want %d", tt.answer, got, tt.want)
			}
		})
	}
}
