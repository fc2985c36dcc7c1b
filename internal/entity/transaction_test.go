package entity

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"2024-03-15T10:30:00Z", "2024-03-15", true},
		{"2024-03-15T23:30:00+07:00", "2024-03-15", true},
		{"2024-03-15T10:30:00", "2024-03-15", true},
		{"2024-02-30", "", false},
		{"15/03/2024", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsValidTransactionType(t *testing.T) {
	for _, valid := range []string{"income", "expense"} {
		if !IsValidTransactionType(valid) {
			t.Errorf("Expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"gift", "", "Income"} {
		if IsValidTransactionType(invalid) {
			t.Errorf("Expected %q to be invalid", invalid)
		}
	}
}
