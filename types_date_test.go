package networth

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-02", "2024-01-02"},
		{"2024-1-2", "2024-01-02"},
		{"2024/1/2", "2024-01-02"},
		{"1/2/2024", "2024-01-02"},
		{" 2024-01-02 ", "2024-01-02"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"not-a-date", "", "2024-13-45"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) should fail", in)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParseDate("2024-01-31")
	b := MustParseDate("2024-02-01")
	if !a.Before(b) || !b.After(a) {
		t.Error("calendar ordering broken")
	}
	// lexicographic string order agrees with calendar order
	if !(a.String() < b.String()) {
		t.Error("string ordering must match calendar ordering for ISO dates")
	}
}

func TestDate_JSON(t *testing.T) {
	d := MustParseDate("2024-03-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-03-15"` {
		t.Errorf("Marshal() = %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("roundtrip = %v, want %v", back, d)
	}
}
