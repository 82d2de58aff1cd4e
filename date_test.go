package khata

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2025-07-01", NewDate(2025, time.July, 1), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"not-a-date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseDate(%q) error = %v, want error %t", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2025-07-01")
	b := MustParseDate("2025-07-02")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestDateJSON(t *testing.T) {
	// A set date round-trips as an ISO string.
	d := MustParseDate("2025-07-01")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-07-01"` {
		t.Errorf("marshal = %s, want \"2025-07-01\"", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	// The zero date is stored as the empty string.
	raw, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `""` {
		t.Errorf("marshal zero = %s, want \"\"", raw)
	}
	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Errorf("unmarshal \"\" = %s, want the zero date", zero)
	}
}
