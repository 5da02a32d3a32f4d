package format

import (
	"encoding/json"
	"testing"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "12", "12.00"},
		{"one decimal", "12.5", "12.50"},
		{"rounds to two", "12.005", "12.01"},
		{"negative", "-3.1", "-3.10"},
		{"not a number", "n/a", "n/a"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.input); got != tt.want {
				t.Errorf("Amount(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	short := make([]int, 10)
	if rows, truncated := Clip(short); len(rows) != 10 || truncated {
		t.Errorf("Clip(short) = %d rows, truncated %v", len(rows), truncated)
	}

	long := make([]int, MaxRows+25)
	rows, truncated := Clip(long)
	if len(rows) != MaxRows || !truncated {
		t.Errorf("Clip(long) = %d rows, truncated %v", len(rows), truncated)
	}

	exact := make([]int, MaxRows)
	if rows, truncated := Clip(exact); len(rows) != MaxRows || truncated {
		t.Errorf("Clip(exact) = %d rows, truncated %v", len(rows), truncated)
	}
}

func TestPrettyRaw(t *testing.T) {
	pretty := PrettyRaw([]byte(`{"a":1,"b":[2,3]}`))
	if pretty == `{"a":1,"b":[2,3]}` {
		t.Error("expected re-indented JSON")
	}
	var check map[string]any
	if err := json.Unmarshal([]byte(pretty), &check); err != nil {
		t.Fatalf("pretty output is not JSON: %v", err)
	}

	// Non-JSON passes through untouched.
	if got := PrettyRaw([]byte("plain text")); got != "plain text" {
		t.Errorf("PrettyRaw(non-json) = %q", got)
	}
}
