package models

import (
	"encoding/json"
	"testing"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		input   string
		want    Mood
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "4", want: 4},
		{input: " 2 ", want: 2},
		{input: "great", want: 4},
		{input: "Bad", want: 1},
		{input: "😐", want: 2},
		{input: "😁", want: 4},
		{input: "5", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "ecstatic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMood(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoodUnmarshalMixed(t *testing.T) {
	var moods []Mood
	if err := json.Unmarshal([]byte(`[2, "😄", 0, "🙁"]`), &moods); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []Mood{2, 4, 0, 1}
	for i := range want {
		if moods[i] != want[i] {
			t.Errorf("moods[%d] = %d, want %d", i, moods[i], want[i])
		}
	}

	if err := json.Unmarshal([]byte(`[7]`), &moods); err == nil {
		t.Error("Unmarshal() expected error for out of range index")
	}
	if err := json.Unmarshal([]byte(`["🦄"]`), &moods); err == nil {
		t.Error("Unmarshal() expected error for unknown symbol")
	}
}

func TestMoodMarshalsAsIndex(t *testing.T) {
	data, err := json.Marshal([]Mood{0, 4})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "[0,4]" {
		t.Errorf("Marshal() = %s, want [0,4]", data)
	}
}

func TestParseDayKey(t *testing.T) {
	if _, err := ParseDayKey("2024-01-05"); err != nil {
		t.Errorf("ParseDayKey() unexpected error: %v", err)
	}
	for _, bad := range []string{"2024-1-5", "2024-13-01", "2024-02-30", "yesterday", ""} {
		if _, err := ParseDayKey(bad); err == nil {
			t.Errorf("ParseDayKey(%q) expected error", bad)
		}
	}
}

func TestDayKeyAddDays(t *testing.T) {
	got, err := DayKey("2024-12-31").AddDays(1)
	if err != nil {
		t.Fatalf("AddDays() error = %v", err)
	}
	if got != "2025-01-01" {
		t.Errorf("AddDays() = %s, want 2025-01-01", got)
	}
}
