package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MoodLevels is the number of ordinal mood states, worst to best.
const MoodLevels = 5

// Mood is an ordinal mood index in [0, MoodLevels).
type Mood int

var (
	moodSymbols = [MoodLevels]string{"😞", "🙁", "😐", "🙂", "😄"}
	moodLabels  = [MoodLevels]string{"awful", "bad", "okay", "good", "great"}

	// legacySymbols covers the symbols written by older check-in screens.
	// The mood screen stored 😐 and 🙂 one level lower than the today screen
	// displayed them; the today screen's ordering is the one kept here.
	legacySymbols = map[string]Mood{
		"😞": 0,
		"🙁": 1,
		"😐": 2,
		"🙂": 3,
		"😊": 3,
		"😄": 4,
		"😁": 4,
	}
)

// Valid reports whether m names one of the defined levels.
func (m Mood) Valid() bool {
	return m >= 0 && m < MoodLevels
}

func (m Mood) Symbol() string {
	if !m.Valid() {
		return "?"
	}
	return moodSymbols[m]
}

func (m Mood) Label() string {
	if !m.Valid() {
		return "unknown"
	}
	return moodLabels[m]
}

func (m Mood) String() string {
	return fmt.Sprintf("%s %s", m.Symbol(), m.Label())
}

// AllMoods returns every level from worst to best.
func AllMoods() []Mood {
	moods := make([]Mood, MoodLevels)
	for i := range moods {
		moods[i] = Mood(i)
	}
	return moods
}

// ParseMood accepts an index ("0".."4"), a label ("good") or a symbol ("🙂").
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Mood(n)
		if !m.Valid() {
			return 0, fmt.Errorf("mood index %d out of range [0, %d)", n, MoodLevels)
		}
		return m, nil
	}
	lower := strings.ToLower(s)
	for i, label := range moodLabels {
		if label == lower {
			return Mood(i), nil
		}
	}
	if m, ok := legacySymbols[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown mood %q", s)
}

// UnmarshalJSON accepts both the numeric index and a symbol string.
func (m *Mood) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !Mood(n).Valid() {
			return fmt.Errorf("mood index %d out of range", n)
		}
		*m = Mood(n)
		return nil
	}

	var sym string
	if err := json.Unmarshal(data, &sym); err != nil {
		return fmt.Errorf("mood must be a number or symbol: %w", err)
	}
	parsed, ok := legacySymbols[sym]
	if !ok {
		return fmt.Errorf("unknown mood symbol %q", sym)
	}
	*m = parsed
	return nil
}
