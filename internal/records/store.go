// Package records persists day-scoped mood entries and habit completions on
// top of a key-value storage.Provider and derives per-day statistics from them.
//
// The store keeps no state of its own beyond per-key write locks: every read
// goes to the provider, so views built from it are disposable projections that
// can be refreshed at any time.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/logger"
	"github.com/julianstephens/daymood/internal/models"
	"github.com/julianstephens/daymood/internal/storage"
)

const maxMoodIndex = models.MoodLevels - 1

// Store is the DayRecordStore.
type Store struct {
	provider storage.Provider
	locks    keyLocks
}

// New returns a Store reading and writing through provider. The provider must
// already be initialized and loaded.
func New(provider storage.Provider) *Store {
	return &Store{provider: provider}
}

func moodKey(day models.DayKey) string {
	return constants.MoodKeyPrefix + day.String()
}

func habitsKey(day models.DayKey) string {
	return constants.HabitsKeyPrefix + day.String()
}

// read decodes the JSON value under key into dst. found is false when the key
// was never written. Any failure is returned as a *StorageReadError.
func (s *Store) read(ctx context.Context, key string, dst any) (found bool, err error) {
	raw, ok, err := s.provider.Get(ctx, key)
	if err != nil {
		return false, &StorageReadError{Key: key, Err: err}
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, &StorageReadError{Key: key, Err: err, Malformed: true}
	}
	return true, nil
}

// readOrDefault is read with the fail-safe policy applied: failures are
// logged and reported as "nothing stored".
func (s *Store) readOrDefault(ctx context.Context, key string, dst any) bool {
	found, err := s.read(ctx, key, dst)
	if err != nil {
		logger.Warn("Falling back to default value", "key", key, "error", err)
		return false
	}
	return found
}

// readForUpdate is used inside read-modify-write sequences. A value that
// cannot be fully decoded is treated as empty, never as the prefix the decoder
// got through; a provider failure aborts the write so an unreadable sequence
// is never clobbered.
func readForUpdate[T any](ctx context.Context, s *Store, key string) (T, error) {
	var v, zero T
	_, err := s.read(ctx, key, &v)
	if err == nil {
		return v, nil
	}
	var rerr *StorageReadError
	if errors.As(err, &rerr) && rerr.Malformed {
		logger.Warn("Replacing malformed value", "key", key, "error", err)
		return zero, nil
	}
	return zero, &StorageWriteError{Key: key, Err: err}
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageWriteError{Key: key, Err: err}
	}
	if err := s.provider.Set(ctx, key, string(data)); err != nil {
		logger.Error("Storage write failed", "key", key, "error", err)
		return &StorageWriteError{Key: key, Err: err}
	}
	logger.Debug("Stored value", "key", key, "bytes", len(data))
	return nil
}

// RecordMood appends mood to the day's entries in submission order.
func (s *Store) RecordMood(ctx context.Context, day models.DayKey, mood models.Mood) error {
	if !mood.Valid() {
		return invalidMood(int(mood))
	}

	key := moodKey(day)
	unlock := s.locks.lock(key)
	defer unlock()

	entries, err := readForUpdate[[]models.Mood](ctx, s, key)
	if err != nil {
		return err
	}
	entries = append(entries, mood)
	return s.write(ctx, key, entries)
}

// MoodEntries returns the day's entries in submission order, or an empty
// slice if there are none or they cannot be read.
func (s *Store) MoodEntries(ctx context.Context, day models.DayKey) []models.Mood {
	var entries []models.Mood
	if !s.readOrDefault(ctx, moodKey(day), &entries) || entries == nil {
		return []models.Mood{}
	}
	return entries
}

// LatestMood returns the most recently submitted mood for the day.
func (s *Store) LatestMood(ctx context.Context, day models.DayKey) (models.Mood, bool) {
	entries := s.MoodEntries(ctx, day)
	if len(entries) == 0 {
		return 0, false
	}
	return entries[len(entries)-1], true
}

// MoodDistribution returns, per level, the rounded percentage of the day's
// entries at that level. A day without entries yields all zeros.
func (s *Store) MoodDistribution(ctx context.Context, day models.DayKey) models.MoodDistribution {
	return Distribution(s.MoodEntries(ctx, day))
}

// Distribution computes rounded per-level percentages for entries. Each level
// is rounded on its own, so the sum can be off by a point or two from 100.
func Distribution(entries []models.Mood) models.MoodDistribution {
	var dist models.MoodDistribution
	if len(entries) == 0 {
		return dist
	}

	var counts [models.MoodLevels]int
	for _, m := range entries {
		if m.Valid() {
			counts[m]++
		}
	}
	total := float64(len(entries))
	for i, c := range counts {
		dist[i] = int(math.Round(float64(c) * 100 / total))
	}
	return dist
}

// SetHabitCompletion replaces the day's completed set with titles.
// Duplicates in titles are collapsed; first occurrence order is kept.
func (s *Store) SetHabitCompletion(ctx context.Context, day models.DayKey, titles []string) error {
	key := habitsKey(day)
	unlock := s.locks.lock(key)
	defer unlock()

	return s.write(ctx, key, dedupe(titles))
}

// HabitCompletion returns the titles recorded as done for the day, or an
// empty slice if nothing was ever written.
func (s *Store) HabitCompletion(ctx context.Context, day models.DayKey) []string {
	var titles []string
	if !s.readOrDefault(ctx, habitsKey(day), &titles) || titles == nil {
		return []string{}
	}
	return dedupe(titles)
}

// ToggleHabit flips title's completion for the day and rewrites the full set.
// It returns the new state.
func (s *Store) ToggleHabit(ctx context.Context, day models.DayKey, title string) (bool, error) {
	title = strings.TrimSpace(title)
	current, err := s.HabitList(ctx)
	if err != nil {
		return false, err
	}
	if !contains(current, title) {
		return false, fmt.Errorf("%w: %q", ErrUnknownHabit, title)
	}

	key := habitsKey(day)
	unlock := s.locks.lock(key)
	defer unlock()

	done, err := readForUpdate[[]string](ctx, s, key)
	if err != nil {
		return false, err
	}

	var next []string
	nowDone := true
	for _, t := range dedupe(done) {
		if t == title {
			nowDone = false
			continue
		}
		next = append(next, t)
	}
	if nowDone {
		next = append(next, title)
	}
	if next == nil {
		next = []string{}
	}

	if err := s.write(ctx, key, next); err != nil {
		return false, err
	}
	return nowDone, nil
}

// SetUserName stores name trimmed of surrounding whitespace. Blank names are
// rejected and nothing is written.
func (s *Store) SetUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	return s.write(ctx, constants.KeyUserName, name)
}

// UserName returns the stored display name; ok is false if none is set.
func (s *Store) UserName(ctx context.Context) (string, bool) {
	var name string
	if !s.readOrDefault(ctx, constants.KeyUserName, &name) || name == "" {
		return "", false
	}
	return name, true
}

// HabitList returns the global habit titles in order. Read failures yield
// an empty list; the error return is reserved for cancellation.
func (s *Store) HabitList(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var titles []string
	if !s.readOrDefault(ctx, constants.KeyUserHabits, &titles) || titles == nil {
		return []string{}, nil
	}
	return titles, nil
}

// CleanHabitList trims titles and checks them as SetHabitList would. A blank,
// oversized or duplicate (case-sensitive) title rejects the whole list.
func CleanHabitList(titles []string) ([]string, error) {
	cleaned := make([]string, 0, len(titles))
	for _, t := range titles {
		t, err := normalizeTitle(t)
		if err != nil {
			return nil, err
		}
		if contains(cleaned, t) {
			return nil, duplicateHabit(t)
		}
		cleaned = append(cleaned, t)
	}
	return cleaned, nil
}

// SetHabitList replaces the global habit list with the cleaned titles.
func (s *Store) SetHabitList(ctx context.Context, titles []string) error {
	cleaned, err := CleanHabitList(titles)
	if err != nil {
		return err
	}

	unlock := s.locks.lock(constants.KeyUserHabits)
	defer unlock()
	return s.write(ctx, constants.KeyUserHabits, cleaned)
}

// AddHabit appends title to the global list. An existing title is rejected
// with ErrDuplicateHabit and the list is left unchanged.
func (s *Store) AddHabit(ctx context.Context, title string) error {
	title, err := normalizeTitle(title)
	if err != nil {
		return err
	}

	unlock := s.locks.lock(constants.KeyUserHabits)
	defer unlock()

	titles, err := readForUpdate[[]string](ctx, s, constants.KeyUserHabits)
	if err != nil {
		return err
	}
	if contains(titles, title) {
		return duplicateHabit(title)
	}
	if titles == nil {
		titles = []string{}
	}
	return s.write(ctx, constants.KeyUserHabits, append(titles, title))
}

// RecordedDays lists days that have mood entries, oldest first.
func (s *Store) RecordedDays(ctx context.Context) ([]models.DayKey, error) {
	keys, err := s.provider.Keys(ctx, constants.MoodKeyPrefix)
	if err != nil {
		return nil, &StorageReadError{Key: constants.MoodKeyPrefix + "*", Err: err}
	}
	days := make([]models.DayKey, 0, len(keys))
	for _, k := range keys {
		day, err := models.ParseDayKey(strings.TrimPrefix(k, constants.MoodKeyPrefix))
		if err != nil {
			logger.Debug("Skipping key with invalid day", "key", k)
			continue
		}
		days = append(days, day)
	}
	return days, nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrBlankHabit
	}
	if utf8.RuneCountInString(title) > constants.MaxHabitTitleLen {
		return "", fmt.Errorf("%w: %d characters max", ErrHabitTooLong, constants.MaxHabitTitleLen)
	}
	return title, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dedupe(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if !contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
