// ABOUTME: Record models for resistance, mobility, cardio, and body metrics.
// ABOUTME: All records are append-only and scoped to a user via UserID.
package models

import "time"

// DateLayout is the ISO day format used for every logged date.
const DateLayout = "2006-01-02"

// ResistanceSet is one logged set of a resistance exercise.
type ResistanceSet struct {
	ID        int64     `json:"id" yaml:"id"`
	UserID    int64     `json:"user_id" yaml:"user_id"`
	Date      time.Time `json:"date" yaml:"date"`
	Week      int       `json:"week" yaml:"week"`
	Day       string    `json:"day" yaml:"day"`
	Exercise  string    `json:"exercise" yaml:"exercise"`
	SetNumber int       `json:"set_number" yaml:"set_number"`
	Target    string    `json:"target" yaml:"target"`
	Weight    float64   `json:"actual_weight" yaml:"actual_weight"`
	Reps      int       `json:"actual_reps" yaml:"actual_reps"`
	RIR       int       `json:"rir" yaml:"rir"`
}

// NewResistanceSet creates a set dated today.
func NewResistanceSet(userID int64, week int, day, exercise string, setNumber int, target string, weight float64, reps, rir int) *ResistanceSet {
	return &ResistanceSet{
		UserID:    userID,
		Date:      time.Now(),
		Week:      week,
		Day:       day,
		Exercise:  exercise,
		SetNumber: setNumber,
		Target:    target,
		Weight:    weight,
		Reps:      reps,
		RIR:       rir,
	}
}

// WithDate sets a custom date on the set.
func (s *ResistanceSet) WithDate(t time.Time) *ResistanceSet {
	s.Date = t
	return s
}

// MobilityEntry records which mobility circuits were completed on a day.
type MobilityEntry struct {
	ID            int64     `json:"id" yaml:"id"`
	UserID        int64     `json:"user_id" yaml:"user_id"`
	Date          time.Time `json:"date" yaml:"date"`
	Prep          bool      `json:"prep_done" yaml:"prep_done"`
	JointFlow     bool      `json:"joint_flow_done" yaml:"joint_flow_done"`
	AnimalCircuit bool      `json:"animal_circuit_done" yaml:"animal_circuit_done"`
	CuffFinisher  bool      `json:"cuff_finisher_done" yaml:"cuff_finisher_done"`
}

// CardioEntry is one logged cardio session.
type CardioEntry struct {
	ID          int64     `json:"id" yaml:"id"`
	UserID      int64     `json:"user_id" yaml:"user_id"`
	Date        time.Time `json:"date" yaml:"date"`
	Type        string    `json:"type" yaml:"type"`
	DurationMin int       `json:"duration_min" yaml:"duration_min"`
	AvgHR       int       `json:"avg_hr" yaml:"avg_hr"`
}

// BodyMetrics is a dated snapshot of body measurements. The latest
// snapshot for a user is the one with the greatest date.
type BodyMetrics struct {
	ID         int64     `json:"id" yaml:"id"`
	UserID     int64     `json:"user_id" yaml:"user_id"`
	Date       time.Time `json:"date" yaml:"date"`
	HeightCM   float64   `json:"height_cm" yaml:"height_cm"`
	WeightKG   float64   `json:"weight_kg" yaml:"weight_kg"`
	Sex        string    `json:"sex" yaml:"sex"`
	Age        int       `json:"age" yaml:"age"`
	BodyFatPct *float64  `json:"body_fat_percentage,omitempty" yaml:"body_fat_percentage,omitempty"`
}

// WithBodyFat sets the optional body-fat percentage.
func (b *BodyMetrics) WithBodyFat(pct float64) *BodyMetrics {
	b.BodyFatPct = &pct
	return b
}

// OneRepMax is a dated one-repetition-maximum entry for an exercise.
// At most one row exists per (user, exercise, date); logging a new value
// for the same date replaces it, a new date extends the history.
type OneRepMax struct {
	ID       int64     `json:"id" yaml:"id"`
	UserID   int64     `json:"user_id" yaml:"user_id"`
	Exercise string    `json:"exercise" yaml:"exercise"`
	Value    float64   `json:"one_rep_max" yaml:"one_rep_max"`
	Date     time.Time `json:"date" yaml:"date"`
}

// SetResult is the (weight, reps, RIR) triple recalled from the most
// recent logging of an exercise/set-number pair.
type SetResult struct {
	Weight float64 `json:"actual_weight"`
	Reps   int     `json:"actual_reps"`
	RIR    int     `json:"rir"`
}

// ProgressPoint is a day's heaviest successful weight for an exercise.
type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"max_weight"`
}
