// ABOUTME: Export and import functionality for a user's training log.
// ABOUTME: Supports JSON and YAML snapshot formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/akontos/liftlog/internal/models"
)

// ExportData is the full snapshot format for one user's log.
type ExportData struct {
	Version     string                  `json:"version" yaml:"version"`
	SnapshotID  string                  `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt  time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool        string                  `json:"tool" yaml:"tool"`
	Resistance  []*models.ResistanceSet `json:"resistance" yaml:"resistance"`
	Mobility    []*models.MobilityEntry `json:"mobility" yaml:"mobility"`
	Cardio      []*models.CardioEntry   `json:"cardio" yaml:"cardio"`
	BodyMetrics []*models.BodyMetrics   `json:"body_metrics" yaml:"body_metrics"`
	OneRepMaxes []*models.OneRepMax     `json:"one_rep_maxes" yaml:"one_rep_maxes"`
}

// GetAllData retrieves everything a user has logged, for export.
func (d *DB) GetAllData(userID int64) (*ExportData, error) {
	resistance, err := d.ListResistanceSets(userID)
	if err != nil {
		return nil, fmt.Errorf("list resistance sets: %w", err)
	}

	mobility, err := d.ListMobilityEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("list mobility entries: %w", err)
	}

	cardio, err := d.ListCardioEntries(userID)
	if err != nil {
		return nil, fmt.Errorf("list cardio entries: %w", err)
	}

	bodyMetrics, err := d.ListBodyMetrics(userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}

	oneRepMaxes, err := d.ListOneRepMaxes(userID)
	if err != nil {
		return nil, fmt.Errorf("list 1rm history: %w", err)
	}

	return &ExportData{
		Version:     "1.0",
		SnapshotID:  uuid.NewString(),
		ExportedAt:  time.Now(),
		Tool:        "liftlog",
		Resistance:  resistance,
		Mobility:    mobility,
		Cardio:      cardio,
		BodyMetrics: bodyMetrics,
		OneRepMaxes: oneRepMaxes,
	}, nil
}

// ImportData appends a snapshot's records under the given user. Row ids
// from the snapshot are discarded; 1RM entries go through the usual
// per-date upsert.
func (d *DB) ImportData(userID int64, data *ExportData) error {
	for _, s := range data.Resistance {
		s.UserID = userID
		if err := d.InsertResistanceSet(s); err != nil {
			return fmt.Errorf("import resistance set: %w", err)
		}
	}

	for _, m := range data.Mobility {
		m.UserID = userID
		if err := d.InsertMobilityEntry(m); err != nil {
			return fmt.Errorf("import mobility entry: %w", err)
		}
	}

	for _, c := range data.Cardio {
		c.UserID = userID
		if err := d.InsertCardioEntry(c); err != nil {
			return fmt.Errorf("import cardio entry: %w", err)
		}
	}

	for _, b := range data.BodyMetrics {
		b.UserID = userID
		if err := d.InsertBodyMetrics(b); err != nil {
			return fmt.Errorf("import body metrics: %w", err)
		}
	}

	for _, e := range data.OneRepMaxes {
		if err := d.UpsertOneRepMax(userID, e.Exercise, e.Value, e.Date); err != nil {
			return fmt.Errorf("import 1rm entry: %w", err)
		}
	}

	return nil
}

// ExportJSON exports a user's log as JSON.
func (d *DB) ExportJSON(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports a user's log as YAML.
func (d *DB) ExportYAML(userID int64) ([]byte, error) {
	data, err := d.GetAllData(userID)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}
