// ABOUTME: Push operations for mirroring training-log rows into Charm KV.
// ABOUTME: Rows are keyed by type prefix, owner username, and row id.
package charm

import (
	"fmt"

	"github.com/akontos/liftlog/internal/models"
)

// Key prefixes for the mirrored record types.
const (
	SetPrefix       = "set:"
	MobilityPrefix  = "mobility:"
	CardioPrefix    = "cardio:"
	BiometricPrefix = "biometric:"
	OneRMPrefix     = "orm:"
)

// recordKey builds the KV key for a mirrored row.
func recordKey(prefix, username string, id int64) string {
	return fmt.Sprintf("%s%s:%d", prefix, username, id)
}

// PutResistanceSet mirrors one logged set.
func (c *Client) PutResistanceSet(username string, s *models.ResistanceSet) error {
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal resistance set: %w", err)
	}
	return c.set(recordKey(SetPrefix, username, s.ID), data)
}

// PutMobilityEntry mirrors one mobility entry.
func (c *Client) PutMobilityEntry(username string, m *models.MobilityEntry) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal mobility entry: %w", err)
	}
	return c.set(recordKey(MobilityPrefix, username, m.ID), data)
}

// PutCardioEntry mirrors one cardio session.
func (c *Client) PutCardioEntry(username string, e *models.CardioEntry) error {
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal cardio entry: %w", err)
	}
	return c.set(recordKey(CardioPrefix, username, e.ID), data)
}

// PutBodyMetrics mirrors one body measurement snapshot.
func (c *Client) PutBodyMetrics(username string, b *models.BodyMetrics) error {
	data, err := marshalJSON(b)
	if err != nil {
		return fmt.Errorf("marshal body metrics: %w", err)
	}
	return c.set(recordKey(BiometricPrefix, username, b.ID), data)
}

// PutOneRepMax mirrors one 1RM entry.
func (c *Client) PutOneRepMax(username string, e *models.OneRepMax) error {
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal 1rm entry: %w", err)
	}
	return c.set(recordKey(OneRMPrefix, username, e.ID), data)
}

// ListResistanceSets returns every mirrored set for a user.
func (c *Client) ListResistanceSets(username string) ([]*models.ResistanceSet, error) {
	raw, err := c.listByPrefix(SetPrefix + username + ":")
	if err != nil {
		return nil, fmt.Errorf("list mirrored sets: %w", err)
	}

	var sets []*models.ResistanceSet
	for _, data := range raw {
		s, err := unmarshalJSON[models.ResistanceSet](data)
		if err != nil {
			continue // Skip invalid entries
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// Counts reports how many rows of each type a user has mirrored.
func (c *Client) Counts(username string) (map[string]int, error) {
	counts := make(map[string]int)
	for label, prefix := range map[string]string{
		"resistance":   SetPrefix,
		"mobility":     MobilityPrefix,
		"cardio":       CardioPrefix,
		"body_metrics": BiometricPrefix,
		"one_rep_max":  OneRMPrefix,
	} {
		n, err := c.countByPrefix(prefix + username + ":")
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", label, err)
		}
		counts[label] = n
	}
	return counts, nil
}
