// ABOUTME: Repository interface for the training-log store.
// ABOUTME: Defines the contract consumed by the CLI, MCP server, and sync layer.
package storage

import (
	"time"

	"github.com/akontos/liftlog/internal/models"
)

// Repository defines the storage interface for training-log data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Accounts
	CreateUser(username, password string) (int64, error)
	GetUser(username string) (*models.User, error)
	ListUsers() ([]*models.User, error)
	UpdatePassword(userID int64, newPassword string) error

	// Resistance log
	InsertResistanceSet(s *models.ResistanceSet) error
	InsertResistanceSets(sets []*models.ResistanceSet) error
	ListResistanceSets(userID int64) ([]*models.ResistanceSet, error)
	FetchLastSet(exercise string, setNumber int, userID int64) (*models.SetResult, error)
	MaxWeightPerDay(userID int64, exercise string) ([]models.ProgressPoint, error)

	// Mobility and cardio logs
	InsertMobilityEntry(m *models.MobilityEntry) error
	ListMobilityEntries(userID int64) ([]*models.MobilityEntry, error)
	InsertCardioEntry(c *models.CardioEntry) error
	ListCardioEntries(userID int64) ([]*models.CardioEntry, error)

	// Body measurements
	InsertBodyMetrics(b *models.BodyMetrics) error
	ListBodyMetrics(userID int64) ([]*models.BodyMetrics, error)
	LatestBodyMetrics(userID int64) (*models.BodyMetrics, error)

	// One-rep maxes
	UpsertOneRepMax(userID int64, exercise string, value float64, date time.Time) error
	LatestOneRepMax(userID int64, exercise string) (*models.OneRepMax, error)
	ListOneRepMaxes(userID int64) ([]*models.OneRepMax, error)

	// Export/Import
	GetAllData(userID int64) (*ExportData, error)
	ExportJSON(userID int64) ([]byte, error)
	ExportYAML(userID int64) ([]byte, error)
	ImportData(userID int64, data *ExportData) error

	// Maintenance
	ReassignAllRecords(userID int64) error

	// Lifecycle
	Close() error
}
