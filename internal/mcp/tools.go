// ABOUTME: MCP tool implementations for the training log.
// ABOUTME: Covers set/cardio/mobility/biometric logging, last-set recall, and 1RM tracking.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akontos/liftlog/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log one set of a resistance exercise (weight, reps, RIR)",
	}, s.handleLogSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_last_set",
		Description: "Recall the most recently logged weight/reps/RIR for an exercise and set number",
	}, s.handleGetLastSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_cardio",
		Description: "Log a cardio session (type, duration, average heart rate)",
	}, s.handleLogCardio)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mobility",
		Description: "Log which mobility circuits were completed today",
	}, s.handleLogMobility)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_biometrics",
		Description: "Record a body measurement snapshot (height, weight, age, body fat)",
	}, s.handleLogBiometrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_1rm",
		Description: "Record a one-rep max for an exercise; same-date entries are replaced",
	}, s.handleRecord1RM)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_latest_1rm",
		Description: "Get the most recent one-rep max for an exercise",
	}, s.handleGetLatest1RM)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sets",
		Description: "List recently logged resistance sets",
	}, s.handleListSets)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get per-day max weight history for an exercise",
	}, s.handleGetProgress)
}

// Tool input/output types

type logSetInput struct {
	Exercise  string  `json:"exercise" jsonschema:"Exercise name (e.g. Back-squat, Bench Press)"`
	Weight    float64 `json:"weight" jsonschema:"Weight in kg"`
	Reps      int     `json:"reps" jsonschema:"Repetitions performed"`
	RIR       int     `json:"rir,omitempty" jsonschema:"Reps in reserve (0-5)"`
	SetNumber int     `json:"set_number,omitempty" jsonschema:"Set number within the session (default 1)"`
	Week      int     `json:"week,omitempty" jsonschema:"Program week (1-4)"`
	Day       string  `json:"day,omitempty" jsonschema:"Training day (Monday, Tuesday, Thursday AM, Friday)"`
	Date      string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type logSetOutput struct {
	ID      int64  `json:"id"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message"`
}

type getLastSetInput struct {
	Exercise  string `json:"exercise" jsonschema:"Exercise name"`
	SetNumber int    `json:"set_number,omitempty" jsonschema:"Set number (default 1)"`
}

type logCardioInput struct {
	Type        string `json:"type" jsonschema:"Session type (HIIT (4×4), 10-min HIIT, Zone-2 Run, Other)"`
	DurationMin int    `json:"duration_min" jsonschema:"Duration in minutes"`
	AvgHR       int    `json:"avg_hr,omitempty" jsonschema:"Average heart rate in bpm"`
	Date        string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type logMobilityInput struct {
	Prep          bool   `json:"prep,omitempty" jsonschema:"Prep circuit completed"`
	JointFlow     bool   `json:"joint_flow,omitempty" jsonschema:"Joint flow circuit completed"`
	AnimalCircuit bool   `json:"animal_circuit,omitempty" jsonschema:"Animal circuit completed"`
	CuffFinisher  bool   `json:"cuff_finisher,omitempty" jsonschema:"Cuff finisher completed"`
	Date          string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type logBiometricsInput struct {
	HeightCM   float64 `json:"height_cm,omitempty" jsonschema:"Height in cm"`
	WeightKG   float64 `json:"weight_kg" jsonschema:"Body weight in kg"`
	Sex        string  `json:"sex,omitempty" jsonschema:"Sex"`
	Age        int     `json:"age,omitempty" jsonschema:"Age in years"`
	BodyFatPct float64 `json:"body_fat_percentage,omitempty" jsonschema:"Body fat percentage"`
	Date       string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type record1RMInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	Value    float64 `json:"value" jsonschema:"One-rep max in kg"`
	Date     string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type exerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
}

type listSetsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	setNumber := input.SetNumber
	if setNumber <= 0 {
		setNumber = 1
	}

	target := models.TargetFor(input.Day, input.Exercise)
	set := models.NewResistanceSet(s.userID, input.Week, input.Day, input.Exercise,
		setNumber, target, input.Weight, input.Reps, input.RIR)

	t, ok, err := parseDay(input.Date)
	if err != nil {
		return nil, logSetOutput{}, err
	}
	if ok {
		set.WithDate(t)
	}

	if err := s.repo.InsertResistanceSet(set); err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	s.logger.Debug("logged set", "exercise", input.Exercise, "set", setNumber)

	return nil, logSetOutput{
		ID:     set.ID,
		Target: target,
		Message: fmt.Sprintf("Logged %s set %d: %.1f kg × %d @ RIR %d",
			input.Exercise, setNumber, input.Weight, input.Reps, input.RIR),
	}, nil
}

func (s *Server) handleGetLastSet(ctx context.Context, req *mcp.CallToolRequest, input getLastSetInput) (*mcp.CallToolResult, any, error) {
	setNumber := input.SetNumber
	if setNumber <= 0 {
		setNumber = 1
	}

	last, err := s.repo.FetchLastSet(input.Exercise, setNumber, s.userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch last set: %w", err)
	}
	if last == nil {
		return nil, map[string]any{"message": fmt.Sprintf("No sets logged for %s set %d.", input.Exercise, setNumber)}, nil
	}

	return nil, last, nil
}

func (s *Server) handleLogCardio(ctx context.Context, req *mcp.CallToolRequest, input logCardioInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry := &models.CardioEntry{
		UserID:      s.userID,
		Date:        time.Now(),
		Type:        input.Type,
		DurationMin: input.DurationMin,
		AvgHR:       input.AvgHR,
	}
	t, ok, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if ok {
		entry.Date = t
	}

	if err := s.repo.InsertCardioEntry(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log cardio: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %d min at %d bpm", input.Type, input.DurationMin, input.AvgHR),
	}, nil
}

func (s *Server) handleLogMobility(ctx context.Context, req *mcp.CallToolRequest, input logMobilityInput) (*mcp.CallToolResult, simpleOutput, error) {
	entry := &models.MobilityEntry{
		UserID:        s.userID,
		Date:          time.Now(),
		Prep:          input.Prep,
		JointFlow:     input.JointFlow,
		AnimalCircuit: input.AnimalCircuit,
		CuffFinisher:  input.CuffFinisher,
	}
	t, ok, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if ok {
		entry.Date = t
	}

	if err := s.repo.InsertMobilityEntry(entry); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log mobility: %w", err)
	}

	done := 0
	for _, b := range []bool{input.Prep, input.JointFlow, input.AnimalCircuit, input.CuffFinisher} {
		if b {
			done++
		}
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged mobility: %d of 4 circuits completed", done),
	}, nil
}

func (s *Server) handleLogBiometrics(ctx context.Context, req *mcp.CallToolRequest, input logBiometricsInput) (*mcp.CallToolResult, simpleOutput, error) {
	b := &models.BodyMetrics{
		UserID:   s.userID,
		Date:     time.Now(),
		HeightCM: input.HeightCM,
		WeightKG: input.WeightKG,
		Sex:      input.Sex,
		Age:      input.Age,
	}
	if input.BodyFatPct > 0 {
		b.WithBodyFat(input.BodyFatPct)
	}
	t, ok, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if ok {
		b.Date = t
	}

	if err := s.repo.InsertBodyMetrics(b); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log biometrics: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded body metrics: %.1f kg", input.WeightKG),
	}, nil
}

func (s *Server) handleRecord1RM(ctx context.Context, req *mcp.CallToolRequest, input record1RMInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := time.Now()
	t, ok, err := parseDay(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if ok {
		date = t
	}

	if err := s.repo.UpsertOneRepMax(s.userID, input.Exercise, input.Value, date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to record 1RM: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %s 1RM: %.1f kg on %s",
			input.Exercise, input.Value, date.Format(models.DateLayout)),
	}, nil
}

func (s *Server) handleGetLatest1RM(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, any, error) {
	latest, err := s.repo.LatestOneRepMax(s.userID, input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest 1RM: %w", err)
	}
	if latest == nil {
		return nil, map[string]any{"message": fmt.Sprintf("No 1RM recorded for %s.", input.Exercise)}, nil
	}

	return nil, latest, nil
}

func (s *Server) handleListSets(ctx context.Context, req *mcp.CallToolRequest, input listSetsInput) (*mcp.CallToolResult, any, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	sets, err := s.repo.ListResistanceSets(s.userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sets: %w", err)
	}
	if len(sets) == 0 {
		return nil, map[string]any{"message": "No sets logged."}, nil
	}
	if len(sets) > limit {
		sets = sets[:limit]
	}

	return nil, sets, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, any, error) {
	points, err := s.repo.MaxWeightPerDay(s.userID, input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get progress: %w", err)
	}
	if len(points) == 0 {
		return nil, map[string]any{"message": fmt.Sprintf("No sets logged for %s.", input.Exercise)}, nil
	}

	return nil, points, nil
}

// parseDay parses a YYYY-MM-DD date, reporting whether one was given.
// A non-empty malformed date is an error: silently falling back to
// today would record the entry under the wrong day.
func parseDay(s string) (time.Time, bool, error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, true, nil
}
