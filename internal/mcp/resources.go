// ABOUTME: MCP resource implementations for the training log.
// ABOUTME: Provides liftlog://program and liftlog://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akontos/liftlog/internal/models"
)

func (s *Server) registerResources() {
	// liftlog://program - the 4-week program template
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://program",
		Name:        "Program Template",
		Description: "The 4-week strength & conditioning template: days, exercises, targets, cardio and mobility work",
		MIMEType:    "application/json",
	}, s.handleProgramResource)

	// liftlog://summary - recent sets plus latest 1RMs and body metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://summary",
		Name:        "Training Summary",
		Description: "Recent sets, latest one-rep maxes, and latest body measurements",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleProgramResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{
		"weeks":             models.ProgramWeeks,
		"training_days":     models.TrainingDays,
		"resistance":        models.WeeklyResistance,
		"cardio_types":      models.CardioTypes,
		"mobility_circuits": models.MobilityCircuits,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal program: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://program",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sets, err := s.repo.ListResistanceSets(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	if len(sets) > 10 {
		sets = sets[:10]
	}

	latest1RMs := make(map[string]*models.OneRepMax)
	for _, exercise := range models.AllExercises() {
		e, err := s.repo.LatestOneRepMax(s.userID, exercise)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest 1RM: %w", err)
		}
		if e != nil {
			latest1RMs[exercise] = e
		}
	}

	biometrics, err := s.repo.LatestBodyMetrics(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest body metrics: %w", err)
	}

	result := map[string]any{
		"recent_sets":      sets,
		"latest_1rm":       latest1RMs,
		"latest_biometric": biometrics,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
