// ABOUTME: MCP resource implementations for the fitness trackers.
// ABOUTME: Provides fitverse://progress, fitverse://health/history, and fitverse://feed resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fitverse://progress - Daily workout progress records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitverse://progress",
		Name:        "Workout Progress",
		Description: "Daily calories and minutes from completed workouts",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	// fitverse://health/history - Daily health metric snapshots
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitverse://health/history",
		Name:        "Health History",
		Description: "Daily health metric snapshots for the signed-in user",
		MIMEType:    "application/json",
	}, s.handleHealthHistoryResource)

	// fitverse://feed - Shared social feed
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitverse://feed",
		Name:        "Social Feed",
		Description: "Community posts, most recent first",
		MIMEType:    "application/json",
	}, s.handleFeedResource)
}

// Resource handlers

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	progress := s.workouts.Progress()

	totalCalories := 0
	totalMinutes := 0
	for _, p := range progress {
		totalCalories += p.TotalCaloriesBurned
		totalMinutes += p.TotalDurationMinutes
	}

	result := map[string]interface{}{
		"records": progress,
		"totals": map[string]int{
			"days":              len(progress),
			"calories_burned":   totalCalories,
			"minutes_exercised": totalMinutes,
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitverse://progress",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHealthHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history := s.health.History()

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"current":      s.health.Current(),
		"history":      history,
		"entry_count":  len(history),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitverse://health/history",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleFeedResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	feed := s.social.Feed()

	result := map[string]interface{}{
		"posts": feed,
		"count": len(feed),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitverse://feed",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
