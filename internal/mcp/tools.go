// ABOUTME: MCP tool implementations for the fitness trackers.
// ABOUTME: Provides workout, health, social, and coach operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fitverse/internal/models"
)

func (s *Server) registerTools() {
	// list_catalog
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_catalog",
		Description: "List the available workout templates",
	}, s.handleListCatalog)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List the signed-in user's tracked workouts",
	}, s.handleListWorkouts)

	// add_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Add a catalog workout to the user's list",
	}, s.handleAddWorkout)

	// complete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Mark a tracked workout complete and log today's progress",
	}, s.handleCompleteWorkout)

	// track_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "track_exercise",
		Description: "Flag a single exercise done or not done",
	}, s.handleTrackExercise)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get the user's daily workout progress records",
	}, s.handleGetProgress)

	// log_health
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_health",
		Description: "Record today's health metrics snapshot",
	}, s.handleLogHealth)

	// get_feed
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_feed",
		Description: "Read the social feed, most recent first",
	}, s.handleGetFeed)

	// create_post
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_post",
		Description: "Publish a post to the social feed",
	}, s.handleCreatePost)

	// ask_coach
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "ask_coach",
		Description: "Ask the AI fitness coach a question",
	}, s.handleAskCoach)
}

// Tool input/output types

type addWorkoutInput struct {
	TemplateID string `json:"template_id" jsonschema:"Catalog template ID"`
}

type workoutIDInput struct {
	WorkoutID string `json:"workout_id" jsonschema:"Tracked workout ID"`
}

type trackExerciseInput struct {
	WorkoutID  string `json:"workout_id" jsonschema:"Tracked workout ID"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise ID within the workout"`
	Completed  bool   `json:"completed" jsonschema:"Whether the exercise is done"`
}

type logHealthInput struct {
	HeartRate        float64 `json:"heart_rate,omitempty" jsonschema:"Resting heart rate (bpm)"`
	BloodPressureSys float64 `json:"blood_pressure_sys,omitempty" jsonschema:"Systolic pressure (mmHg)"`
	BloodPressureDia float64 `json:"blood_pressure_dia,omitempty" jsonschema:"Diastolic pressure (mmHg)"`
	Hydration        float64 `json:"hydration,omitempty" jsonschema:"Hydration percentage"`
	SleepHours       float64 `json:"sleep_hours,omitempty" jsonschema:"Hours slept"`
	Weight           float64 `json:"weight,omitempty" jsonschema:"Weight (kg)"`
	Height           float64 `json:"height,omitempty" jsonschema:"Height (cm)"`
	Age              int     `json:"age,omitempty" jsonschema:"Age in years"`
}

type createPostInput struct {
	Content string `json:"content" jsonschema:"Post text"`
	Image   string `json:"image,omitempty" jsonschema:"Optional image URL"`
}

type askCoachInput struct {
	Question string `json:"question" jsonschema:"Fitness question for the coach"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type coachOutput struct {
	Reply string `json:"reply"`
}

// Tool handlers

func (s *Server) handleListCatalog(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.workouts.Catalog(), nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts := s.workouts.Collection()
	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No tracked workouts."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.workouts.Add(input.TemplateID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add workout: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s to your workouts", w.Title),
	}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input workoutIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.workouts.Complete(input.WorkoutID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete workout: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Workout %s completed. Great job!", input.WorkoutID),
	}, nil
}

func (s *Server) handleTrackExercise(ctx context.Context, req *mcp.CallToolRequest, input trackExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.workouts.SetExerciseCompletion(input.WorkoutID, input.ExerciseID, input.Completed); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to track exercise: %w", err)
	}
	state := "not done"
	if input.Completed {
		state = "done"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Exercise %s marked %s", input.ExerciseID, state),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	progress := s.workouts.Progress()
	if len(progress) == 0 {
		return nil, map[string]interface{}{"message": "No progress recorded yet."}, nil
	}
	return nil, progress, nil
}

func (s *Server) handleLogHealth(ctx context.Context, req *mcp.CallToolRequest, input logHealthInput) (*mcp.CallToolResult, simpleOutput, error) {
	metrics := models.HealthMetrics{
		HeartRate:        input.HeartRate,
		BloodPressureSys: input.BloodPressureSys,
		BloodPressureDia: input.BloodPressureDia,
		Hydration:        input.Hydration,
		SleepHours:       input.SleepHours,
		Weight:           input.Weight,
		Height:           input.Height,
		Age:              input.Age,
	}
	if err := s.health.Update(metrics); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log health metrics: %w", err)
	}
	return nil, simpleOutput{Message: "Health metrics recorded"}, nil
}

func (s *Server) handleGetFeed(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	feed := s.social.Feed()
	if len(feed) == 0 {
		return nil, map[string]interface{}{"message": "The feed is empty."}, nil
	}
	return nil, feed, nil
}

func (s *Server) handleCreatePost(ctx context.Context, req *mcp.CallToolRequest, input createPostInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.social.CreatePost(input.Content, input.Image)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create post: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Posted (ID: %s)", p.ID.String()[:8]),
	}, nil
}

func (s *Server) handleAskCoach(ctx context.Context, req *mcp.CallToolRequest, input askCoachInput) (*mcp.CallToolResult, coachOutput, error) {
	user := s.accounts.Current()
	if user == nil {
		return nil, coachOutput{}, fmt.Errorf("no user is signed in")
	}

	reply, err := s.coach.Chat(ctx, input.Question, user.GeminiAPIKey)
	if err != nil {
		return nil, coachOutput{}, fmt.Errorf("coach request failed: %w", err)
	}
	return nil, coachOutput{Reply: reply}, nil
}
