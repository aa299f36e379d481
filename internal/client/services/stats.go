package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/fitness"
	"github.com/dmitrijs2005/fittrack/internal/sanitize"
)

const (
	StatsPath = "/api/stats"

	// NotAvailable is shown for statistics the backend did not report.
	NotAvailable = "N/A"
)

// StatFields are the dashboard statistics, in display order.
var StatFields = []struct{ Key, Label string }{
	{Key: "totalGoals", Label: "Total Goals"},
	{Key: "completedGoals", Label: "Completed Goals"},
	{Key: "currentStreak", Label: "Current Streak"},
	{Key: "averageWorkoutDuration", Label: "Average Workout Duration"},
}

// Stats is the sanitized /api/stats object.
type Stats map[string]any

// Field renders one statistic, or NotAvailable when absent.
func (s Stats) Field(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return NotAvailable
	}
	return fmt.Sprint(v)
}

// TotalCalories sums caloriesBurned over the "exercises" list, if any.
func (s Stats) TotalCalories() float64 {
	return fitness.TotalCalories(s["exercises"])
}

type StatsService interface {
	Get(ctx context.Context) (Stats, error)
}

type statsService struct {
	client Client
}

func NewStatsService(client Client) StatsService {
	return &statsService{client: client}
}

func (s *statsService) Get(ctx context.Context) (Stats, error) {
	resp, err := s.client.Get(ctx, StatsPath)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := resp.Decode(&raw); err != nil {
		return nil, &ProtocolError{Endpoint: StatsPath, Message: "Failed to fetch statistics."}
	}
	if raw == nil {
		return Stats{}, nil
	}
	return Stats(sanitize.Value(raw).(map[string]any)), nil
}
