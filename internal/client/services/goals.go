package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/dmitrijs2005/fittrack/internal/fitness"
	"github.com/dmitrijs2005/fittrack/internal/sanitize"
)

const GoalsPath = "/api/goals"

// Goal is one entry of the goal list. Fields keeps the whole sanitized
// record, including attributes the client does not interpret.
type Goal struct {
	ID          string
	Description string
	CreatedAt   string
	Fields      map[string]any
}

// CreatedOn renders CreatedAt for display, or "" when the goal has none.
func (g Goal) CreatedOn() string {
	if g.CreatedAt == "" {
		return ""
	}
	return fitness.FormatDate(g.CreatedAt)
}

// Target describes a measurable goal as "Run: 5 km". Goals without a valid
// name, targetValue and unit yield "".
func (g Goal) Target() string {
	if !fitness.IsValidGoal(g.Fields) {
		return ""
	}
	return fmt.Sprintf("%s: %v %s", g.Fields["name"], g.Fields["targetValue"], g.Fields["unit"])
}

type GoalService interface {
	List(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, description string) (*Goal, error)
	Delete(ctx context.Context, id string) error
}

type goalService struct {
	client  Client
	session *session.Provider
}

// NewGoalService returns a GoalService. When provider is not nil, List
// refuses to run without an authenticated session.
func NewGoalService(client Client, provider *session.Provider) GoalService {
	return &goalService{client: client, session: provider}
}

func (g *goalService) List(ctx context.Context) ([]Goal, error) {
	if g.session != nil && !g.session.Current().IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	resp, err := g.client.Get(ctx, GoalsPath)
	if err != nil {
		return nil, err
	}

	var raw []any
	if err := resp.Decode(&raw); err != nil {
		return nil, &ProtocolError{Endpoint: GoalsPath, Message: "Failed to fetch goals."}
	}

	goals := make([]Goal, 0, len(raw))
	for _, item := range sanitize.Value(raw).([]any) {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		goals = append(goals, goalFrom(record))
	}
	return goals, nil
}

// Create posts a new goal. The description is escaped by the client.
func (g *goalService) Create(ctx context.Context, description string) (*Goal, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	resp, err := g.client.Post(ctx, GoalsPath, map[string]any{"description": description})
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := resp.Decode(&record); err != nil || record == nil {
		// The backend may answer 201 without a body.
		return &Goal{Description: sanitize.String(description)}, nil
	}
	goal := goalFrom(sanitize.Value(record).(map[string]any))
	return &goal, nil
}

func (g *goalService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("goal id: %w", common.ErrNotFound)
	}
	_, err := g.client.Delete(ctx, GoalsPath+"/"+url.PathEscape(id))
	return err
}

func goalFrom(record map[string]any) Goal {
	g := Goal{Fields: record}
	g.ID, _ = record["_id"].(string)
	g.Description, _ = record["description"].(string)
	if created, ok := record["createdAt"].(string); ok {
		g.CreatedAt = created
	}
	return g
}

// RemoveGoal returns goals without the one identified by id.
func RemoveGoal(goals []Goal, id string) []Goal {
	out := goals[:0:0]
	for _, g := range goals {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}
