package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/services"
)

// Goals lists the user's goals and remembers them for delgoal.
func (a *App) Goals(ctx context.Context, _ []string) error {
	goals, err := a.goalService.List(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.goals = goals
	a.mu.Unlock()

	if len(goals) == 0 {
		fmt.Fprintln(a.out, "No goals found. Add a goal to get started!")
		return nil
	}

	fmt.Fprintln(a.out, "Your Goals")
	for i, g := range goals {
		line := fmt.Sprintf("%3d. %s", i+1, g.Description)
		if target := g.Target(); target != "" {
			line += fmt.Sprintf(" [%s]", target)
		}
		if created := g.CreatedOn(); created != "" {
			line += fmt.Sprintf(" (%s)", created)
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// AddGoal creates a goal from the arguments or, without arguments, from a
// prompt.
func (a *App) AddGoal(ctx context.Context, args []string) error {
	description := strings.Join(args, " ")
	if description == "" {
		var err error
		description, err = getSimpleText(a.reader, "Enter your goal description", a.out)
		if err != nil {
			return err
		}
	}

	if _, err := a.goalService.Create(ctx, description); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Goal added.")
	return nil
}

// DeleteGoal removes a goal given by its number in the last listing or by
// its id.
func (a *App) DeleteGoal(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("delgoal <number|id>")
	}
	id := a.resolveGoal(args[0])

	if err := a.goalService.Delete(ctx, id); err != nil {
		return err
	}

	a.mu.Lock()
	a.goals = services.RemoveGoal(a.goals, id)
	a.mu.Unlock()

	fmt.Fprintln(a.out, "Goal deleted.")
	return nil
}

func (a *App) resolveGoal(ref string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(a.goals) {
		return a.goals[n-1].ID
	}
	return ref
}
