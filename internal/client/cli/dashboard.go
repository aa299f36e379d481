package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/client/services"
)

// Dashboard prints the statistics reported by the backend.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	stats, err := a.statsService.Get(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Your Stats")
	for _, f := range services.StatFields {
		fmt.Fprintf(a.out, "%s: %s\n", f.Label, stats.Field(f.Key))
	}
	if _, ok := stats["exercises"]; ok {
		fmt.Fprintf(a.out, "Total Calories Burned: %g\n", stats.TotalCalories())
	}
	return nil
}
