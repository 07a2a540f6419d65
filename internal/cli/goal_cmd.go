package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgray/goalsmith/internal/cli/formatter"
	"github.com/dgray/goalsmith/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage stored goals",
	}

	cmd.AddCommand(
		newGoalNewCmd(app),
		newGoalListCmd(app),
		newGoalShowCmd(app),
		newGoalDeleteCmd(app),
		newGoalValidateCmd(app),
		newGoalHistoryCmd(app),
	)

	return cmd
}

func newGoalNewCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "new [DESCRIPTION...]",
		Short: "Create a goal from a free-text description",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			description := strings.TrimSpace(strings.Join(args, " "))

			if description == "" {
				if !app.interactive() {
					return fmt.Errorf("a goal description is required when not running interactively")
				}
				form := wizardGoalDescription(&description)
				if err := form.Run(); err != nil {
					return err
				}
				description = strings.TrimSpace(description)
				if description == "" {
					return fmt.Errorf("a goal description is required")
				}
			}

			plan, err := app.Goals.PlanFromDescription(ctx, description)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, plan)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full plan as JSON")
	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.List(context.Background(), domain.GoalStatus(status))
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (draft|active|completed|abandoned)")
	return cmd
}

func newGoalShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a goal by ID or unique prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Goals.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, g)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoal(g))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the goal as JSON")
	return cmd
}

func newGoalDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a goal and its analysis history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, err := app.Goals.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := false
				form := wizardConfirm(fmt.Sprintf("Delete goal %q?", g.Title), &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := app.Goals.Delete(ctx, g.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", g.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newGoalValidateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate ID",
		Short: "Score a stored goal against the SMART quality checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, result, err := app.Goals.Validate(context.Background(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n\n", formatter.Bold(g.Title), formatter.TruncID(g.ID))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatValidation(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the validation result as JSON")
	return cmd
}

func newGoalHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history ID",
		Short: "List past analyses of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, err := app.Goals.Get(ctx, args[0])
			if err != nil {
				return err
			}

			records, err := app.Analyses.ListByGoal(ctx, g.ID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No analyses recorded for this goal.")
				return nil
			}

			headers := []string{"ID", "CONFIDENCE", "WHEN", "DESCRIPTION"}
			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					formatter.TruncID(r.ID),
					formatter.ConfidenceLabel(r.OverallConfidence),
					formatter.HumanTimestamp(r.CreatedAt),
					r.Description,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	return cmd
}
