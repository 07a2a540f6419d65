package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgray/goalsmith/internal/cli/formatter"
	"github.com/dgray/goalsmith/internal/intelligence"
)

func newCriteriaCmd(app *App) *cobra.Command {
	var asJSON bool
	var goalRef string

	cmd := &cobra.Command{
		Use:   "criteria [DESCRIPTION...]",
		Short: "Suggest SMART criteria for a goal or description",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			input := intelligence.GoalInput{Description: strings.Join(args, " ")}
			if goalRef != "" {
				g, err := app.Goals.Get(ctx, goalRef)
				if err != nil {
					return err
				}
				input = intelligence.GoalInput{Title: g.Title, Description: g.Description}
			}
			if input.Title == "" && strings.TrimSpace(input.Description) == "" {
				return fmt.Errorf("provide a description or --goal")
			}

			suggestions := app.Criteria.Suggest(ctx, input)
			if asJSON {
				return printJSON(cmd, suggestions)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCriteria(suggestions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the suggestions as JSON")
	cmd.Flags().StringVar(&goalRef, "goal", "", "Suggest criteria for a stored goal (ID or prefix)")
	return cmd
}

func newRefineCmd(app *App) *cobra.Command {
	var asJSON, save bool
	var feedback string

	cmd := &cobra.Command{
		Use:   "refine ID",
		Short: "Refine a stored goal and collect recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			g, err := app.Goals.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if feedback == "" && app.interactive() {
				form := wizardInputText("What should change?", "e.g. the timeline is too aggressive", false, &feedback)
				if err := form.Run(); err != nil {
					return err
				}
			}

			result := app.Refine.Refine(ctx, *g, feedback)

			if save && result.Source == intelligence.SourceModel {
				updated := result.Goal
				if err := app.Goals.Update(ctx, &updated); err != nil {
					return err
				}
				result.Goal = updated
			}

			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRefinement(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the refinement as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the refined goal when the model changed it")
	cmd.Flags().StringVar(&feedback, "feedback", "", "Direction for the refinement")
	return cmd
}
