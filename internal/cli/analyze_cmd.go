package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgray/goalsmith/internal/cli/formatter"
	"github.com/dgray/goalsmith/internal/extract"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var asJSON bool
	var goalRef string

	cmd := &cobra.Command{
		Use:   "analyze DESCRIPTION...",
		Short: "Run the full extraction pipeline over a goal description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			description := strings.Join(args, " ")

			goalID := ""
			if goalRef != "" {
				g, err := app.Goals.Get(ctx, goalRef)
				if err != nil {
					return err
				}
				goalID = g.ID
			}

			record, err := app.Analyses.Analyze(ctx, description, goalID)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, record.Report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(record.Report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw report as JSON")
	cmd.Flags().StringVar(&goalRef, "goal", "", "Attach the analysis to a stored goal (ID or prefix)")

	return cmd
}

func newIntentCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "intent DESCRIPTION...",
		Short: "Classify domain, action, outcome and urgency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := extract.ClassifyIntent(strings.Join(args, " "))
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIntent(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newTimeframeCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "timeframe DESCRIPTION...",
		Short: "Extract dates, durations and milestones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := extract.ParseTimeframe(strings.Join(args, " "), time.Now().UTC())
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimeframe(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newMetricsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "metrics DESCRIPTION...",
		Short: "Identify measurable targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := extract.IdentifyMetrics(strings.Join(args, " "))
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMetrics(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newConstraintsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "constraints DESCRIPTION...",
		Short: "Extract limiting factors with category and severity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := extract.ExtractConstraints(strings.Join(args, " "))
			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConstraints(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
