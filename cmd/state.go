package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/spf13/cobra"
)

func newStateCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear the saved game",
	}

	cmd.AddCommand(
		newStateInspectCmd(app),
		newStateClearCmd(app),
	)

	return cmd
}

func newStateInspectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Validate the saved game without loading it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "backend: %s\n", app.backend)
			_, _ = fmt.Fprintf(out, "schema version: %d\n", application.CurrentSchemaVersion)

			state, err := app.store.Inspect(cmd.Context())
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				_, _ = fmt.Fprintln(out, "record: none")
				return nil
			case errors.Is(err, application.ErrSchemaVersion), errors.Is(err, application.ErrInvalidRecord):
				_, _ = fmt.Fprintln(out, "record: invalid (will be discarded on next load)")
				_, _ = fmt.Fprintf(out, "reason: %s\n", sanitizeForTerminal(err.Error()))
				return nil
			case err != nil:
				return err
			}

			_, _ = fmt.Fprintln(out, "record: valid")
			_, _ = fmt.Fprintf(out, "screen: %s\n", state.Screen)
			_, _ = fmt.Fprintf(out, "mode: %s\n", state.Mode)
			_, _ = fmt.Fprintf(out, "squares: %d (marked %d)\n", len(state.Board), state.MarkedCount())
			if state.WinningLine != nil {
				_, _ = fmt.Fprintf(out, "winning line: %s %d %v\n", state.WinningLine.Type, state.WinningLine.Index, state.WinningLine.Squares)
			}
			return nil
		},
	}
}

func newStateClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.store.Clear(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Saved game deleted.")
			return nil
		},
	}
}
