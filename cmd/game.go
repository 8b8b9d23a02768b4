package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	boardadapter "github.com/bnema/icebreaker-bingo/internal/adapters/render/board"
	"github.com/bnema/icebreaker-bingo/internal/application"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Deal a new board and start playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}

			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			if err := session.StartGame(cmd.Context(), parsed); err != nil {
				return err
			}

			return writeView(cmd, app, session.Current(), "")
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.ModeBingo), "Game mode: bingo or scavenger")

	return cmd
}

func newToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <square-id>",
		Short: "Mark or unmark a square",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid square id %q: %w", args[0], err)
			}

			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			if session.Current().Screen == domain.ScreenStart {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No game in progress. Run `ibingo start` first.")
				return nil
			}

			session.ToggleSquare(cmd.Context(), id)
			view := session.Current()

			hint := ""
			if view.ShowWinModal {
				hint = "You got a bingo! Run `ibingo reset` to play again."
			}

			return writeView(cmd, app, view, hint)
		},
	}
}

func newShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				data, err := application.EncodeState(session.State())
				if err != nil {
					return err
				}

				var pretty bytes.Buffer
				if err := json.Indent(&pretty, data, "", "  "); err != nil {
					return fmt.Errorf("format game state: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
				return err
			}

			return writeView(cmd, app, session.Current(), "")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the saved game record as JSON")

	return cmd
}

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the current game and return to the start screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			session.ResetGame(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Game reset.")
			return nil
		},
	}
}

func writeView(cmd *cobra.Command, app *app, view application.View, hint string) error {
	opts := boardadapter.DefaultOptions()
	opts.Hint = hint

	rendered, err := app.renderer(view, opts)
	if err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
