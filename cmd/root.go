package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ibingo",
		Short:         "Icebreaker bingo and scavenger hunt for parties",
		Long:          "ibingo deals a 5x5 bingo board or a 24-item scavenger checklist of icebreaker prompts. Mark the people you meet; complete a row, column or diagonal to win. The game is saved after every move.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newToggleCmd(app),
		newShowCmd(app),
		newResetCmd(app),
		newPlayCmd(app),
		newPromptsCmd(app),
		newStateCmd(app),
	)

	return rootCmd
}
