package cmd

import (
	"fmt"

	tomlprompts "github.com/bnema/icebreaker-bingo/internal/adapters/prompts/toml"
	"github.com/bnema/icebreaker-bingo/internal/domain"
	"github.com/spf13/cobra"
)

func newPromptsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Inspect the prompt pool",
	}

	cmd.AddCommand(
		newPromptsListCmd(app),
		newPromptsInitCmd(),
	)

	return cmd
}

func newPromptsListCmd(app *app) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the prompts boards are dealt from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompts, err := app.prompts.Prompts(cmd.Context())
			if err != nil {
				return err
			}

			if sample {
				prompts = samplePrompts(prompts)
			}

			for _, prompt := range prompts {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), sanitizeForTerminal(prompt))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "Only show the first, middle and last prompts")

	return cmd
}

func newPromptsInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Write the built-in prompts to a TOML file you can edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tomlprompts.WritePrompts(args[0], "default", domain.DefaultPrompts); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d prompts to %s\n", len(domain.DefaultPrompts), args[0])
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s_PROMPTS_PATH or prompts.path in config.toml to use it.\n", envPrefix)
			return nil
		},
	}
}

func samplePrompts(prompts []string) []string {
	if len(prompts) <= 3 {
		return prompts
	}

	return []string{prompts[0], prompts[len(prompts)/2], prompts[len(prompts)-1]}
}
