package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"studyflow/internal/interpreter"
	"studyflow/internal/logging"
)

func (r *RootCommand) newInterpretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret [text]",
		Short: "Interpret a free-text command without storing anything",
		Long: `Send a free-text command to the generative model and print the structured
command it resolves to, after relative dates and clock times are repaired.
Nothing is written to the database.

Examples:
  studyflow interpret "add task finish the lab report tomorrow"
  studyflow interpret "I spent 15 on lunch"
  studyflow interpret "remind me to call mom at 7pm" --timezone Asia/Kolkata`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.commandTimeout())
			defer cancel()

			command, err := r.interpret(ctx, strings.Join(args, " "))
			if err != nil {
				return NewErrorHandler().Handle("interpret command", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(command)
		},
	}
}

func (r *RootCommand) interpret(ctx context.Context, text string) (interpreter.Command, error) {
	loc, err := r.config.Location()
	if err != nil {
		return interpreter.Command{}, err
	}

	model, err := r.newModel(ctx, r.config.Model)
	if err != nil {
		return interpreter.Command{}, err
	}

	interp := interpreter.New(model, logging.Must(r.config.Log))
	return interp.Interpret(ctx, text, timeNow().In(loc)), nil
}
