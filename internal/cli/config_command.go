package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"studyflow/internal/config"
)

func (r *RootCommand) newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, environment
variables and flags have been applied. Secrets are masked.

Supported formats:
  toml - TOML (default)
  yaml - YAML
  json - JSON

Example:
  studyflow config show --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			out, err := config.Render(r.config, format)
			if err != nil {
				return NewErrorHandler().Handle("render configuration", err)
			}
			if !bytes.HasSuffix(out, []byte("\n")) {
				out = append(out, '\n')
			}

			if used := r.loader.ConfigFileUsed(); used != "" && r.config.Application.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Loaded from %s\n", used)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	showCmd.Flags().StringP("format", "f", config.FormatTOML, "Output format: toml, yaml or json")

	configCmd.AddCommand(showCmd)
	return configCmd
}
