// Package cli wires configuration, logging and the terminal form into the
// timefield command.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stigoleg/timefield/internal/config"
)

const (
	AppName        = "timefield"
	AppDescription = "An interactive 12-hour time picker for the terminal."
)

// NewRootCmd returns the timefield command.
func NewRootCmd(version string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   AppName,
		Short: AppDescription,
		Long: strings.TrimSpace(`
Shows a time field that expands into an hour / minute / AM-PM stepper.
On submit (ctrl+s) the chosen time is printed to stdout in 24-hour "HH:MM"
form, or an empty line when the field was cleared. Leaving without
submitting exits with status 1.`),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Pick a time, starting empty
  timefield

  # Start from an existing value and capture the result
  start=$(timefield --name start --value 9:30PM)

  # Arabic labels, bordered summary, refuse empty submits
  timefield --locale ar --class bordered --required
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.SetVersionTemplate("Timefield Version: {{.Version}}\n")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a config file (toml, yaml or json)")
	config.RegisterFlags(cmd.Flags())

	return cmd
}
