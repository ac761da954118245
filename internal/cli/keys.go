package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the effective key bindings",
		Long: `List every key the calculator accepts and the canonical token it maps
to, including extra bindings from the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := rootOpts.resolved()
			decoder, err := cfg.Decoder()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid key bindings", err)
			}

			bindings := decoder.Bindings()
			if rootOpts.Format == "json" {
				f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
				return f.Success(bindings)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tTOKEN")
			for _, b := range bindings {
				fmt.Fprintf(tw, "%s\t%s\n", b.Key, b.Token)
			}
			return tw.Flush()
		},
	}

	return cmd
}
