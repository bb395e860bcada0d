// Package cli exposes the nlsh command tree. The CLI only prints
// resolutions; it never executes the resolved command.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/nlsh-go/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	resolveCmd := newResolveCommand(container)

	root := &cobra.Command{
		Use:   "nlsh [phrase]",
		Short: "nlsh - natural language to shell commands",
		Long:  "nlsh resolves natural-language phrases into shell commands through typo correction, a direct index, fuzzy matching, a translation cache and an optional AI collaborator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			resolveCmd.SetArgs(args)
			return resolveCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(resolveCmd)
	root.AddCommand(newSuggestCommand(container))
	root.AddCommand(newCustomCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newLearnedCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
