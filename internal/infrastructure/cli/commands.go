package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/nlsh-go/internal/app"
	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/version"
)

func newResolveCommand(container *app.Container) *cobra.Command {
	var (
		offline bool
		debug   bool
		asJSON  bool
		timeout float64
	)

	cmd := &cobra.Command{
		Use:   "resolve [phrase]",
		Short: "Resolve a natural-language phrase into a shell command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.ResolveRequest{
				Context:        cmd.Context(),
				Phrase:         strings.Join(args, " "),
				Platform:       container.Platform,
				TimeoutSeconds: timeout,
				SkipAI:         offline,
				Debug:          debug,
			}
			res, err := container.Resolver.Resolve(req)
			if err != nil {
				return err
			}
			if asJSON {
				return renderResolutionJSON(cmd.OutOrStdout(), res)
			}
			renderResolution(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the AI collaborator tier")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log each tier decision")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the resolution as JSON")
	cmd.Flags().Float64Var(&timeout, "timeout", 0, "Collaborator timeout in seconds (default from config)")
	return cmd
}

func newSuggestCommand(container *app.Container) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest [partial phrase]",
		Short: "List completion candidates for a partial phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := container.Resolver.Suggest(strings.Join(args, " "), limit)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max suggestions (default from config)")
	return cmd
}

func newCustomCommand(container *app.Container) *cobra.Command {
	customCmd := &cobra.Command{
		Use:   "custom",
		Short: "Manage custom phrase mappings",
	}

	var (
		explanation string
		confidence  float64
		force       bool
	)
	addCmd := &cobra.Command{
		Use:   "add <phrase> <command>",
		Short: "Register a custom phrase mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Resolver.AddCustomCommand(args[0], args[1], explanation, confidence, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q -> %q\n", args[0], args[1])
			return nil
		},
	}
	addCmd.Flags().StringVar(&explanation, "explanation", "", "Human explanation shown with the resolution")
	addCmd.Flags().Float64Var(&confidence, "confidence", 1.0, "Confidence reported for this mapping (0..1)")
	addCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing custom mapping")

	removeCmd := &cobra.Command{
		Use:   "remove <phrase>",
		Short: "Delete a custom phrase mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !container.Resolver.RemoveCustomCommand(args[0]) {
				return fmt.Errorf("%w: %q", domain.ErrUnknownCustomCommand, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List custom phrase mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := container.Index.CustomEntries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No custom mappings.")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", entry.Phrase, entry.Command)
			}
			return nil
		},
	}

	customCmd.AddCommand(addCmd, removeCmd, listCmd)
	return customCmd
}

func newCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the translation cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := container.Resolver.CacheStats()
			fmt.Fprintf(cmd.OutOrStdout(), "Entries:       %d\n", stats.TotalEntries)
			fmt.Fprintf(cmd.OutOrStdout(), "Total uses:    %d\n", stats.TotalUses)
			fmt.Fprintf(cmd.OutOrStdout(), "Average uses:  %.2f\n", stats.AverageUses)
			fmt.Fprintf(cmd.OutOrStdout(), "Hit potential: %.0f%%\n", stats.HitPotential*100)
			return nil
		},
	}

	var limit int
	popularCmd := &cobra.Command{
		Use:   "popular",
		Short: "List the most re-used cached translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := container.Resolver.PopularCommands(limit)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cache is empty.")
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-30s %s\n", entry.UseCount, entry.Phrase, entry.Command)
			}
			return nil
		},
	}
	popularCmd.Flags().IntVar(&limit, "limit", domain.DefaultPopularLimit, "Max entries to show")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every cached translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Resolver.ClearCache(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	}

	cacheCmd.AddCommand(statsCmd, popularCmd, clearCmd)
	return cacheCmd
}

func newLearnedCommand(container *app.Container) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "learned [phrase]",
		Short: "Show commands learned for similar phrases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := container.Resolver.LearnedSuggestions(strings.Join(args, " "), limit)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing learned for this phrase yet.")
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintf(cmd.OutOrStdout(), "%4dx  %.2f  %s\n", s.UseCount, s.Confidence, s.Command)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultLearnedLimit, "Max suggestions to show")
	return cmd
}

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect nlsh configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", container.ConfigLoader.Path(), raw)
			return nil
		},
	}
	return configCmd
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show nlsh version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nlsh version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
			}
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			return nil
		},
	}
}
