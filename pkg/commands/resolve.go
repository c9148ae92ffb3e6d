package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/resolve"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addResolve(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	preset := ""
	calendar := false
	var start, end string

	cmd := &cobra.Command{
		Use:   "resolve [start] [end]",
		Short: "Validate and normalize a range without the picker",
		Long: base.Wrap80("Parse start and end with the picker's display format and " +
			"apply the same ordering and emptiness rules the picker commits with. " +
			"Use --preset to resolve a stored preset instead."),
		Example: `
rangepick resolve 2024-03-01 2024-03-05
rangepick resolve --picker month 2024-01 2024-06
rangepick resolve --preset "last 30 days" --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return errors.New("at most a start and an end")
			}
			if len(args) == 0 && preset == "" {
				return errors.New("requires a start, or --preset")
			}
			if len(args) > 0 {
				start = args[0]
			}
			if len(args) > 1 {
				end = args[1]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd, po)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := resolve.Resolve{
				Options:  s.opts,
				Start:    start,
				End:      end,
				Preset:   preset,
				Presets:  s.presets,
				JSON:     oo.JSON,
				Calendar: calendar,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPickerArgs(cmd, po)
	cmd.Flags().StringVar(&preset, "preset", "", "Resolve the stored preset with this label.")
	_ = cmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return presetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Print the months the range covers.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
