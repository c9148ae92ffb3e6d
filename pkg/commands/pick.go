package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/pick"
	"tableflip.dev/rangepick/pkg/tui/app"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	showEvents := false
	calendar := false

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a range in the interactive picker",
		Long: base.Wrap80("Open the two-endpoint range picker. The chosen range is printed " +
			"once both endpoints are committed and the picker closes. Stored presets " +
			"are offered as alt+1..9 shortcuts and reload when the preset store changes."),
		Example: `
rangepick pick
rangepick pick --picker month
rangepick pick --show-time --json
`,
		ValidArgs: []string{},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(os.Stdin.Fd()) {
				return errors.New("pick needs a terminal, use resolve instead")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd, po)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			p := pick.Pick{
				Options: teaui.Options{
					Picker:     s.opts,
					Presets:    s.presets,
					Logger:     s.logger,
					ShowEvents: showEvents,
				},
				JSON:     oo.JSON,
				Calendar: calendar,
			}
			err = p.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPickerArgs(cmd, po)
	cmd.Flags().BoolVar(&showEvents, "events", false, "Show the picker event log.")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Print the months the range covers.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func interactive(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
