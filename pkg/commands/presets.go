package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/presets"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addPresets(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "presets",
		Aliases:   []string{"preset"},
		Short:     base.Wrap80("Manage quick-select presets."),
		ValidArgs: []string{},
		Run: func(cmd *cobra.Command, args []string) {
			// a sub-command is required.
			_ = cmd.Help()
		},
	}

	addPresetsList(cmd)
	addPresetsAdd(cmd)
	addPresetsRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addPresetsList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "list",
		Aliases:   []string{"ls"},
		ValidArgs: []string{},
		Short:     "List stored presets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l := presets.List{
				Presets: s.presets,
				Format:  displayFormat(s.opts),
				JSON:    oo.JSON,
			}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addPresetsAdd(topLevel *cobra.Command) {
	po := &options.PresetOptions{}
	label := ""

	cmd := &cobra.Command{
		Use:   "add [label]",
		Short: "Store a preset.",
		Example: `
rangepick presets add "last 30 days" --window 30d
rangepick presets add "Q1 2024" --start 2024-01-01 --end 2024-03-31
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a label")
			}
			label = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := po.Record(label)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := presets.Add{Presets: s.presets, Record: record}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	options.AddPresetArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addPresetsRemove(topLevel *cobra.Command) {
	label := ""

	cmd := &cobra.Command{
		Use:     "rm [label]",
		Aliases: []string{"remove"},
		Short:   "Remove a stored preset.",
		Example: `
rangepick presets rm "last 30 days"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a label")
			}
			label = strings.Join(args, " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return presetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := presets.Remove{Presets: s.presets, Label: label}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
