package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/dateformat"
	"tableflip.dev/rangepick/pkg/rangepicker"
	"tableflip.dev/rangepick/pkg/store"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rangepick",
		Short: base.Wrap80("Pick and resolve date ranges on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPick(topLevel)
	addResolve(topLevel)
	addPresets(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup is what every picker command needs before running.
type setup struct {
	cfg     store.Config
	opts    rangepicker.Options
	logger  zerolog.Logger
	closer  io.Closer
	presets store.PresetStore
}

func (s *setup) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

// load binds the command's flags over the config file, then builds picker
// options, the logger and the preset store.
func load(cmd *cobra.Command, po *options.PickerOptions) (*setup, error) {
	if po != nil {
		if err := po.Bind(cmd.Flags()); err != nil {
			return nil, err
		}
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	if po != nil {
		po.Apply(&opts)
	}
	logger, closer, err := options.Logger(cfg.LogPath())
	if err != nil {
		return nil, err
	}
	opts.Logger = &logger

	s := &setup{cfg: cfg, opts: opts, logger: logger, closer: closer}
	if s.presets, err = store.Load(cfg); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func displayFormat(opts rangepicker.Options) string {
	if opts.Format != "" {
		return opts.Format
	}
	return dateformat.Default(opts.Picker, opts.ShowTime, opts.Use12Hours)
}
