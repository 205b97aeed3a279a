package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/clipboard"
	"github.com/iw2rmb/biomark/color"
	"github.com/iw2rmb/biomark/internal/app"
	"github.com/iw2rmb/biomark/internal/config"
	"github.com/iw2rmb/biomark/internal/logging"
)

type rootOptions struct {
	configPath string
	short      string
	long       string
	color      string
	verbosity  int

	cfg    *config.Config
	logOut io.Closer
}

// Close releases the log file.
func (o *rootOptions) Close() error {
	if o.logOut == nil {
		return nil
	}
	err := o.logOut.Close()
	o.logOut = nil
	return err
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "biomark",
		Short: "Compose a styled bio in the terminal",
		Long: `biomark edits a short bio (50 characters) and a long bio (250 characters)
with inline style markers and shows a live preview:

  [b]        bold from here on
  [i]        italic from here on
  [RRGGBB]   hex color from here on

The short bio, markers included, can be copied to the clipboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "raise log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	cmd.Flags().StringVar(&opts.short, "short", "", "initial short bio, truncated to 50 characters")
	cmd.Flags().StringVar(&opts.long, "long", "", "initial long bio, truncated to 250 characters")
	cmd.Flags().StringVar(&opts.color, "color", "", "initial color, RRGGBB (default from config)")

	cmd.AddCommand(newRenderCmd(), newStripCmd(), newCheckCmd(), newVersionCmd())
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level, err := logging.ParseLevel(cfg.Log.Level, o.verbosity)
	if err != nil {
		return err
	}
	closer, err := logging.Setup(level, cfg.Log.File)
	if err != nil {
		return err
	}
	o.logOut = closer
	log.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg := opts.cfg
	initial := cfg.Color.Default
	if opts.color != "" {
		hex, err := color.Normalize(opts.color)
		if err != nil {
			return fmt.Errorf("invalid --color %q: %w", opts.color, err)
		}
		initial = hex
	}

	clip, err := clipboard.New(cfg.Clipboard.Backend, terminalWriter())
	if err != nil {
		return err
	}

	st := bio.New(bio.Options{
		Short:  opts.short,
		Long:   opts.long,
		Color:  initial,
		Target: cfg.MarkerTarget(),
	})
	model := app.New(app.Options{
		State:     st,
		Swatches:  cfg.Color.Swatches,
		Clipboard: clip,
		NotifyTTL: cfg.Notify.TTL,
		NotifyMax: cfg.Notify.Max,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	log.Info().Str("clipboard", cfg.Clipboard.Backend).Str("target", cfg.Markers.Target).Msg("starting ui")
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// terminalWriter picks the stream for OSC 52 sequences. The UI draws on
// stdout, so stderr is used when it reaches the terminal too.
func terminalWriter() io.Writer {
	if isTerminal(os.Stderr) {
		return os.Stderr
	}
	return os.Stdout
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
