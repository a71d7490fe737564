// Package commands provides CLI commands for projectassist.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/diogo/projectassist/internal/config"
	"github.com/diogo/projectassist/internal/feed"
	"github.com/diogo/projectassist/internal/history"
	"github.com/diogo/projectassist/internal/logging"
	"github.com/diogo/projectassist/internal/models"
	"github.com/diogo/projectassist/internal/render"
	"github.com/diogo/projectassist/internal/session"
	"github.com/diogo/projectassist/internal/tui"
	"github.com/diogo/projectassist/internal/wizard"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// ErrNotTerminal is returned when the wizard is started without a TTY
var ErrNotTerminal = errors.New("projectassist needs an interactive terminal; try 'projectassist catalog' for scripted use")

// wizardFlags holds the root command flags
type wizardFlags struct {
	topics     []string
	sources    []string
	replyDelay time.Duration
	theme      string
	transcript string
	debug      bool
}

// NewRootCmd creates the root command wired to deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	flags := &wizardFlags{}

	cmd := &cobra.Command{
		Use:   "projectassist",
		Short: "Terminal assistant for project documentation",
		Long: `projectassist walks you through choosing which project documents and
information sources are relevant, then opens an assistant chat scoped to them.

Examples:
  projectassist                                   Start the wizard
  projectassist --topics training --sources all   Skip straight to chat
  projectassist --transcript chat.md              Save the conversation on exit
  projectassist catalog --json                    List topics and sources
  projectassist config set theme nord             Change the color theme`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for version flag
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "projectassist %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runWizard(cmd, deps, flags)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug-level logs")
	cmd.Flags().StringSliceVar(&flags.topics, "topics", nil,
		"Pre-select topics and skip ahead ("+strings.Join(models.TopicIDs(), ", ")+")")
	cmd.Flags().StringSliceVar(&flags.sources, "sources", nil,
		"Pre-select sources and skip ahead ("+strings.Join(models.SourceIDs(), ", ")+", all)")
	cmd.Flags().DurationVar(&flags.replyDelay, "reply-delay", 0, "Delay before the assistant replies (default from config)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Color theme ("+strings.Join(render.TUIThemeNames(), ", ")+")")
	cmd.Flags().StringVarP(&flags.transcript, "transcript", "t", "", "Write the conversation to this file on exit (.md or .json)")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	cmd.AddCommand(NewCatalogCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runWizard(cmd *cobra.Command, deps *Dependencies, flags *wizardFlags) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := logging.Setup(cfg.LogLevel, flags.debug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	theme := cfg.TUITheme
	if flags.theme != "" {
		theme = flags.theme
	}
	if !tui.ApplyTheme(theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(render.TUIThemeNames(), ", "))
	}

	delay := cfg.ReplyDelay()
	if cmd.Flags().Changed("reply-delay") {
		delay = flags.replyDelay
	}

	sess, err := newSession(logger, delay, cfg.ReplyText, flags.topics, flags.sources)
	if err != nil {
		return err
	}

	if deps.IsTerminal != nil && !deps.IsTerminal() {
		return ErrNotTerminal
	}

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	opts := tui.Options{
		Render:          render.OptionsFromConfig(cfg),
		CopyToClipboard: cfg.CopyToClipboard,
		ExportDir:       exportDir,
	}

	logger.Info().Str("step", sess.Step().String()).Dur("reply_delay", delay).Msg("starting wizard")
	runErr := deps.TUI.RunWizard(sess, opts)

	if flags.transcript != "" && sess.Step() == wizard.StepChat {
		if err := writeTranscript(flags.transcript, sess); err != nil {
			return errors.Join(runErr, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Transcript saved to %s\n", flags.transcript)
	}

	if runErr != nil {
		return fmt.Errorf("failed to run wizard: %w", runErr)
	}
	return nil
}

// newSession builds a session and applies any pre-selections from flags
func newSession(logger zerolog.Logger, delay time.Duration, reply string, topics, sources []string) (*session.Session, error) {
	if len(sources) > 0 && len(topics) == 0 {
		return nil, errors.New("--sources requires --topics")
	}

	f := feed.New(feed.WithDelay(delay), feed.WithReply(reply))
	sess := session.New(session.WithFeed(f), session.WithLogger(logger))

	if len(topics) > 0 {
		for _, id := range topics {
			if _, ok := models.TopicByID(id); !ok {
				return nil, fmt.Errorf("unknown topic %q (available: %s)", id, strings.Join(models.TopicIDs(), ", "))
			}
			if !sess.State().IsSelected(id, wizard.StepTopics) {
				sess.Toggle(id)
			}
		}
		sess.Continue()
	}

	if len(sources) > 0 {
		for _, id := range sources {
			if _, ok := models.SourceByID(id); !ok {
				return nil, fmt.Errorf("unknown source %q (available: %s, all)", id, strings.Join(models.SourceIDs(), ", "))
			}
			if !sess.State().IsSelected(id, wizard.StepSources) {
				sess.Toggle(id)
			}
		}
		sess.Continue()
	}

	return sess, nil
}

func writeTranscript(path string, sess *session.Session) error {
	st := sess.State()
	t := history.NewTranscript(st.SelectedTopics(), st.SelectedSources(), sess.Messages(), time.Now())

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve transcript path: %w", err)
	}
	if err := history.WriteTranscript(abs, t); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
