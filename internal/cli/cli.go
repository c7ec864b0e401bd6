// Package cli implements the gossip command-line interface.
//
// # Commands
//
//   - compare: fingerprint two graph files and check the verdict against the exact oracle
//   - test: the same for a generated pair (regular, cfi, srg, circulant, ...)
//   - generate: write a generated pair to files
//   - fingerprint: print per-vertex fingerprints, classes or one round trace
//   - stats: print structural statistics of a graph file
//   - convert: rewrite a graph file in another format
//   - bench: run benchmark families and print per-family tables
//
// # Configuration
//
// --config names a gossip.toml file; --sentinel, --counter and --workers
// override its [fingerprint] section. --verbose (-v) forces debug logging.
// The logger is carried through context.Context.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossip/config"
	"github.com/katalvlaran/gossip/gossip"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrDisagree is returned when the gossip verdict differs from the oracle's.
var ErrDisagree = errors.New("gossip and oracle disagree")

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	sentinel   string
	counter    string
	workers    int
	verbose    bool

	cfg config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), cfg: config.Default()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "gossip",
		Short:             "Gossip fingerprints for graph isomorphism testing",
		Long:              `gossip compares graphs by simulating gossip from every vertex and comparing the sorted multiset of per-vertex event timelines. Equal fingerprints are necessary, not sufficient, for isomorphism; an exact oracle is available for checking.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "path to a gossip.toml file")
	pf.StringVar(&c.sentinel, "sentinel", "frontier", "frontier-shape sentinel: frontier or off")
	pf.StringVar(&c.counter, "counter", "hear", "per-vertex counter: hear or degree")
	pf.IntVar(&c.workers, "workers", 1, "concurrent per-vertex runs (0 = GOMAXPROCS)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.compareCommand())
	root.AddCommand(c.testCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.fingerprintCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.benchCommand())

	return root
}

// setup loads the configuration, applies flag overrides and attaches the logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("sentinel") {
		cfg.Fingerprint.Sentinel = c.sentinel
	}
	if flags.Changed("counter") {
		cfg.Fingerprint.Counter = c.counter
	}
	if flags.Changed("workers") {
		cfg.Fingerprint.Workers = c.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.cfg = cfg

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	c.Logger.Debug("configured",
		"sentinel", cfg.Fingerprint.Sentinel,
		"counter", cfg.Fingerprint.Counter,
		"workers", cfg.Fingerprint.Workers)

	return nil
}

// options returns the gossip options selected by config and flags.
func (c *CLI) options() ([]gossip.Option, error) {
	return c.cfg.GossipOptions()
}
