package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/GoCodeAlone/monitor"
	"github.com/GoCodeAlone/monitor/adapter"
	"github.com/GoCodeAlone/monitor/modules/cemonitor"
	"github.com/GoCodeAlone/monitor/modules/metricsmonitor"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

// EnvPrefix is the prefix of environment variables overriding the config.
const EnvPrefix = "MONITOR"

var errGreetingEmpty = errors.New("nobody to greet")

// RunOptions holds the flags of the run command
type RunOptions struct {
	ConfigFile string
	Backend    string
	Level      string
	Format     string
	Names      []string
}

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build a greeter and greet each name",
		Long: `Build a greeter through the monitored constructor path and greet each name.
An empty name makes the call fail so the failure notifications are visible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML or TOML config file")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "Logging backend (slog, logrus, zap, zerolog, logr)")
	cmd.Flags().StringVar(&opts.Level, "level", "", "Minimum log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Record format (text, json)")
	cmd.Flags().StringSliceVar(&opts.Names, "name", []string{"world", ""}, "Names to greet")

	return cmd
}

// LoadConfig merges the config file, the environment and the flags, in that order.
func LoadConfig(opts *RunOptions) (*monitor.Config, error) {
	cfg := monitor.DefaultConfig()
	if opts.ConfigFile != "" {
		loaded, err := monitor.LoadConfig(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := monitor.ApplyEnv(cfg, EnvPrefix); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if opts.Level != "" {
		cfg.Level = opts.Level
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	return cfg, cfg.Validate()
}

// Run drives the greeter and prints a metrics summary to out. Log records go to logs.
func Run(opts *RunOptions, out, logs io.Writer) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	factory, err := adapter.NewFactory(cfg, logs)
	if err != nil {
		return err
	}
	events := monitor.NewNamedEventLogger(cfg.Name(), monitor.WithFactory(factory))

	reg := prometheus.NewRegistry()
	metrics, err := metricsmonitor.New(reg)
	if err != nil {
		return err
	}

	ce, err := cemonitor.NewMonitor("monitordemo",
		cemonitor.WithObservers(cemonitor.NewLoggingObserver(factory.GetLogger("monitordemo.events"))),
	)
	if err != nil {
		return err
	}

	mon := monitor.NewCompositeMonitor(events, metrics, ce)

	component, err := monitor.Instantiate(mon, NewGreeter, "Hello")
	if err != nil {
		return err
	}
	for _, name := range opts.Names {
		res, err := monitor.Invoke(mon, component, "Greet", name)
		if err != nil {
			fmt.Fprintf(out, "greet %q failed: %v\n", name, err)
			continue
		}
		fmt.Fprintln(out, res[0])
	}

	return writeMetrics(reg, out)
}

func writeMetrics(reg *prometheus.Registry, out io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %v", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}

// Greeter is the sample component built by the run command.
type Greeter struct {
	greeting string
}

// NewGreeter creates a Greeter using greeting.
func NewGreeter(greeting string) *Greeter {
	return &Greeter{greeting: greeting}
}

// Greet greets name, failing when it is empty.
func (g *Greeter) Greet(name string) (string, error) {
	if name == "" {
		return "", errGreetingEmpty
	}
	return g.greeting + ", " + name + "!", nil
}

func (g *Greeter) String() string {
	return "greeter(" + g.greeting + ")"
}
