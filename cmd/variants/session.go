package main

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variants/internal/config"
	"github.com/alexisbeaulieu97/variants/internal/logger"
	"github.com/alexisbeaulieu97/variants/internal/metrics"
	"github.com/alexisbeaulieu97/variants/internal/variant"
)

// session carries what every command needs: settings, a logger and the
// metrics attached to the registries it builds.
type session struct {
	settings config.Settings
	base     *logger.Logger
	log      *logger.Logger
	metrics  *metrics.Metrics
	gatherer *prometheus.Registry
}

func (f *rootFlags) open(cmd *cobra.Command) (*session, error) {
	if f.sess != nil {
		return f.sess, nil
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check the VARIANTS_* environment variables and your .env file.")
	}

	level := settings.LogLevel
	if strings.TrimSpace(f.logLevel) != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.HumanReadableLogs(),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of: trace, debug, info, warn, error.")
	}

	base := log.WithFields(map[string]any{"command": cmd.Name()})
	gatherer := prometheus.NewRegistry()
	f.sess = &session{
		settings: settings,
		base:     base,
		log:      base.WithComponent("cli"),
		metrics:  metrics.New(gatherer),
		gatherer: gatherer,
	}
	return f.sess, nil
}

// definitionsPath returns the definition file to use. The flag wins over the
// environment.
func (f *rootFlags) definitionsPath() string {
	if strings.TrimSpace(f.definitions) != "" {
		return f.definitions
	}
	if f.sess != nil {
		return f.sess.settings.DefinitionsPath
	}
	return ""
}

// registry builds the frozen registry the command operates on: the definition
// file when one is configured, the built-in button axes otherwise.
func (f *rootFlags) registry(cmd *cobra.Command) (*variant.Registry, error) {
	sess, err := f.open(cmd)
	if err != nil {
		return nil, err
	}

	opts := []variant.Option{
		variant.WithLogger(sess.base),
		variant.WithObserver(sess.metrics),
	}

	path := f.definitionsPath()
	if path == "" {
		sess.log.Debug("using built-in button axes")
		reg, err := variant.NewButtonRegistry(opts...)
		if err != nil {
			return nil, newCommandError(cmd.Name(), "defining button axes", err, "This is a bug; please report it.")
		}
		return reg, nil
	}

	sess.log.Debug("loading definitions", "path", path)
	defs, err := config.LoadDefinitions(path)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading definitions", err, "Run 'variants validate "+path+"' for details.")
	}
	reg, err := config.NewRegistry(defs, opts...)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building registry", err, "Fix the axis definitions shown above and try again.")
	}
	return reg, nil
}

func (s *session) writeMetrics(w io.Writer) error {
	families, err := s.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
