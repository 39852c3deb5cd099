// Package adapter builds a monitor.LoggerFactory for the backend named in a
// monitor.Config.
package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/GoCodeAlone/monitor"
	"github.com/GoCodeAlone/monitor/adapter/logradapter"
	"github.com/GoCodeAlone/monitor/adapter/logrusadapter"
	"github.com/GoCodeAlone/monitor/adapter/zapadapter"
	"github.com/GoCodeAlone/monitor/adapter/zerologadapter"
	"github.com/go-logr/logr/funcr"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFactory returns a registry whose loggers write to w (stderr when nil)
// through the configured backend, level and format.
func NewFactory(cfg *monitor.Config, w io.Writer) (monitor.LoggerFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	level, err := cfg.ParsedLevel()
	if err != nil {
		return nil, err
	}
	json := strings.EqualFold(cfg.Format, monitor.FormatJSON)

	switch strings.ToLower(cfg.Backend) {
	case monitor.BackendSlog:
		return newSlogFactory(w, level, json), nil
	case monitor.BackendLogrus:
		return newLogrusFactory(w, level, json), nil
	case monitor.BackendZap:
		return newZapFactory(w, level, json), nil
	case monitor.BackendZerolog:
		return newZerologFactory(w, level, json), nil
	case monitor.BackendLogr:
		return newLogrFactory(w, level, json), nil
	default:
		return nil, fmt.Errorf("%w: %q", monitor.ErrUnknownBackend, cfg.Backend)
	}
}

func newSlogFactory(w io.Writer, level monitor.Level, json bool) monitor.LoggerFactory {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}
	if json {
		return monitor.NewSlogFactory(slog.NewJSONHandler(w, opts))
	}
	return monitor.NewSlogFactory(slog.NewTextHandler(w, opts))
}

func newLogrusFactory(w io.Writer, level monitor.Level, json bool) monitor.LoggerFactory {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrusadapter.ToLevel(level))
	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logrusadapter.NewFactory(log)
}

func newZapFactory(w io.Writer, level monitor.Level, json bool) monitor.LoggerFactory {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(zapadapter.ToLevel(level)))
	return zapadapter.NewFactory(zap.New(core))
}

func newZerologFactory(w io.Writer, level monitor.Level, json bool) monitor.LoggerFactory {
	out := w
	if !json {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	l := zerolog.New(out).Level(zerologadapter.ToLevel(level)).With().Timestamp().Logger()
	return zerologadapter.NewFactory(l)
}

// newLogrFactory uses funcr; logr has no warn/error threshold, so only the
// debug cut-off is configurable.
func newLogrFactory(w io.Writer, level monitor.Level, json bool) monitor.LoggerFactory {
	opts := funcr.Options{LogTimestamp: true}
	if level <= monitor.LevelDebug {
		opts.Verbosity = logradapter.DebugVerbosity
	}
	if json {
		return logradapter.NewFactory(funcr.NewJSON(func(obj string) {
			_, _ = fmt.Fprintln(w, obj)
		}, opts))
	}
	return logradapter.NewFactory(funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, opts))
}
