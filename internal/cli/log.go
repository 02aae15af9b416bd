package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps read "HH:MM:SS.ms" since a
// run rarely spans more than a few seconds.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level picks the log level for the --verbose and --quiet flags.
// Verbose wins when both are set.
func Level(verbose, quiet bool) log.Level {
	switch {
	case verbose:
		return LogDebug
	case quiet:
		return LogWarn
	}
	return LogInfo
}

// progress times a multi-wall operation.
type progress struct {
	logger *log.Logger
	start  time.Time
	walls  int
	cached int
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// wall counts one finished wall.
func (p *progress) wall(name string, cached bool) {
	p.walls++
	if cached {
		p.cached++
	}
	p.logger.Debug("wall ready", "wall", name, "cached", cached)
}

// done logs msg with the elapsed time and the cache hit count, e.g.
// "Computed 3 walls (12ms, 2 cached)".
func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	if p.cached > 0 {
		p.logger.Infof("%s (%s, %d cached)", msg, elapsed, p.cached)
		return
	}
	p.logger.Infof("%s (%s)", msg, elapsed)
}
