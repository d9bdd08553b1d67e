package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the default log level.
const LevelEnv = "GINIT_LOG_LEVEL"

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	root     *logrus.Logger
	rootOnce sync.Once
)

// NewLogger returns the logger for a component. Loggers are cached per
// component and share one underlying logrus.Logger writing to stderr.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := base().WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetVerbose switches every component logger to debug level.
func SetVerbose(verbose bool) {
	if verbose {
		base().SetLevel(logrus.DebugLevel)
	}
}

// SetOutput redirects every component logger.
func SetOutput(w io.Writer) {
	base().SetOutput(w)
}

func base() *logrus.Logger {
	rootOnce.Do(func() {
		root = logrus.New()
		root.SetOutput(os.Stderr)

		// Interactive prompts own the terminal; stay quiet unless asked.
		level, err := logrus.ParseLevel(os.Getenv(LevelEnv))
		if err != nil {
			level = logrus.WarnLevel
		}
		root.SetLevel(level)

		root.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !isatty.IsTerminal(os.Stderr.Fd()),
			DisableTimestamp: true,
		})
	})
	return root
}
