package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// NewLogger builds the process logger. LOG_LEVEL selects the level (info by default).
func NewLogger(appName string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	levelName := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		logger.Warnf("invalid LOG_LEVEL %q, defaulting to info", levelName)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.AddHook(&appNameHook{appName: appName})
	return logger
}
