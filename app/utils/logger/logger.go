package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	instance *logrus.Logger
	once     sync.Once
)

// GetLogger returns the process-wide logrus logger.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		instance = logrus.New()
		instance.SetOutput(os.Stdout)
		instance.SetFormatter(&logrus.JSONFormatter{})
	})
	return instance
}
