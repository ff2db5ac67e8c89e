package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

var (
	// Default logger instance
	Default *log.Logger
)

func init() {
	Default = log.New(os.Stderr)
	Default.SetPrefix("isolux")
	Default.SetLevel(log.InfoLevel)
}
