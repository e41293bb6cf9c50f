// Package diag writes the launcher's human-readable stderr lines.
package diag

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// TagFormatter renders "[tag] message" with no level or timestamp
type TagFormatter struct {
	Tag string
}

// Format implements logrus.Formatter
func (f *TagFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("[%s] %s\n", f.Tag, entry.Message)), nil
}

// New returns a logger writing tagged lines to w. Debug lines appear only when verbose is set.
func New(w io.Writer, tag string, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&TagFormatter{Tag: tag})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
