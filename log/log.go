package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

var errorOccured = false

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(prefixFormatter{})
	return l
}

// prefixFormatter renders entries with an optional colored prefix and the
// current indentation, without timestamps. Messages carry their own newlines.
type prefixFormatter struct{}

func (prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	prefix := ""
	switch {
	case entry.Level == logrus.DebugLevel:
		prefix = "\033[36mDebug: \033[0m"
	case entry.Level == logrus.WarnLevel:
		prefix = "\033[33mWarning: \033[0m"
	case entry.Level <= logrus.ErrorLevel:
		prefix = "\033[31mError: \033[0m"
	case entry.Data["success"] == true:
		prefix = "\033[32mSuccess: \033[0m"
	}
	return []byte(strings.Repeat("  ", IndentationLevel) + prefix + entry.Message), nil
}

// ErrorOccured reports whether any errors have occured.
func ErrorOccured() bool {
	return errorOccured
}

// Log prints an indented and formatted message to os.Stderr.
func Log(format string, a ...interface{}) {
	logger.Infof(format, a...)
}

// Debug prints an indented and formatted debug message to os.Stderr if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		logger.Debugf(format, a...)
	}
}

// Success prints an indented and formatted success message to os.Stderr.
func Success(format string, a ...interface{}) {
	logger.WithField("success", true).Infof(format, a...)
}

// Warning prints an indented and formatted warning to os.Stderr.
func Warning(format string, a ...interface{}) {
	logger.Warnf(format, a...)
}

// Error prints an indented and formatted error message to os.Stderr.
func Error(format string, a ...interface{}) {
	errorOccured = true
	logger.Errorf(format, a...)
}

// Fatal prints an indented and formatted error message to os.Stderr and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	fmt.Fprintf(os.Stderr, "\033[31mA fatal error occured. Exiting...\033[0m\n")
	os.Exit(1)
}
