package logger

import (
	"fmt"
	"io"
	"log"

	loggergo "github.com/Alonza0314/logger-go/v2"
	loggergoModel "github.com/Alonza0314/logger-go/v2/model"
	loggergoUtil "github.com/Alonza0314/logger-go/v2/util"
)

type CliLogger struct {
	*loggergo.Logger

	CfgLog   loggergoModel.LoggerInterface
	ShellLog loggergoModel.LoggerInterface
	ApiLog   loggergoModel.LoggerInterface
}

func NewCliLogger(level loggergoUtil.LogLevelString, filePath string, debugMode bool) CliLogger {
	logger := loggergo.NewLogger(filePath, debugMode)
	logger.SetLevel(level)

	return CliLogger{
		Logger: logger,

		CfgLog:   logger.WithTags(CLI_TAG, CONFIG_TAG),
		ShellLog: logger.WithTags(CLI_TAG, SHELL_TAG),
		ApiLog:   logger.WithTags(CLI_TAG, API_TAG),
	}
}

// ParseLevel checks level against the levels the logger accepts.
func ParseLevel(level string) (loggergoUtil.LogLevelString, error) {
	switch levelString := loggergoUtil.LogLevelString(level); levelString {
	case loggergoUtil.LEVEL_STRING_ERROR,
		loggergoUtil.LEVEL_STRING_WARN,
		loggergoUtil.LEVEL_STRING_INFO,
		loggergoUtil.LEVEL_STRING_DEBUG,
		loggergoUtil.LEVEL_STRING_TRACE,
		loggergoUtil.LEVEL_STRING_TEST:
		return levelString, nil
	}
	return "", fmt.Errorf("invalid log level %q: want one of error, warn, info, debug, trace, test", level)
}

// DetachConsole stops log lines from being echoed to the process console.
// Lines keep going to the log file. The returned func restores the console.
func DetachConsole() func() {
	previous := log.Writer()
	log.SetOutput(io.Discard)
	return func() {
		log.SetOutput(previous)
	}
}
