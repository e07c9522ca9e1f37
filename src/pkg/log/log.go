package log

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log wraps logrus with the service-wide context/scope/meta convention.
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	logger = Log{
		AppName:  v.GetString("app.name"),
		LogLevel: mapOfLogLevel[v.GetString("log.level")],
		Logger:   newLogrusLogger(v),
	}
}

// GetLogger return singleton
func GetLogger() Log {
	return logger
}

func newLogrusLogger(v *viper.Viper) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

func (l Log) fields(context, scope, meta string, skip int) logrus.Fields {
	_, file, line, _ := runtime.Caller(skip)
	return logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file":    file,
		"line":    line,
	}
}

func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	if l.LogLevel <= 1 {
		l.Logger.WithFields(l.fields(context, scope, meta, 2)).Info(message)
	}
}

func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	if l.LogLevel <= 2 {
		l.Logger.WithFields(l.fields(context, scope, meta, 2)).Error(message)
	}
}

// Slow flags calls that went over their latency budget.
func (l Log) Slow(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	if l.LogLevel <= 1 {
		l.Logger.WithFields(l.fields(context, scope, meta, 2)).Info(fmt.Sprintf("[SLOW] %s", message))
	}
}
