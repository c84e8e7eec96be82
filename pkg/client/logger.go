package client

import (
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar/log"
	"github.com/rs/zerolog"
)

// pulsarLogger routes the client library's internal logging through zerolog
// so that probe and transport logs share one stream.
type pulsarLogger struct {
	logger *zerolog.Logger
}

var _ log.Logger = (*pulsarLogger)(nil)

func newPulsarLogger(logger *zerolog.Logger) log.Logger {
	if logger == nil {
		return log.DefaultNopLogger()
	}
	transportLogger := logger.With().Str("component", "pulsar").Logger()
	return &pulsarLogger{logger: &transportLogger}
}

func (l *pulsarLogger) SubLogger(fields log.Fields) log.Logger {
	sub := l.withFields(fields)
	return &pulsarLogger{logger: &sub}
}

func (l *pulsarLogger) WithFields(fields log.Fields) log.Entry {
	sub := l.withFields(fields)
	return &pulsarLogger{logger: &sub}
}

func (l *pulsarLogger) WithField(name string, value interface{}) log.Entry {
	sub := l.logger.With().Interface(name, value).Logger()
	return &pulsarLogger{logger: &sub}
}

func (l *pulsarLogger) WithError(err error) log.Entry {
	sub := l.logger.With().Err(err).Logger()
	return &pulsarLogger{logger: &sub}
}

func (l *pulsarLogger) Debug(args ...interface{}) { l.logger.Debug().Msg(fmt.Sprint(args...)) }
func (l *pulsarLogger) Info(args ...interface{})  { l.logger.Info().Msg(fmt.Sprint(args...)) }
func (l *pulsarLogger) Warn(args ...interface{})  { l.logger.Warn().Msg(fmt.Sprint(args...)) }
func (l *pulsarLogger) Error(args ...interface{}) { l.logger.Error().Msg(fmt.Sprint(args...)) }

func (l *pulsarLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *pulsarLogger) Infof(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}

func (l *pulsarLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *pulsarLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l *pulsarLogger) withFields(fields log.Fields) zerolog.Logger {
	builder := l.logger.With()
	for name, value := range fields {
		builder = builder.Interface(name, value)
	}
	return builder.Logger()
}
