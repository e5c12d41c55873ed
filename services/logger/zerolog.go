package logsvc

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/user"
)

type ZerologLogger struct {
	log zerolog.Logger
}

var _ core.Logger = (*ZerologLogger)(nil)

func NewZerologLogger(conf *core.Config) *ZerologLogger {
	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("app", conf.AppName).
		Logger()
	return &ZerologLogger{log: log}
}

// expected fmt: msg | error, map[string]interface{}, user.User
func (l ZerologLogger) prepare(evt *zerolog.Event, args []interface{}) *zerolog.Event {
	var usrSet bool
	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			evt = evt.Err(arg)
		case map[string]interface{}:
			evt = evt.Fields(arg)
		case user.User:
			if !usrSet { // only log one User
				evt = evt.Str("user", arg.Email)
				usrSet = true
			}
		default:
			evt = evt.Interface("data", arg)
		}
	}
	return evt
}

func (l ZerologLogger) Debug(msg string, args ...interface{}) {
	l.prepare(l.log.Debug(), args).Msg(msg)
}

func (l ZerologLogger) Info(msg string, args ...interface{}) {
	l.prepare(l.log.Info(), args).Msg(msg)
}

func (l ZerologLogger) Warn(msg string, args ...interface{}) {
	l.prepare(l.log.Warn(), args).Msg(msg)
}

func (l ZerologLogger) Error(msg string, args ...interface{}) {
	l.prepare(l.log.Error(), args).Msg(msg)
}

func (l ZerologLogger) Fatal(msg string, args ...interface{}) {
	l.prepare(l.log.Fatal(), args).Msg(msg)
}
