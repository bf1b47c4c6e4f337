package logsvc

import (
	"fmt"
	"io"
	"os"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"github.com/rs/zerolog"

	"github.com/MohdShoeb1/institute-management-backend/core"
)

// RollbarLogger reports to Rollbar and mirrors every entry on a zerolog console sink.
type RollbarLogger struct {
	zl       zerolog.Logger
	exitFunc func(int)
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(w io.Writer, component string, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)

	if conf.Debug {
		w = zerolog.ConsoleWriter{Out: w}
	}
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &RollbarLogger{zl: zl, exitFunc: os.Exit}
}

// Enable toggles reporting to Rollbar. The console sink is always on.
func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled && rollbar.Token() != "")
}

// expected args: error, map[string]interface{}, core.Identity
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var idSet bool
	newArgs := make([]interface{}, 0, len(args)+1)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		// set logged in User
		if id, ok := arg.(core.Identity); ok {
			if !idSet { // only set one User
				rollbar.SetPerson(fmt.Sprint(id.ID), id.Username, "")
				idSet = true
			}
		} else {
			newArgs = append(newArgs, arg)
		}
	}
	if !idSet {
		rollbar.ClearPerson()
	}
	return newArgs
}

func (l RollbarLogger) print(evt *zerolog.Event, msg string, args []interface{}) {
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			evt = evt.Str("error", fmt.Sprintf("%+v", v))
		case core.Identity:
			evt = evt.Int("user_id", v.ID).Str("username", v.Username)
		case map[string]interface{}:
			evt = evt.Fields(v)
		default:
			evt = evt.Interface("extra", v)
		}
	}
	evt.Msg(msg)
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(l.zl.Debug(), msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(l.zl.Info(), msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(l.zl.Warn(), msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(l.zl.Error(), msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(l.zl.WithLevel(zerolog.FatalLevel), msg, args)
	rollbar.Wait()
	l.exitFunc(1)
}
