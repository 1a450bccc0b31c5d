package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"github.com/xferdev/xfer-cli/pkg/cmd/version"
	"github.com/xferdev/xfer-cli/pkg/config"
	"github.com/xferdev/xfer-cli/pkg/featureflag"
)

type UserError interface {
	// Error returns a user-facing string explaining the error
	Error() string

	// Directive returns a user-facing string explaining how to overcome the error
	Directive() string
}

type ErrorReporter interface {
	Setup() func()
	Flush()
	ReportMessage(string) string
	ReportError(error) string
	AddTag(key string, value string)
}

func GetDefaultErrorReporter() ErrorReporter {
	if config.GlobalConfig.GetSentryDSN() == "" || featureflag.IsDev() {
		return NoopErrorReporter{}
	}
	return SentryErrorReporter{}
}

type SentryErrorReporter struct{}

var _ ErrorReporter = SentryErrorReporter{}

func (s SentryErrorReporter) Setup() func() {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:     config.GlobalConfig.GetSentryDSN(),
		Release: version.Version,
	})
	if err != nil {
		fmt.Println(err)
	}
	return func() {
		err := recover()
		if err != nil {
			sentry.CurrentHub().Recover(err)
			sentry.Flush(time.Second * 5)
			panic(err)
		}
		sentry.Flush(2 * time.Second)
	}
}

func (s SentryErrorReporter) Flush() {
	sentry.Flush(time.Second * 2)
}

func (s SentryErrorReporter) ReportMessage(msg string) string {
	event := sentry.CaptureMessage(msg)
	if event != nil {
		return string(*event)
	}
	return ""
}

func (s SentryErrorReporter) ReportError(e error) string {
	event := sentry.CaptureException(e)
	if event != nil {
		return string(*event)
	}
	return ""
}

func (s SentryErrorReporter) AddTag(key string, value string) {
	scope := sentry.CurrentHub().Scope()
	scope.SetTag(key, value)
}

// NoopErrorReporter is used when no DSN is configured.
type NoopErrorReporter struct{}

var _ ErrorReporter = NoopErrorReporter{}

func (NoopErrorReporter) Setup() func() {
	return func() {}
}

func (NoopErrorReporter) Flush() {}

func (NoopErrorReporter) ReportMessage(_ string) string {
	return ""
}

func (NoopErrorReporter) ReportError(_ error) string {
	return ""
}

func (NoopErrorReporter) AddTag(_ string, _ string) {}

type ValidationError struct {
	Message string
}

func NewValidationError(message string) ValidationError {
	return ValidationError{Message: message}
}

var _ error = ValidationError{}

func (v ValidationError) Error() string {
	return v.Message
}

func (v ValidationError) Directive() string {
	return "run `xfer --help` for usage"
}

// IsUserError reports whether err (or anything it wraps) is meant to be shown
// to the user as-is rather than reported as a crash.
func IsUserError(err error) bool {
	var ue UserError
	return stderrors.As(err, &ue)
}

func WrapAndTrace(err error, messages ...string) error {
	message := ""
	for _, m := range messages {
		message += fmt.Sprintf(" %s", m)
	}
	return errors.Wrap(err, MakeErrorMessage(message))
}

func MakeErrorMessage(message string) string {
	_, fn, line, _ := runtime.Caller(2)
	return fmt.Sprintf("[error] %s:%d %s\n\t", fn, line, message)
}

func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
