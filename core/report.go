package core

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Version is stamped into crash reports
var Version = "dev"

// InitReporting enables remote crash reports; an empty dsn leaves them off
// The returned func flushes pending events and must run before exit
func InitReporting(dsn, session string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "dreadmaze@" + Version,
		AttachStacktrace: true,
	})
	if err != nil {
		return func() {}, fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("session", session)
	})
	return func() { sentry.Flush(2 * time.Second) }, nil
}
