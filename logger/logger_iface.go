package logger

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Leveled is the printf-style surface shared by every logger.
type Leveled interface {
	Debug(v ...interface{})
	Info(v ...interface{})
	Warning(v ...interface{})
	Error(v ...interface{})
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Printf(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// ILogger is a request-scoped logger. Entries carry the request trace and labels,
// End flushes the summarized request entry.
//
//go:generate mockery --name ILogger --output ./mocks
type ILogger interface {
	Leveled
	Trace() string
	SetLabel(key, value string)
	SetLabels(labels map[string]string)
	End(ctx *gin.Context)
}

// Provider resolves the logger of a request context. Services receive one at
// construction so tests can swap in a plain logger.
type Provider func(ctx context.Context) ILogger

var (
	_ ILogger = (*Logger)(nil)
	_ ILogger = (*DetailedLogger)(nil)
)
