package logger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/doitintl/hello/agent-data-api/common"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// CtxDetailedLoggerKey is how detailed request loggers are stored/retrieved.
	CtxDetailedLoggerKey = "app-detailed-logger"

	// parentLogID is the log receiving one summary entry per request.
	parentLogID = "agent_data_requests"

	// childLogID is the log receiving every entry written during a request.
	childLogID = "agent_data_entries"

	serviceField = "service"
	projectField = "project_id"
	versionField = "version"

	genericNodeType = "generic_node"

	gcpLogging = "GCP_LOGGING"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

// Logging holds the cloud logging client shared by every request logger.
type Logging struct {
	client *logging.Client
}

// NewLogging initializes the parent and child cloud logging loggers for the named
// service. Cloud logging stays disabled when no project is configured or when
// GCP_LOGGING is false; entries are still echoed to stdout outside release mode.
func NewLogging(ctx context.Context, service string) (*Logging, error) {
	cloudLogging = common.GetEnvBool(gcpLogging, common.Production)

	if common.ProjectID == "" {
		cloudLogging = false
	}

	if !cloudLogging {
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	parentLogger = client.Logger(parentLogID)
	childLogger = client.Logger(childLogID)

	resource = &monitoredres.MonitoredResource{
		Type: genericNodeType,
		Labels: map[string]string{
			serviceField: service,
			projectField: common.ProjectID,
			versionField: common.ServiceVersion,
		},
	}

	return &Logging{client}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// Close flushes buffered entries.
func (l *Logging) Close() error {
	if l.client == nil {
		return nil
	}

	return l.client.Close()
}

// NewLogger sets gin.Context with a new logger, with the related google trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()
	d := newDetailedLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
				d.trace = l.trace
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)
	ctx.Set(CtxDetailedLoggerKey, d)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	if common.ProjectID == "" {
		return fmt.Sprintf("%d%s", started.UnixNano(), id)
	}

	return fmt.Sprintf("projects/%s/traces/%d%s", common.ProjectID, started.UnixNano(), id)
}
