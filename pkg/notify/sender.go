package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Sender delivers a notification to a tenant. Implementations are expected
// to be invoked fire-and-forget: callers log failures but never propagate
// them into the decision path.
type Sender interface {
	Send(ctx context.Context, tenantID uuid.UUID, tpl Template, params Params) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, tenantID uuid.UUID, tpl Template, params Params) error

func (f SenderFunc) Send(ctx context.Context, tenantID uuid.UUID, tpl Template, params Params) error {
	return f(ctx, tenantID, tpl, params)
}

// logSender writes notifications to a structured log instead of delivering
// them. Intended for local development and tests.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender returns a Sender that only logs.
func NewLogSender(logger *slog.Logger) Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, tenantID uuid.UUID, tpl Template, params Params) error {
	attrs := []slog.Attr{
		slog.String("tenant_id", tenantID.String()),
		slog.String("template", string(tpl)),
	}
	for k, v := range params {
		attrs = append(attrs, slog.String("param_"+k, v))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "notification", attrs...)
	return nil
}
