package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/mailer"
	reports "github.com/doitintl/hello/agent-data-api/reports/domain"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

type ReportsService struct {
	loggerProvider logger.Provider
	mailer         mailer.Mailer
}

func NewReportsService(log logger.Provider, conn *connection.Connection) (*ReportsService, error) {
	if conn.Mailer == nil {
		return nil, tabular.Configuration("EMAIL_SENDER", "SMTP_SERVER")
	}

	return NewReportsServiceWith(log, conn.Mailer), nil
}

func NewReportsServiceWith(log logger.Provider, m mailer.Mailer) *ReportsService {
	return &ReportsService{
		loggerProvider: log,
		mailer:         m,
	}
}

// SendActivityReports mails every person their activity summary. A failed
// delivery does not stop the rest.
func (s *ReportsService) SendActivityReports(ctx context.Context, payload reports.Payload) *SendReport {
	l := s.loggerProvider(ctx)

	var (
		merr   *multierror.Error
		report = &SendReport{Status: StatusOK}
	)

	for _, p := range payload.People {
		if err := s.send(ctx, p); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", p.Email, err))
			report.Failed = append(report.Failed, Failure{Email: p.Email, Error: err.Error()})

			continue
		}

		report.Sent++
	}

	if err := merr.ErrorOrNil(); err != nil {
		l.Errorf("activity reports: %d of %d failed: %s", len(report.Failed), len(payload.People), err)

		report.Status = StatusPartial
	}

	return report
}

func (s *ReportsService) send(ctx context.Context, p reports.Person) error {
	body, err := p.Body()
	if err != nil {
		return err
	}

	return s.mailer.Send(ctx, &mailer.Message{
		To:      []string{p.Email},
		Subject: p.Subject(),
		Body:    body,
	})
}
