package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doitintl/hello/agent-data-api/framework/connection"
	"github.com/doitintl/hello/agent-data-api/logger"
	"github.com/doitintl/hello/agent-data-api/mailer"
	"github.com/doitintl/hello/agent-data-api/mailer/mocks"
	reports "github.com/doitintl/hello/agent-data-api/reports/domain"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

func to(addr string) interface{} {
	return mock.MatchedBy(func(m *mailer.Message) bool {
		return len(m.To) == 1 && m.To[0] == addr
	})
}

func TestSendActivityReports(t *testing.T) {
	people := reports.Payload{People: []reports.Person{
		{Name: "Ana", Email: "ana@example.com", Appearances: reports.Count(3)},
		{Name: "Luis", Email: "luis@example.com"},
		{Name: "Eva", Email: "eva@example.com"},
	}}

	t.Run("all delivered", func(t *testing.T) {
		m := mocks.NewMailer(t)
		m.On("Send", mock.Anything, mock.MatchedBy(func(msg *mailer.Message) bool {
			return strings.HasPrefix(msg.Subject, "Reporte de actividad – ") && strings.Contains(msg.Body, "Hola ")
		})).Return(nil).Times(3)

		got := NewReportsServiceWith(logger.FromContext, m).SendActivityReports(context.Background(), people)

		assert.Equal(t, &SendReport{Status: StatusOK, Sent: 3}, got)
	})

	t.Run("one failure does not stop the rest", func(t *testing.T) {
		m := mocks.NewMailer(t)
		m.On("Send", mock.Anything, to("ana@example.com")).Return(nil).Once()
		m.On("Send", mock.Anything, to("luis@example.com")).Return(errors.New("550 mailbox unavailable")).Once()
		m.On("Send", mock.Anything, to("eva@example.com")).Return(nil).Once()

		got := NewReportsServiceWith(logger.FromContext, m).SendActivityReports(context.Background(), people)

		assert.Equal(t, StatusPartial, got.Status)
		assert.Equal(t, 2, got.Sent)
		assert.Equal(t, []Failure{{Email: "luis@example.com", Error: "550 mailbox unavailable"}}, got.Failed)
	})

	t.Run("no people", func(t *testing.T) {
		got := NewReportsServiceWith(logger.FromContext, mocks.NewMailer(t)).
			SendActivityReports(context.Background(), reports.Payload{People: []reports.Person{}})

		assert.Equal(t, &SendReport{Status: StatusOK}, got)
	})
}

func TestNewReportsServiceRequiresMailer(t *testing.T) {
	_, err := NewReportsService(logger.FromContext, &connection.Connection{})

	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrConfiguration)
}
