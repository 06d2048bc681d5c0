package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasah-erp/finance/internal/application/adapter"
	"github.com/madrasah-erp/finance/internal/domain/entity"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
	deadline bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	_, f.deadline = ctx.Deadline()
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func (f *fakeChannel) Close() error { return nil }

func testEvent() adapter.ReportGeneratedEvent {
	return adapter.ReportGeneratedEvent{
		ReportID:  uuid.New(),
		SchoolID:  uuid.New(),
		Type:      entity.ReportTypeCashFlow,
		Format:    entity.ReportFormatPDF,
		CreatedBy: uuid.New(),
		CreatedAt: time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishReportGenerated(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &Publisher{channel: ch, exchange: "finance.events", routingKey: "finance.report.generated"}
	event := testEvent()

	require.NoError(t, publisher.PublishReportGenerated(context.Background(), event))

	assert.True(t, ch.deadline)
	assert.Equal(t, "finance.events", ch.exchange)
	assert.Equal(t, "finance.report.generated", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, event.ReportID.String(), ch.msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, event.ReportID.String(), body["reportId"])
	assert.Equal(t, event.SchoolID.String(), body["schoolId"])
	assert.Equal(t, "CASH_FLOW", body["type"])
	assert.Equal(t, "PDF", body["format"])
	assert.Equal(t, "2025-02-01T09:30:00Z", body["createdAt"])
}

func TestPublisher_PublishFailure(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	publisher := &Publisher{channel: ch, exchange: "finance.events", routingKey: "finance.report.generated"}

	err := publisher.PublishReportGenerated(context.Background(), testEvent())
	assert.ErrorContains(t, err, "channel closed")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().PublishReportGenerated(context.Background(), testEvent()))
}
