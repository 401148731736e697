package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/WyZzYx/APBD10/internal/entity"
)

type Producer struct {
	l                 *slog.Logger
	w                 *kafka.Writer
	deviceEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                 l,
		w:                 w,
		deviceEventsTopic: topic,
	}
}

type DeviceEvent struct {
	Event      entity.DeviceEventType `json:"event"`
	DeviceID   int64                  `json:"device_id"`
	DeviceType string                 `json:"device_type,omitempty"`
	IsEnabled  *bool                  `json:"is_enabled,omitempty"`
	At         time.Time              `json:"at"`
}

func NewDeviceEvent(e entity.DeviceEvent) DeviceEvent {
	event := DeviceEvent{
		Event:    e.Type,
		DeviceID: e.DeviceID,
		At:       e.At.UTC(),
	}

	if e.Type != entity.DeviceDeleted {
		enabled := e.IsEnabled
		event.DeviceType = e.DeviceType
		event.IsEnabled = &enabled
	}

	return event
}

func (p *Producer) SendDeviceEvent(ctx context.Context, e entity.DeviceEvent) {
	b, err := json.Marshal(NewDeviceEvent(e))
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.DeviceID, 10)),
		Value: b,
		Topic: p.deviceEventsTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. Used when no brokers are configured.
type NopProducer struct{}

func NewNopProducer() *NopProducer {
	return &NopProducer{}
}

func (NopProducer) SendDeviceEvent(context.Context, entity.DeviceEvent) {}

func (NopProducer) Close() {}
