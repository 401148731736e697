package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/WyZzYx/APBD10/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks

type AssignmentService interface {
	AssignDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error
	ReturnDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error
}

type EventHandler struct {
	s AssignmentService
}

func NewEventHandler(s AssignmentService) *EventHandler {
	return &EventHandler{s: s}
}

type DeviceAssignmentEvent struct {
	Type       entity.AssignmentEventType `json:"type"`
	DeviceID   int64                      `json:"device_id"`
	EmployeeID int64                      `json:"employee_id"`
	At         time.Time                  `json:"at"`
}

// OnDeviceAssignment applies an assignment event. Events that reference
// unknown rows are logged and dropped so the consumer keeps moving.
func (h *EventHandler) OnDeviceAssignment(ctx context.Context, msg kafka.Message) error {
	var event DeviceAssignmentEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.At.IsZero() {
		event.At = msg.Time
	}

	switch event.Type {
	case entity.AssignmentAssigned:
		err = h.s.AssignDevice(ctx, event.DeviceID, event.EmployeeID, event.At)
	case entity.AssignmentReturned:
		err = h.s.ReturnDevice(ctx, event.DeviceID, event.EmployeeID, event.At)
	default:
		slog.WarnContext(ctx, "unknown assignment event type", "type", event.Type)
		return nil
	}

	if errors.Is(err, entity.ErrNotFound) {
		slog.WarnContext(ctx, "assignment event skipped", "error", err,
			"device_id", event.DeviceID, "employee_id", event.EmployeeID)

		return nil
	}

	if err != nil {
		return fmt.Errorf("apply %s event: %w", event.Type, err)
	}

	return nil
}
