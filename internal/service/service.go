package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/WyZzYx/APBD10/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Devices(ctx context.Context) ([]entity.DeviceSummary, error)
	DeviceTypes(ctx context.Context) ([]entity.DeviceType, error)
	DeviceDetails(ctx context.Context, id int64) (entity.DeviceDetails, error)
	CreateDevice(ctx context.Context, in entity.DeviceInput) (entity.Device, error)
	UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput) (entity.Device, error)
	DeleteDevice(ctx context.Context, id int64) error
	Employees(ctx context.Context) ([]entity.EmployeeSummary, error)
	EmployeeByID(ctx context.Context, id int64) (entity.Employee, error)
	AssignDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) (int64, error)
	ReturnDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error
}

type Publisher interface {
	SendDeviceEvent(ctx context.Context, e entity.DeviceEvent)
}

type Service struct {
	repo      Repository
	publisher Publisher
	now       func() time.Time
}

func New(repo Repository, publisher Publisher) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) Devices(ctx context.Context) ([]entity.DeviceSummary, error) {
	devices, err := s.repo.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("get devices: %w", err)
	}

	return devices, nil
}

func (s *Service) DeviceTypes(ctx context.Context) ([]entity.DeviceType, error) {
	types, err := s.repo.DeviceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get device types: %w", err)
	}

	return types, nil
}

func (s *Service) DeviceDetails(ctx context.Context, id int64) (entity.DeviceDetails, error) {
	details, err := s.repo.DeviceDetails(ctx, id)
	if err != nil {
		return entity.DeviceDetails{}, fmt.Errorf("get device %d: %w", id, err)
	}

	return details, nil
}

func (s *Service) CreateDevice(ctx context.Context, in entity.DeviceInput) (int64, error) {
	device, err := s.repo.CreateDevice(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("create device: %w", err)
	}

	slog.InfoContext(ctx, "device created", "device_id", device.ID, "device_type", device.DeviceTypeName)

	s.publisher.SendDeviceEvent(ctx, entity.DeviceEvent{
		Type:       entity.DeviceCreated,
		DeviceID:   device.ID,
		DeviceType: device.DeviceTypeName,
		IsEnabled:  device.IsEnabled,
		At:         s.now(),
	})

	return device.ID, nil
}

func (s *Service) UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput) error {
	device, err := s.repo.UpdateDevice(ctx, id, in)
	if err != nil {
		return fmt.Errorf("update device %d: %w", id, err)
	}

	s.publisher.SendDeviceEvent(ctx, entity.DeviceEvent{
		Type:       entity.DeviceUpdated,
		DeviceID:   device.ID,
		DeviceType: device.DeviceTypeName,
		IsEnabled:  device.IsEnabled,
		At:         s.now(),
	})

	return nil
}

func (s *Service) DeleteDevice(ctx context.Context, id int64) error {
	err := s.repo.DeleteDevice(ctx, id)
	if err != nil {
		return fmt.Errorf("delete device %d: %w", id, err)
	}

	slog.InfoContext(ctx, "device deleted", "device_id", id)

	s.publisher.SendDeviceEvent(ctx, entity.DeviceEvent{
		Type:     entity.DeviceDeleted,
		DeviceID: id,
		At:       s.now(),
	})

	return nil
}

func (s *Service) Employees(ctx context.Context) ([]entity.EmployeeSummary, error) {
	employees, err := s.repo.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}

	return employees, nil
}

func (s *Service) EmployeeByID(ctx context.Context, id int64) (entity.Employee, error) {
	employee, err := s.repo.EmployeeByID(ctx, id)
	if err != nil {
		return entity.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}

	return employee, nil
}

func (s *Service) AssignDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error {
	id, err := s.repo.AssignDevice(ctx, deviceID, employeeID, at)
	if err != nil {
		return fmt.Errorf("assign device %d to employee %d: %w", deviceID, employeeID, err)
	}

	slog.InfoContext(ctx, "device assigned", "assignment_id", id, "device_id", deviceID, "employee_id", employeeID)

	return nil
}

func (s *Service) ReturnDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error {
	err := s.repo.ReturnDevice(ctx, deviceID, employeeID, at)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("no open assignment of device %d to employee %d: %w", deviceID, employeeID, err)
		}

		return fmt.Errorf("return device %d: %w", deviceID, err)
	}

	slog.InfoContext(ctx, "device returned", "device_id", deviceID, "employee_id", employeeID)

	return nil
}
