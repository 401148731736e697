package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/WyZzYx/APBD10/internal/entity"
)

func (r *Repository) Devices(ctx context.Context) ([]entity.DeviceSummary, error) {
	stmt := sq.Select("id", "name").From("devices").OrderBy("id").PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	devices := make([]entity.DeviceSummary, 0)

	for rows.Next() {
		var d entity.DeviceSummary

		err = rows.Scan(&d.ID, &d.Name)
		if err != nil {
			return nil, err
		}

		devices = append(devices, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

func (r *Repository) DeviceTypes(ctx context.Context) ([]entity.DeviceType, error) {
	stmt := sq.Select("id", "name").From("device_types").OrderBy("name").PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	types := make([]entity.DeviceType, 0)

	for rows.Next() {
		var dt entity.DeviceType

		err = rows.Scan(&dt.ID, &dt.Name)
		if err != nil {
			return nil, err
		}

		types = append(types, dt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *Repository) DeviceDetails(ctx context.Context, id int64) (entity.DeviceDetails, error) {
	var (
		details entity.DeviceDetails
		props   string
	)

	err := r.db.QueryRow(ctx, queryDeviceDetails, id).Scan(
		&details.DeviceTypeName,
		&details.IsEnabled,
		&props,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.DeviceDetails{}, entity.ErrDeviceNotFound
		}

		return entity.DeviceDetails{}, err
	}

	details.AdditionalProperties = json.RawMessage(props)

	var (
		employee             entity.EmployeeSummary
		firstName, lastName string
	)

	err = r.db.QueryRow(ctx, queryCurrentEmployee, id).Scan(&employee.ID, &firstName, &lastName)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return entity.DeviceDetails{}, fmt.Errorf("current employee: %w", err)
	default:
		employee.FullName = entity.FullName(firstName, lastName)
		details.CurrentEmployee = &employee
	}

	return details, nil
}

// CreateDevice resolves the device type by name and inserts the device in one
// transaction. The device is named after its type.
func (r *Repository) CreateDevice(ctx context.Context, in entity.DeviceInput) (entity.Device, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Device{}, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	typeID, err := deviceTypeID(ctx, tx, in.DeviceTypeName)
	if err != nil {
		return entity.Device{}, err
	}

	device := entity.Device{
		Name:                 in.DeviceTypeName,
		DeviceTypeID:         typeID,
		DeviceTypeName:       in.DeviceTypeName,
		IsEnabled:            in.IsEnabled,
		AdditionalProperties: in.AdditionalProperties,
	}

	err = tx.QueryRow(ctx, queryInsertDevice,
		device.Name,
		device.DeviceTypeID,
		device.IsEnabled,
		string(device.AdditionalProperties),
	).Scan(&device.ID)
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return entity.Device{}, entity.ErrInvalidDeviceType
		}

		return entity.Device{}, fmt.Errorf("insert device: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Device{}, err
	}

	return device, nil
}

// UpdateDevice overwrites type, enabled flag and properties of an existing
// device. Existence is checked before the type is resolved.
func (r *Repository) UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput) (entity.Device, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Device{}, err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	var exists bool

	err = tx.QueryRow(ctx, queryDeviceExists, id).Scan(&exists)
	if err != nil {
		return entity.Device{}, fmt.Errorf("check device: %w", err)
	}

	if !exists {
		return entity.Device{}, entity.ErrDeviceNotFound
	}

	typeID, err := deviceTypeID(ctx, tx, in.DeviceTypeName)
	if err != nil {
		return entity.Device{}, err
	}

	sqlQuery, args, err := sq.Update("devices").
		SetMap(map[string]any{
			"device_type_id":        typeID,
			"is_enabled":            in.IsEnabled,
			"additional_properties": string(in.AdditionalProperties),
		}).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Device{}, fmt.Errorf("build query: %w", err)
	}

	device := entity.Device{
		ID:                   id,
		DeviceTypeID:         typeID,
		DeviceTypeName:       in.DeviceTypeName,
		IsEnabled:            in.IsEnabled,
		AdditionalProperties: in.AdditionalProperties,
	}

	err = tx.QueryRow(ctx, sqlQuery, args...).Scan(&device.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Device{}, entity.ErrDeviceNotFound
		}

		if _, ok := foreignKeyViolation(err); ok {
			return entity.Device{}, entity.ErrInvalidDeviceType
		}

		return entity.Device{}, fmt.Errorf("update device: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Device{}, err
	}

	return device, nil
}

func (r *Repository) DeleteDevice(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, queryDeleteDevice, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrDeviceNotFound
	}

	return nil
}

func deviceTypeID(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64

	err := tx.QueryRow(ctx, queryDeviceTypeIDByName, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrInvalidDeviceType
		}

		return 0, fmt.Errorf("device type by name: %w", err)
	}

	return id, nil
}
