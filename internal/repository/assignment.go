package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/WyZzYx/APBD10/internal/entity"
)

func (r *Repository) AssignDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx, queryInsertAssignment, deviceID, employeeID, at).Scan(&id)
	if err != nil {
		if constraint, ok := foreignKeyViolation(err); ok {
			if violates(constraint, "device_id") {
				return 0, entity.ErrDeviceNotFound
			}

			return 0, entity.ErrEmployeeNotFound
		}

		return 0, fmt.Errorf("insert assignment: %w", err)
	}

	return id, nil
}

// ReturnDevice closes every open assignment of the device to the employee.
func (r *Repository) ReturnDevice(ctx context.Context, deviceID, employeeID int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, queryReturnAssignment, at, deviceID, employeeID)
	if err != nil {
		return fmt.Errorf("return assignment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
