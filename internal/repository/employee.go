package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/WyZzYx/APBD10/internal/entity"
)

func (r *Repository) Employees(ctx context.Context) ([]entity.EmployeeSummary, error) {
	stmt := sq.Select("e.id", "p.first_name", "p.last_name").
		From("employees e").
		Join("persons p ON p.id = e.person_id").
		OrderBy("e.id").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	employees := make([]entity.EmployeeSummary, 0)

	for rows.Next() {
		var (
			e                   entity.EmployeeSummary
			firstName, lastName string
		)

		err = rows.Scan(&e.ID, &firstName, &lastName)
		if err != nil {
			return nil, err
		}

		e.FullName = entity.FullName(firstName, lastName)
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) EmployeeByID(ctx context.Context, id int64) (entity.Employee, error) {
	var e entity.Employee

	err := r.db.QueryRow(ctx, queryEmployeeByID, id).Scan(
		&e.ID,
		&e.Salary,
		&e.HireDate,
		&e.Person.ID,
		&e.Person.PassportNumber,
		&e.Person.FirstName,
		&e.Person.MiddleName,
		&e.Person.LastName,
		&e.Person.PhoneNumber,
		&e.Person.Email,
		&e.Position.ID,
		&e.Position.Name,
		&e.Position.MinExpYears,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Employee{}, entity.ErrEmployeeNotFound
		}

		return entity.Employee{}, err
	}

	return e, nil
}
