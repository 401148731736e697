package repository

const (
	queryDeviceTypeIDByName = `SELECT id FROM device_types WHERE name = $1`

	queryDeviceDetails = `
		SELECT dt.name, d.is_enabled, d.additional_properties
		FROM devices d
		JOIN device_types dt ON dt.id = d.device_type_id
		WHERE d.id = $1`

	queryCurrentEmployee = `
		SELECT e.id, p.first_name, p.last_name
		FROM device_employees de
		JOIN employees e ON e.id = de.employee_id
		JOIN persons p ON p.id = e.person_id
		WHERE de.device_id = $1 AND de.return_date IS NULL
		ORDER BY de.assigned_date DESC, de.id DESC
		LIMIT 1`

	queryDeviceExists = `SELECT EXISTS (SELECT 1 FROM devices WHERE id = $1)`

	queryInsertDevice = `
		INSERT INTO devices (name, device_type_id, is_enabled, additional_properties)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	queryDeleteDevice = `DELETE FROM devices WHERE id = $1`

	queryEmployeeByID = `
		SELECT
			e.id, e.salary, e.hire_date,
			p.id, p.passport_number, p.first_name, p.middle_name, p.last_name, p.phone_number, p.email,
			pos.id, pos.name, pos.min_exp_years
		FROM employees e
		JOIN persons p ON p.id = e.person_id
		JOIN positions pos ON pos.id = e.position_id
		WHERE e.id = $1`

	queryInsertAssignment = `
		INSERT INTO device_employees (device_id, employee_id, assigned_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	queryReturnAssignment = `
		UPDATE device_employees
		SET return_date = $1
		WHERE device_id = $2 AND employee_id = $3 AND return_date IS NULL`
)
