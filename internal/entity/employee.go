package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeSummary struct {
	ID       int64
	FullName string
}

type Position struct {
	ID          int64
	Name        string
	MinExpYears int
}

type Person struct {
	ID             int64
	PassportNumber string
	FirstName      string
	MiddleName     *string
	LastName       string
	PhoneNumber    string
	Email          string
}

type Employee struct {
	ID       int64
	Person   Person
	Position Position
	Salary   decimal.Decimal
	HireDate time.Time
}

func FullName(firstName, lastName string) string {
	return firstName + " " + lastName
}
