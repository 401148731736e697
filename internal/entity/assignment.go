package entity

type AssignmentEventType string

const (
	AssignmentAssigned AssignmentEventType = "assigned"
	AssignmentReturned AssignmentEventType = "returned"
)
