package entity

import (
	"encoding/json"
	"time"
)

type DeviceType struct {
	ID   int64
	Name string
}

type Device struct {
	ID                   int64
	Name                 string
	DeviceTypeID         int64
	DeviceTypeName       string
	IsEnabled            bool
	AdditionalProperties json.RawMessage
}

type DeviceSummary struct {
	ID   int64
	Name string
}

// DeviceDetails is a device together with its current holder, if any.
type DeviceDetails struct {
	DeviceTypeName       string
	IsEnabled            bool
	AdditionalProperties json.RawMessage
	CurrentEmployee      *EmployeeSummary
}

// DeviceInput is the writable part of a device.
type DeviceInput struct {
	DeviceTypeName       string
	IsEnabled            bool
	AdditionalProperties json.RawMessage
}

type DeviceEventType string

const (
	DeviceCreated DeviceEventType = "device.created"
	DeviceUpdated DeviceEventType = "device.updated"
	DeviceDeleted DeviceEventType = "device.deleted"
)

type DeviceEvent struct {
	Type       DeviceEventType
	DeviceID   int64
	DeviceType string
	IsEnabled  bool
	At         time.Time
}
