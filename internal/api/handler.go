package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/WyZzYx/APBD10/internal/entity"
	"github.com/WyZzYx/APBD10/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Devices(ctx context.Context) ([]entity.DeviceSummary, error)
	DeviceTypes(ctx context.Context) ([]entity.DeviceType, error)
	DeviceDetails(ctx context.Context, id int64) (entity.DeviceDetails, error)
	CreateDevice(ctx context.Context, in entity.DeviceInput) (int64, error)
	UpdateDevice(ctx context.Context, id int64, in entity.DeviceInput) error
	DeleteDevice(ctx context.Context, id int64) error
	Employees(ctx context.Context) ([]entity.EmployeeSummary, error)
	EmployeeByID(ctx context.Context, id int64) (entity.Employee, error)
}

const (
	msgDeviceNotFound     = "Device not found."
	msgEmployeeNotFound   = "Employee not found."
	msgInvalidDeviceType  = "Invalid device type."
	msgInvalidRequestBody = "Invalid request body."
	msgBodyTooLarge       = "Request body is too large."

	maxRequestBodySize = 1 << 20
)

// @title Inventory API
// @version 1.0
// @description Devices and employees of the inventory service.
// @BasePath /api

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

type DeviceSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Devices godoc
// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Success      200 {array} DeviceSummaryResponse
// @Failure      500 {object} ResponseError
// @Router       /devices [get]
func (h *Handler) Devices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	devices, err := h.s.Devices(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	resp := make([]DeviceSummaryResponse, 0, len(devices))
	for _, d := range devices {
		resp = append(resp, DeviceSummaryResponse{ID: d.ID, Name: d.Name})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type EmployeeSummaryResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type DeviceDetailsResponse struct {
	DeviceTypeName       string                   `json:"deviceTypeName"`
	IsEnabled            bool                     `json:"isEnabled"`
	AdditionalProperties json.RawMessage          `json:"additionalProperties" swaggertype:"object"`
	CurrentEmployee      *EmployeeSummaryResponse `json:"currentEmployee"`
}

// DeviceByID godoc
// @Summary      Get device
// @Description  Returns the device with its current holder, or null when nobody holds it
// @Tags         devices
// @Produce      json
// @Param        id path int true "Device ID"
// @Success      200 {object} DeviceDetailsResponse
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/{id} [get]
func (h *Handler) DeviceByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
		return
	}

	details, err := h.s.DeviceDetails(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	resp := DeviceDetailsResponse{
		DeviceTypeName:       details.DeviceTypeName,
		IsEnabled:            details.IsEnabled,
		AdditionalProperties: jsonValue(details.AdditionalProperties),
	}

	if e := details.CurrentEmployee; e != nil {
		resp.CurrentEmployee = &EmployeeSummaryResponse{ID: e.ID, FullName: e.FullName}
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type DeviceRequest struct {
	DeviceTypeName       string          `json:"deviceTypeName"`
	IsEnabled            bool            `json:"isEnabled"`
	AdditionalProperties json.RawMessage `json:"additionalProperties" swaggertype:"object"`
}

func (req DeviceRequest) input() entity.DeviceInput {
	return entity.DeviceInput{
		DeviceTypeName:       req.DeviceTypeName,
		IsEnabled:            req.IsEnabled,
		AdditionalProperties: req.AdditionalProperties,
	}
}

type CreateDeviceResponse struct {
	ID int64 `json:"id"`
}

// CreateDevice godoc
// @Summary      Create device
// @Description  Creates a device of an existing device type. The device is named after its type.
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        request body DeviceRequest true "Device"
// @Success      201 {object} CreateDeviceResponse
// @Header       201 {string} Location "/api/devices/{id}"
// @Failure      400 {object} ResponseError
// @Failure      413 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices [post]
func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := decodeDevice(w, r)
	if !ok {
		return
	}

	id, err := h.s.CreateDevice(ctx, in)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidDeviceType) {
			SendErr(ctx, w, http.StatusBadRequest, err, msgInvalidDeviceType)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "An error occurred creating the device.")

		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/devices/%d", id))
	SendJSON(ctx, w, http.StatusCreated, CreateDeviceResponse{ID: id})
}

// UpdateDevice godoc
// @Summary      Update device
// @Description  Overwrites the type, enabled flag and properties of a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id path int true "Device ID"
// @Param        request body DeviceRequest true "Device"
// @Success      204
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      413 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/{id} [put]
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
		return
	}

	in, ok := decodeDevice(w, r)
	if !ok {
		return
	}

	err = h.s.UpdateDevice(ctx, id, in)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
			return
		}

		if errors.Is(err, entity.ErrInvalidDeviceType) {
			SendErr(ctx, w, http.StatusBadRequest, err, msgInvalidDeviceType)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "An error occurred updating the device.")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteDevice godoc
// @Summary      Delete device
// @Tags         devices
// @Param        id path int true "Device ID"
// @Success      204
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/{id} [delete]
func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
		return
	}

	err = h.s.DeleteDevice(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, msgDeviceNotFound)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "An error occurred deleting the device.")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type DeviceTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeviceTypes godoc
// @Summary      List device types
// @Description  Names accepted as deviceTypeName
// @Tags         devices
// @Produce      json
// @Success      200 {array} DeviceTypeResponse
// @Failure      500 {object} ResponseError
// @Router       /device-types [get]
func (h *Handler) DeviceTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	types, err := h.s.DeviceTypes(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	resp := make([]DeviceTypeResponse, 0, len(types))
	for _, dt := range types {
		resp = append(resp, DeviceTypeResponse{ID: dt.ID, Name: dt.Name})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// Employees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200 {array} EmployeeSummaryResponse
// @Failure      500 {object} ResponseError
// @Router       /employees [get]
func (h *Handler) Employees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.s.Employees(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	resp := make([]EmployeeSummaryResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, EmployeeSummaryResponse{ID: e.ID, FullName: e.FullName})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type PositionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmployeeDetailsResponse struct {
	PassportNumber string           `json:"passportNumber"`
	FirstName      string           `json:"firstName"`
	MiddleName     *string          `json:"middleName"`
	LastName       string           `json:"lastName"`
	PhoneNumber    string           `json:"phoneNumber"`
	Email          string           `json:"email"`
	Salary         json.Number      `json:"salary" swaggertype:"number"`
	Position       PositionResponse `json:"position"`
	HireDate       time.Time        `json:"hireDate"`
}

// EmployeeByID godoc
// @Summary      Get employee
// @Tags         employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      200 {object} EmployeeDetailsResponse
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /employees/{id} [get]
func (h *Handler) EmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		SendErr(ctx, w, http.StatusNotFound, err, msgEmployeeNotFound)
		return
	}

	e, err := h.s.EmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, msgEmployeeNotFound)
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, EmployeeDetailsResponse{
		PassportNumber: e.Person.PassportNumber,
		FirstName:      e.Person.FirstName,
		MiddleName:     e.Person.MiddleName,
		LastName:       e.Person.LastName,
		PhoneNumber:    e.Person.PhoneNumber,
		Email:          e.Person.Email,
		Salary:         json.Number(e.Salary.String()),
		Position: PositionResponse{
			ID:   e.Position.ID,
			Name: e.Position.Name,
		},
		HireDate: e.HireDate,
	})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id: %w", err)
	}

	return id, nil
}

// decodeDevice reads and validates a device body. On failure the error
// response is already written.
func decodeDevice(w http.ResponseWriter, r *http.Request) (entity.DeviceInput, bool) {
	ctx := r.Context()

	var req DeviceRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))

	err := dec.Decode(&req)
	if err == nil {
		// the body must hold exactly one JSON value
		if extraErr := dec.Decode(&struct{}{}); !errors.Is(extraErr, io.EOF) {
			err = fmt.Errorf("trailing data after request body: %v", extraErr)
		}
	}

	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, msgBodyTooLarge)
			return entity.DeviceInput{}, false
		}

		SendErr(ctx, w, http.StatusBadRequest, err, msgInvalidRequestBody)

		return entity.DeviceInput{}, false
	}

	in := req.input()

	err = service.ValidateDeviceInput(in)
	if err != nil {
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			SendErr(ctx, w, http.StatusBadRequest, err, vErr.Message)
			return entity.DeviceInput{}, false
		}

		SendErr(ctx, w, http.StatusBadRequest, err, msgInvalidRequestBody)

		return entity.DeviceInput{}, false
	}

	return in, true
}

// jsonValue returns stored properties as a JSON value. Text that is not
// valid JSON is returned as a JSON string.
func jsonValue(raw json.RawMessage) json.RawMessage {
	if json.Valid(raw) {
		return raw
	}

	b, err := json.Marshal(string(raw))
	if err != nil {
		return json.RawMessage("null")
	}

	return b
}
