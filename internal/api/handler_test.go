package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WyZzYx/APBD10/internal/api"
	"github.com/WyZzYx/APBD10/internal/entity"
	"github.com/WyZzYx/APBD10/internal/mocks"
)

type TestAPI struct {
	srv     *httptest.Server
	service *mocks.MockService
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(s), api.NewMiddleware()))
	t.Cleanup(srv.Close)

	return &TestAPI{
		srv:     srv,
		service: s,
	}
}

func (ta *TestAPI) do(t *testing.T, method, path, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ta.srv.URL+path, reader) //nolint:noctx
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	resp, err := ta.srv.Client().Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

func TestHandler_Devices(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ta := NewTestAPI(t)

	ta.service.EXPECT().Devices(gomock.Any()).Return([]entity.DeviceSummary{
		{ID: 1, Name: "Laptop"},
		{ID: 2, Name: "PC"},
	}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/devices", "")
	r.Equal(http.StatusOK, resp.StatusCode)
	r.Equal("application/json", resp.Header.Get("Content-Type"))
	r.NotEmpty(resp.Header.Get("X-Request-ID"))
	r.JSONEq(`[{"id":1,"name":"Laptop"},{"id":2,"name":"PC"}]`, body)
}

func TestHandler_Devices_Empty(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.service.EXPECT().Devices(gomock.Any()).Return(nil, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/devices", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[]`, body)
}

func TestHandler_DeviceByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		details  entity.DeviceDetails
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "with current employee",
			details: entity.DeviceDetails{
				DeviceTypeName:       "Laptop",
				IsEnabled:            true,
				AdditionalProperties: json.RawMessage(`{"cpu":"x1"}`),
				CurrentEmployee:      &entity.EmployeeSummary{ID: 3, FullName: "Jan Kowalski"},
			},
			wantCode: http.StatusOK,
			wantBody: `{"deviceTypeName":"Laptop","isEnabled":true,"additionalProperties":{"cpu":"x1"},` +
				`"currentEmployee":{"id":3,"fullName":"Jan Kowalski"}}`,
		},
		{
			name: "unassigned",
			details: entity.DeviceDetails{
				DeviceTypeName:       "PC",
				AdditionalProperties: json.RawMessage(`[1,2]`),
			},
			wantCode: http.StatusOK,
			wantBody: `{"deviceTypeName":"PC","isEnabled":false,"additionalProperties":[1,2],"currentEmployee":null}`,
		},
		{
			name: "stored text is not json",
			details: entity.DeviceDetails{
				DeviceTypeName:       "PC",
				AdditionalProperties: json.RawMessage(`legacy value`),
			},
			wantCode: http.StatusOK,
			wantBody: `{"deviceTypeName":"PC","isEnabled":false,"additionalProperties":"legacy value","currentEmployee":null}`,
		},
		{
			name:     "not found",
			err:      entity.ErrDeviceNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Device not found."}`,
		},
		{
			name:     "internal",
			err:      errors.New("conn closed"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Internal server error."}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t)

			ta.service.EXPECT().DeviceDetails(gomock.Any(), int64(7)).Return(tt.details, tt.err)

			resp, body := ta.do(t, http.MethodGet, "/api/devices/7", "")
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, body)
		})
	}
}

func TestHandler_DeviceByID_NotNumeric(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	resp, body := ta.do(t, http.MethodGet, "/api/devices/abc", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"message":"Not found."}`, body)
}

func TestHandler_CreateDevice(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ta := NewTestAPI(t)

	ta.service.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, in entity.DeviceInput) (int64, error) {
			r.Equal("Laptop", in.DeviceTypeName)
			r.True(in.IsEnabled)
			r.JSONEq(`{"cpu":"x1"}`, string(in.AdditionalProperties))

			return 15, nil
		})

	resp, body := ta.do(t, http.MethodPost, "/api/devices",
		`{"deviceTypeName":"Laptop","isEnabled":true,"additionalProperties":{"cpu":"x1"}}`)
	r.Equal(http.StatusCreated, resp.StatusCode)
	r.Equal("/api/devices/15", resp.Header.Get("Location"))
	r.JSONEq(`{"id":15}`, body)
}

func TestHandler_CreateDevice_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "malformed body",
			body:     `{"deviceTypeName":`,
			wantBody: `{"message":"Invalid request body."}`,
		},
		{
			name:     "missing type",
			body:     `{"isEnabled":true,"additionalProperties":{}}`,
			wantBody: `{"message":"DeviceTypeName is required."}`,
		},
		{
			name:     "missing properties",
			body:     `{"deviceTypeName":"Laptop","isEnabled":true}`,
			wantBody: `{"message":"AdditionalProperties is required."}`,
		},
		{
			name:     "trailing content",
			body:     `{"deviceTypeName":"Laptop","isEnabled":true,"additionalProperties":{}} garbage`,
			wantBody: `{"message":"Invalid request body."}`,
		},
		{
			name:     "two json values",
			body:     `{"deviceTypeName":"Laptop","isEnabled":true,"additionalProperties":{}}{}`,
			wantBody: `{"message":"Invalid request body."}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t)

			resp, body := ta.do(t, http.MethodPost, "/api/devices", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, body)
		})
	}
}

func TestHandler_CreateDevice_TrailingWhitespace(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.service.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	resp, body := ta.do(t, http.MethodPost, "/api/devices",
		"{\"deviceTypeName\":\"PC\",\"isEnabled\":true,\"additionalProperties\":{}}\n\t ")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"id":3}`, body)
}

func TestHandler_CreateDevice_BodyTooLarge(t *testing.T) {
	t.Parallel()

	router := api.NewRouter(api.NewHandler(mocks.NewMockService(gomock.NewController(t))), api.NewMiddleware())

	large := `{"deviceTypeName":"PC","isEnabled":true,"additionalProperties":"` + strings.Repeat("a", 1<<20) + `"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/devices", strings.NewReader(large)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.JSONEq(t, `{"message":"Request body is too large."}`, rec.Body.String())
}

func TestHandler_UpdateDevice_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{
			name:     "trailing content",
			body:     `{"deviceTypeName":"PC","isEnabled":true,"additionalProperties":{}} garbage`,
			wantBody: `{"message":"Invalid request body."}`,
		},
		{
			name:     "malformed body",
			body:     `{"deviceTypeName"`,
			wantBody: `{"message":"Invalid request body."}`,
		},
		{
			name:     "missing type",
			body:     `{"isEnabled":true,"additionalProperties":{}}`,
			wantBody: `{"message":"DeviceTypeName is required."}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t)

			resp, body := ta.do(t, http.MethodPut, "/api/devices/9", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, body)
		})
	}
}

func TestHandler_CreateDevice_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid type",
			err:      entity.ErrInvalidDeviceType,
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Invalid device type."}`,
		},
		{
			name:     "internal",
			err:      errors.New(`pq: relation "devices" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"An error occurred creating the device."}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t)

			ta.service.EXPECT().CreateDevice(gomock.Any(), gomock.Any()).Return(int64(0), tt.err)

			resp, body := ta.do(t, http.MethodPost, "/api/devices",
				`{"deviceTypeName":"Toaster","isEnabled":false,"additionalProperties":{}}`)
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, body)
			require.Empty(t, resp.Header.Get("Location"))
		})
	}
}

func TestHandler_UpdateDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "ok",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "not found",
			err:      entity.ErrDeviceNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Device not found."}`,
		},
		{
			name:     "invalid type",
			err:      entity.ErrInvalidDeviceType,
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Invalid device type."}`,
		},
		{
			name:     "internal",
			err:      errors.New("tx aborted"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"An error occurred updating the device."}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := NewTestAPI(t)

			ta.service.EXPECT().UpdateDevice(gomock.Any(), int64(9), entity.DeviceInput{
				DeviceTypeName:       "PC",
				IsEnabled:            true,
				AdditionalProperties: json.RawMessage(`{"ram":32}`),
			}).Return(tt.err)

			resp, body := ta.do(t, http.MethodPut, "/api/devices/9",
				`{"deviceTypeName":"PC","isEnabled":true,"additionalProperties":{"ram":32}}`)
			require.Equal(t, tt.wantCode, resp.StatusCode)

			if tt.wantBody == "" {
				require.Empty(t, body)
				return
			}

			require.JSONEq(t, tt.wantBody, body)
		})
	}
}

func TestHandler_DeleteDevice(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ta := NewTestAPI(t)

	ta.service.EXPECT().DeleteDevice(gomock.Any(), int64(4)).Return(nil)

	resp, body := ta.do(t, http.MethodDelete, "/api/devices/4", "")
	r.Equal(http.StatusNoContent, resp.StatusCode)
	r.Empty(body)

	ta.service.EXPECT().DeleteDevice(gomock.Any(), int64(4)).Return(entity.ErrDeviceNotFound)

	resp, body = ta.do(t, http.MethodDelete, "/api/devices/4", "")
	r.Equal(http.StatusNotFound, resp.StatusCode)
	r.JSONEq(`{"message":"Device not found."}`, body)
}

func TestHandler_DeviceTypes(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.service.EXPECT().DeviceTypes(gomock.Any()).Return([]entity.DeviceType{{ID: 2, Name: "Laptop"}}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/device-types", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[{"id":2,"name":"Laptop"}]`, body)
}

func TestHandler_Employees(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.service.EXPECT().Employees(gomock.Any()).Return([]entity.EmployeeSummary{
		{ID: 1, FullName: "Jan Kowalski"},
	}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[{"id":1,"fullName":"Jan Kowalski"}]`, body)
}

func TestHandler_EmployeeByID(t *testing.T) {
	t.Parallel()

	r := require.New(t)
	ta := NewTestAPI(t)

	middle := "Maria"

	ta.service.EXPECT().EmployeeByID(gomock.Any(), int64(1)).Return(entity.Employee{
		ID: 1,
		Person: entity.Person{
			ID:             11,
			PassportNumber: "AB123456",
			FirstName:      "Anna",
			MiddleName:     &middle,
			LastName:       "Nowak",
			PhoneNumber:    "+48123456789",
			Email:          "anna.nowak@example.com",
		},
		Position: entity.Position{ID: 2, Name: "Engineer", MinExpYears: 3},
		Salary:   decimal.RequireFromString("5400.50"),
		HireDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/employees/1", "")
	r.Equal(http.StatusOK, resp.StatusCode)
	r.JSONEq(`{
		"passportNumber":"AB123456",
		"firstName":"Anna",
		"middleName":"Maria",
		"lastName":"Nowak",
		"phoneNumber":"+48123456789",
		"email":"anna.nowak@example.com",
		"salary":5400.5,
		"position":{"id":2,"name":"Engineer"},
		"hireDate":"2023-03-01T00:00:00Z"
	}`, body)
}

func TestHandler_EmployeeByID_NotFound(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	ta.service.EXPECT().EmployeeByID(gomock.Any(), int64(999)).Return(entity.Employee{}, entity.ErrEmployeeNotFound)

	resp, body := ta.do(t, http.MethodGet, "/api/employees/999", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"message":"Employee not found."}`, body)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	ta := NewTestAPI(t)

	resp, body := ta.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OK\n", body)
}
