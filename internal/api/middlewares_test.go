package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WyZzYx/APBD10/internal/api"
)

func TestMiddleware_Recover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantBody string
	}{
		{
			name: "panic before response",
			handler: func(http.ResponseWriter, *http.Request) {
				panic("boom")
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "{\"message\":\"Internal server error.\"}\n",
		},
		{
			name: "panic after response started",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("partial"))

				panic("boom")
			},
			wantCode: http.StatusAccepted,
			wantBody: "partial",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := api.NewMiddleware().Recover(tt.handler)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/devices", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
