package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/api-activity/internal/service"
	"github.com/MKhiriev/api-activity/internal/store"
	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/models"
)

func executeAuth(h *testHandler, username, password string) (*httptest.ResponseRecorder, bool, string) {
	var (
		nextCalled bool
		ctxUser    string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		ctxUser, _ = utils.GetUsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/sensitive", nil)
	if username != "" {
		req.Header.Set(usernameHeader, username)
	}
	if password != "" {
		req.Header.Set(passwordHeader, password)
	}

	rr := httptest.NewRecorder()
	h.Handler.auth(next).ServeHTTP(rr, req)
	return rr, nextCalled, ctxUser
}

func TestAuth_Success_StoresUsernameInContext(t *testing.T) {
	h := newTestHandler(t)
	h.auth.EXPECT().
		Authenticate(gomock.Any(), models.Credentials{Username: "alice", Password: "s3cret"}).
		Return("alice", nil)

	rr, nextCalled, ctxUser := executeAuth(h, "alice", "s3cret")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, "alice", ctxUser)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		err        error
		wantStatus int
	}{
		{name: "wrong password", username: "alice", password: "bad", err: service.ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", username: "ghost", password: "s3cret", err: service.ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized},
		{name: "missing headers", err: service.ErrAuthenticationFailed, wantStatus: http.StatusUnauthorized},
		{
			name:       "storage unavailable",
			username:   "alice",
			password:   "s3cret",
			err:        fmt.Errorf("lookup: %w", store.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			h.auth.EXPECT().
				Authenticate(gomock.Any(), models.Credentials{Username: tt.username, Password: tt.password}).
				Return("", tt.err)

			rr, nextCalled, _ := executeAuth(h, tt.username, tt.password)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuth_UnknownUserAndWrongPassword_SameBody(t *testing.T) {
	h := newTestHandler(t)
	h.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return("", service.ErrAuthenticationFailed).Times(2)

	unknown, _, _ := executeAuth(h, "ghost", "s3cret")
	wrong, _, _ := executeAuth(h, "alice", "bad")

	assert.Equal(t, unknown.Code, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.JSONEq(t, `{"error":"invalid username or password"}`, wrong.Body.String())
}
