package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/medichat/symptom-predictor/internal/models"
	"github.com/medichat/symptom-predictor/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body []byte)
		rawBody      bool
	}{
		{
			name:     "success",
			username: "alice",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("signed-token", &models.UserDB{UserID: 7, Username: "alice"}, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body []byte) {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "signed-token", resp.AccessToken)
				assert.Equal(t, int64(7), resp.User.ID)
				assert.Equal(t, "alice", resp.User.Username)
			},
		},
		{
			name:     "wrong credentials",
			username: "alice",
			password: "wrong",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Wrong username or password"}, resp)
			},
		},
		{
			name:     "nonexistent user gets same error",
			username: "ghost",
			password: "whatever",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "whatever").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Wrong username or password"}, resp)
			},
		},
		{
			name:     "internal error",
			username: "alice",
			password: "secret123",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("", nil, errors.New("db down"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Internal server error"}, resp)
			},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, map[string]string{"error": "Invalid request body"}, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(LoginRequest{
					Username: tt.username,
					Password: tt.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.checkBody(t, rr.Body.Bytes())
		})
	}
}
