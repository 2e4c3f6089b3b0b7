package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"softsell/internal/service"
	"softsell/internal/service/mocks"
)

func TestContactHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		mockSetup  func(*mocks.MockContactService)
		wantStatus int
		wantError  string
		checkBody  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "valid submission",
			method: http.MethodPost,
			body:   `{"name":"Alice Johnson","email":"alice@technova.example","company":"TechNova Inc.","license":"Adobe Creative Cloud","message":"40 seats"}`,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().
					ProcessContact(gomock.Any(), service.ContactRequest{
						Name:        "Alice Johnson",
						Email:       "alice@technova.example",
						Company:     "TechNova Inc.",
						LicenseType: "Adobe Creative Cloud",
						Message:     "40 seats",
					}).
					Return(service.ContactResponse{ID: "lead-1"}, nil)
			},
			wantStatus: http.StatusCreated,
			checkBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp ContactResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("response not decodable: %v", err)
				}
				if resp.ID != "lead-1" || resp.Status != "received" {
					t.Errorf("response = %+v", resp)
				}
			},
		},
		{
			name:       "GET is method not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockContactService) {},
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method Not Allowed",
		},
		{
			name:       "invalid JSON body",
			method:     http.MethodPost,
			body:       "not json",
			mockSetup:  func(m *mocks.MockContactService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:   "validation error surfaces field message",
			method: http.MethodPost,
			body:   `{"name":"","email":"alice@technova.example","license":"Other"}`,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().
					ProcessContact(gomock.Any(), gomock.Any()).
					Return(service.ContactResponse{}, &service.ValidationError{
						Field:   "name",
						Message: "Name is required",
					})
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Name is required",
		},
		{
			name:   "store failure is internal error",
			method: http.MethodPost,
			body:   `{"name":"Alice","email":"alice@technova.example","license":"Other"}`,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().
					ProcessContact(gomock.Any(), gomock.Any()).
					Return(service.ContactResponse{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to process submission",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockContact := mocks.NewMockContactService(ctrl)
			tt.mockSetup(mockContact)

			handler := NewContactHandler(mockContact)

			req := httptest.NewRequest(tt.method, "/api/contact", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}

			if tt.checkBody != nil {
				tt.checkBody(t, w)
				return
			}

			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("ServeHTTP() error body not decodable: %v", err)
			}
			if resp.Error != tt.wantError {
				t.Errorf("ServeHTTP() error = %q, want %q", resp.Error, tt.wantError)
			}
		})
	}
}
