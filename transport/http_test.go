package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/gas-booking/constant"
	authmocks "github.com/muhammadheryan/gas-booking/mocks/application/auth"
	bookingmocks "github.com/muhammadheryan/gas-booking/mocks/application/booking"
	"github.com/muhammadheryan/gas-booking/model"
	"github.com/muhammadheryan/gas-booking/transport"
	"github.com/muhammadheryan/gas-booking/utils/errors"
	"github.com/stretchr/testify/mock"
)

func newServer(t *testing.T) (*authmocks.AuthApp, *bookingmocks.BookingApp, http.Handler) {
	t.Helper()
	authApp := authmocks.NewAuthApp(t)
	bookingApp := bookingmocks.NewBookingApp(t)
	return authApp, bookingApp, transport.NewTransport(authApp, bookingApp)
}

func TestHealth(t *testing.T) {
	_, _, handler := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "running") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authApp, _, handler := newServer(t)
		authApp.
			On("Register", mock.Anything, &model.RegisterRequest{
				Name:     "Alice",
				Email:    "a@x.com",
				Phone:    "1234567890",
				Password: "abc123!",
			}).
			Return(&model.RegisterResponse{Message: "user registered successfully"}, nil).
			Once()

		body := `{"name":"Alice","email":"a@x.com","phone":"1234567890","password":"abc123!"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var res model.RegisterResponse
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if res.Message != "user registered successfully" {
			t.Fatalf("message = %q", res.Message)
		}
	})

	t.Run("malformed body is rejected before the service", func(t *testing.T) {
		_, _, handler := newServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("missing fields are rejected before the service", func(t *testing.T) {
		_, _, handler := newServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":"Alice"}`))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("conflict maps to 400", func(t *testing.T) {
		authApp, _, handler := newServer(t)
		authApp.
			On("Register", mock.Anything, mock.AnythingOfType("*model.RegisterRequest")).
			Return(nil, errors.SetCustomError(constant.ErrCredentialExists)).
			Once()

		body := `{"name":"Alice","email":"a@x.com","phone":"1234567890","password":"abc123!"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}

		var res transport.ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if res.Message != constant.ErrorTypeMessage[constant.ErrCredentialExists] {
			t.Fatalf("message = %q", res.Message)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	authApp, _, handler := newServer(t)
	authApp.
		On("Login", mock.Anything, &model.LoginRequest{
			EmailOrPhone: "a@x.com",
			Password:     "abc123!",
		}).
		Return(&model.LoginResponse{
			Message: "login successful",
			Token:   "signed-token",
			User: model.UserProfile{
				Name:  "Alice",
				Email: "a@x.com",
				Phone: "1234567890",
			},
		}, nil).
		Once()

	body := `{"emailOrPhone":"a@x.com","password":"abc123!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res model.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Token != "signed-token" || res.User.Name != "Alice" {
		t.Fatalf("response = %+v", res)
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token is rejected with 401", func(t *testing.T) {
		_, _, handler := newServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/booking/history", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("malformed authorization header is rejected with 401", func(t *testing.T) {
		_, _, handler := newServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/booking/history", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid token is rejected with 401", func(t *testing.T) {
		authApp, _, handler := newServer(t)
		authApp.
			On("ValidateToken", mock.Anything, "expired-token").
			Return(uint64(0), errors.SetCustomError(constant.ErrUnauthorize)).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/booking/history", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid token reaches the handler with the user id", func(t *testing.T) {
		authApp, bookingApp, handler := newServer(t)
		authApp.
			On("ValidateToken", mock.Anything, "good-token").
			Return(uint64(42), nil).
			Once()
		bookingApp.
			On("History", mock.Anything, uint64(42)).
			Return(&model.HistoryResponse{History: []model.BookingHistoryItem{}}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/booking/history", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})
}

func TestBookEndpoint(t *testing.T) {
	authApp, bookingApp, handler := newServer(t)
	authApp.
		On("ValidateToken", mock.Anything, "good-token").
		Return(uint64(1), nil).
		Once()
	bookingApp.
		On("Book", mock.Anything, uint64(1), &model.BookingRequest{
			CylinderType:  "19kg",
			PaymentMethod: "card",
		}).
		Return(&model.BookingResponse{
			Message: "cylinder booked successfully",
			Booking: model.BookingDetail{
				Type:        "19kg",
				Payment:     "card",
				Date:        "2026-05-10",
				DeliveredBy: "2026-05-13",
				Status:      "Pending",
			},
		}, nil).
		Once()

	body := `{"cylinderType":"19kg","paymentMethod":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/api/booking/book", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var res model.BookingResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Booking.Status != "Pending" || res.Booking.DeliveredBy != "2026-05-13" {
		t.Fatalf("response = %+v", res)
	}
}

func TestMeEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authApp, _, handler := newServer(t)
		authApp.
			On("ValidateToken", mock.Anything, "good-token").
			Return(uint64(1), nil).
			Once()
		authApp.
			On("Me", mock.Anything, uint64(1)).
			Return(&model.MeResponse{
				User: model.UserProfile{
					Name:  "Alice",
					Email: "a@x.com",
					Phone: "1234567890",
				},
			}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})

	t.Run("deleted user maps to 404", func(t *testing.T) {
		authApp, _, handler := newServer(t)
		authApp.
			On("ValidateToken", mock.Anything, "good-token").
			Return(uint64(9), nil).
			Once()
		authApp.
			On("Me", mock.Anything, uint64(9)).
			Return(nil, errors.SetCustomError(constant.ErrProfileNotFound)).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
