package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/gas-booking/application/auth"
	bookingapp "github.com/muhammadheryan/gas-booking/application/booking"
	"github.com/muhammadheryan/gas-booking/constant"
	"github.com/muhammadheryan/gas-booking/model"
	utilsContext "github.com/muhammadheryan/gas-booking/utils/context"
	"github.com/muhammadheryan/gas-booking/utils/errors"
	validatorx "github.com/muhammadheryan/gas-booking/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	BookingApp bookingapp.BookingApp
}

func NewTransport(AuthApp authapp.AuthApp, BookingApp bookingapp.BookingApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    AuthApp,
		BookingApp: BookingApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Health check
	mux.HandleFunc("/", rh.Health).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/api/auth/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/api/auth/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/api/auth/me", rh.Me).Methods(http.MethodGet)
	mux.HandleFunc("/api/booking/book", rh.Book).Methods(http.MethodPost)
	mux.HandleFunc("/api/booking/history", rh.History).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Gas Booking System API is running."))
}

// Register handler
// @Summary Register user
// @Description Register a new user for cylinder booking
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ForgotPassword handler
// @Summary Request a password reset token
// @Description Issues a short-lived reset token for the account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} model.ForgotPasswordResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /api/auth/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.ForgotPassword(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Me handler
// @Summary Get authenticated user profile
// @Description Resolves the bearer token to the user's public profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AuthApp.Me(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Book handler
// @Summary Book a gas cylinder
// @Description Creates a booking with a delivery estimate three days out
// @Tags Booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BookingRequest true "Booking Request"
// @Success 201 {object} model.BookingResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /api/booking/book [post]
func (s *RestHandler) Book(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BookingApp.Book(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// History handler
// @Summary List booking history
// @Description Returns the user's bookings, most recent first
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HistoryResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /api/booking/history [get]
func (s *RestHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.BookingApp.History(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
