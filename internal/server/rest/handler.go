package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/netops/internal/common"
	"github.com/dmitrijs2005/netops/internal/server/users"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	PhoneNumber *string  `json:"phoneNumber"`
	Occupation  *string  `json:"occupation"`
	Employer    *string  `json:"employer"`
	Country     *string  `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// profileResponse always carries every key; unset optional fields are null.
type profileResponse struct {
	ID          int      `json:"id"`
	UserID      string   `json:"userId"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber *string  `json:"phoneNumber"`
	Occupation  *string  `json:"occupation"`
	Employer    *string  `json:"employer"`
	Country     *string  `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toProfileResponse(u *users.User) profileResponse {
	return profileResponse{
		ID:          u.ID,
		UserID:      u.UserID,
		FullName:    u.FullName,
		Email:       u.Email,
		Password:    u.PasswordHash,
		PhoneNumber: u.PhoneNumber,
		Occupation:  u.Occupation,
		Employer:    u.Employer,
		Country:     u.Country,
		Latitude:    u.Latitude,
		Longitude:   u.Longitude,
	}
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "user_id", user.UserID)
	respondText(w, http.StatusOK, user.UserID)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondText(w, http.StatusOK, user.UserID)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	user, err := s.users.Profile(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toProfileResponse(user))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var req profileUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), userID, users.ProfileUpdate(req))
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toProfileResponse(user))
}

func pathUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := url.PathUnescape(mux.Vars(r)["userId"])
	if err != nil || id == "" {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return "", false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// respondServiceError maps service sentinels onto status codes.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		respondError(w, http.StatusConflict, "user already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		respondError(w, http.StatusNotFound, "user not found")
	default:
		s.logger.Error(r.Context(), err.Error())
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", common.ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", common.ContentTypeText)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
