package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/app"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	account, err := h.services.AccountService.Register(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: app.MsgRegistered,
		Data: models.RegisterResponseData{
			Username: account.Username,
			Nickname: account.Nickname,
			Tag:      account.Tag,
		},
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	token, err := h.services.AccountService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", request.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: app.MsgLoggedIn,
		Token:   token.SignedString,
	}, http.StatusOK)
}
