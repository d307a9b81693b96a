package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/app"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

// iconFormField is the multipart field carrying the profile icon.
const iconFormField = "icon"

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AccountService.Me(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: profile}, http.StatusOK)
}

func (h *Handler) changeNickname(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.NicknameRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	if err = h.services.AccountService.ChangeNickname(r.Context(), accountID, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgNicknameChanged}, http.StatusOK)
}

func (h *Handler) changeIcon(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	icon, err := h.readIcon(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	url, err := h.services.AccountService.ChangeIcon(r.Context(), accountID, icon)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.IconResponse{
		Success:     true,
		Message:     app.MsgIconChanged,
		ProfileIcon: url,
	}, http.StatusOK)
}

// readIcon reads the icon part of a multipart upload. The body is capped
// at the configured upload size; anything larger is rejected without being
// buffered.
func (h *Handler) readIcon(w http.ResponseWriter, r *http.Request) (models.Icon, error) {
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	file, _, err := r.FormFile(iconFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return models.Icon{}, validators.ErrIconTooLarge
		case errors.Is(err, http.ErrMissingFile):
			return models.Icon{}, validators.ErrIconMissing
		default:
			log.Err(err).Msg("invalid multipart form")
			return models.Icon{}, ErrInvalidBody
		}
	}
	defer file.Close()

	reader := io.Reader(file)
	if h.maxUploadSize > 0 {
		reader = io.LimitReader(file, h.maxUploadSize+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		log.Err(err).Msg("error reading icon")
		return models.Icon{}, ErrInvalidBody
	}

	// The part's filename and Content-Type are client supplied and ignored;
	// the stored type is sniffed from the body.
	return models.Icon{
		Size: int64(len(body)),
		Body: body,
	}, nil
}
