package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/app"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/models"
)

var kindStatusMap = map[app.Kind]int{
	app.KindValidation: http.StatusBadRequest,
	app.KindConflict:   http.StatusBadRequest,
	app.KindAuth:       http.StatusUnauthorized,
	app.KindNotFound:   http.StatusNotFound,
	app.KindDependency: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[app.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text safe to show the client. Dependency
// failures never leak their cause.
func messageFromError(err error) string {
	var appErr *app.Error
	if app.KindOf(err) == app.KindDependency || !errors.As(err, &appErr) {
		return app.MsgInternalServerError
	}
	return appErr.Message
}

// writeError logs err and writes the {success:false, message} envelope with
// the status matching its kind.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Response{Success: false, Message: messageFromError(err)}, status)
}
