package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/api-activity/internal/app"
	"github.com/MKhiriev/api-activity/internal/logger"
	"github.com/MKhiriev/api-activity/internal/utils"
	"github.com/MKhiriev/api-activity/internal/validators"
	"github.com/MKhiriev/api-activity/models"
)

// maxRegisterBodyBytes caps the registration request body.
const maxRegisterBodyBytes = 1 << 20

// register accepts either a JSON body {"username":..,"password":..} or an
// urlencoded/multipart form with the same field names.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := credentialsFromBody(w, r)
	if err != nil {
		log.Err(err).Msg("invalid registration body")
		h.writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Register(ctx, credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message:  app.MsgUserRegistered,
		Username: credentials.Username,
	}, http.StatusCreated)
}

func (h *Handler) sensitive(w http.ResponseWriter, r *http.Request) {
	username, _ := utils.GetUsernameFromContext(r.Context())

	utils.WriteJSON(w, models.SensitiveResponse{
		Message:  app.MsgAccessGranted,
		Username: username,
	}, http.StatusOK)
}

func credentialsFromBody(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRegisterBodyBytes)

	var credentials models.Credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return credentials, nil
	}

	if err := r.ParseMultipartForm(maxRegisterBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	credentials.Username = r.PostFormValue(validators.FieldUsername)
	credentials.Password = r.PostFormValue(validators.FieldPassword)

	return credentials, nil
}
