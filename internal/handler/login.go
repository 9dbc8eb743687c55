package handler

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VladKvetkin/takeaway/internal/metrics"
	"github.com/VladKvetkin/takeaway/internal/models"
	"github.com/VladKvetkin/takeaway/internal/storage"
	"go.uber.org/zap"
)

const invalidCredentialsMessage = "invalid credentials"

func (h *Handler) Login(res http.ResponseWriter, req *http.Request) {
	var requestModel models.LoginRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode login request to json", zap.Error(err))

		writeError(res, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.storage.FindAccountByCredentials(req.Context(), requestModel.Email, h.generatePasswordHash(requestModel.Password))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			zap.L().Info("error email and password hash not found", zap.String("email", requestModel.Email))

			writeError(res, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}

		metrics.OperationErrorsTotal.WithLabelValues("login").Inc()
		zap.L().Info("error find account", zap.Error(err))

		writeError(res, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(res, http.StatusOK, models.LoginResponse{
		ID:         account.ID,
		Name:       account.Name,
		Surname:    account.Surname,
		Email:      account.Email,
		Phone:      account.Phone,
		Address:    account.Address,
		PostalCode: account.PostalCode,
		City:       account.City,
		Country:    account.Country,
	})
}

// An empty password stays empty so the NOT NULL column rejects it.
func (h *Handler) generatePasswordHash(password string) string {
	if password == "" {
		return ""
	}

	passwordHash := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(passwordHash[:])
}
