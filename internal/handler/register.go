package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VladKvetkin/takeaway/internal/entities"
	"github.com/VladKvetkin/takeaway/internal/metrics"
	"github.com/VladKvetkin/takeaway/internal/models"
	"github.com/VladKvetkin/takeaway/internal/storage"
	"go.uber.org/zap"
)

const (
	accountCreatedMessage = "account created"
	emailUsedMessage      = "email already used"
)

func (h *Handler) Register(res http.ResponseWriter, req *http.Request) {
	var requestModel models.RegisterRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode register request to json", zap.Error(err))

		writeError(res, http.StatusBadRequest, "invalid request body")
		return
	}

	accountID, err := h.storage.CreateAccount(req.Context(), entities.Account{
		Name:       requestModel.Name,
		Surname:    requestModel.Surname,
		Email:      requestModel.Email,
		Phone:      requestModel.Phone,
		Address:    requestModel.Address,
		PostalCode: requestModel.PostalCode,
		City:       requestModel.City,
		Country:    requestModel.Country,
		BirthDate:  requestModel.BirthDate,
		Password:   h.generatePasswordHash(requestModel.Password),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			zap.L().Info("error email already exists", zap.String("email", requestModel.Email))

			writeError(res, http.StatusBadRequest, emailUsedMessage)
			return
		}

		metrics.OperationErrorsTotal.WithLabelValues("register").Inc()
		zap.L().Info("error create account", zap.Error(err))

		writeError(res, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.AccountsRegisteredTotal.Inc()

	writeJSON(res, http.StatusCreated, models.RegisterResponse{
		ID:      accountID,
		Message: accountCreatedMessage,
	})
}
