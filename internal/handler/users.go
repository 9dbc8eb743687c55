package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/VladKvetkin/takeaway/internal/metrics"
	"github.com/VladKvetkin/takeaway/internal/models"
	"github.com/VladKvetkin/takeaway/internal/storage"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

const userNotFoundMessage = "user not found"

func (h *Handler) GetUser(res http.ResponseWriter, req *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		zap.L().Info("cannot parse user id", zap.Error(err))

		writeError(res, http.StatusNotFound, userNotFoundMessage)
		return
	}

	account, err := h.storage.GetAccount(req.Context(), accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			zap.L().Info("user not found", zap.Int64("UserID", accountID))

			writeError(res, http.StatusNotFound, userNotFoundMessage)
			return
		}

		metrics.OperationErrorsTotal.WithLabelValues("get_user").Inc()
		zap.L().Info("error get account", zap.Error(err))

		writeError(res, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(res, http.StatusOK, models.AccountResponse{
		ID:         account.ID,
		Name:       account.Name,
		Surname:    account.Surname,
		Email:      account.Email,
		Phone:      account.Phone,
		Address:    account.Address,
		PostalCode: account.PostalCode,
		City:       account.City,
		Country:    account.Country,
		BirthDate:  account.BirthDate,
		CreatedAt:  account.CreatedAt.Format(time.RFC3339),
	})
}
