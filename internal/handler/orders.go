package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/VladKvetkin/takeaway/internal/entities"
	"github.com/VladKvetkin/takeaway/internal/metrics"
	"github.com/VladKvetkin/takeaway/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) CreateOrder(res http.ResponseWriter, req *http.Request) {
	var requestModel models.CreateOrderRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode order request to json", zap.Error(err))

		writeError(res, http.StatusBadRequest, "invalid request body")
		return
	}

	orderID, err := h.storage.CreateOrder(req.Context(), entities.Order{
		UserID:     requestModel.UserID,
		Items:      requestModel.Items,
		Total:      requestModel.Total,
		PickupDate: requestModel.PickupDate,
		PickupTime: requestModel.PickupTime,
		Status:     entities.OrderStatusReceived,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		zap.L().Info("error create order", zap.Error(err))

		writeError(res, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.OrdersCreatedTotal.Inc()

	writeJSON(res, http.StatusCreated, models.CreateOrderResponse{ID: orderID})
}

func (h *Handler) GetOrders(res http.ResponseWriter, req *http.Request) {
	orders, err := h.storage.ListOrders(req.Context())
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_orders").Inc()
		zap.L().Info("error get orders from database", zap.Error(err))

		writeError(res, http.StatusInternalServerError, err.Error())
		return
	}

	responseOrders := make(models.GetOrdersResponse, 0, len(orders))
	for _, order := range orders {
		responseOrders = append(responseOrders, models.OrderResponse{
			ID:         order.ID,
			UserID:     order.UserID,
			Items:      order.Items,
			Total:      formatTotal(order.Total),
			PickupDate: order.PickupDate,
			PickupTime: order.PickupTime,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(res, http.StatusOK, responseOrders)
}

func formatTotal(total *float64) float64 {
	if total == nil {
		return 0
	}

	return *total
}
