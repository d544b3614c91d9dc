package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxDocumentSize = 1 << 20

type OrderLifecycle interface {
	Register(ctx context.Context, in entities.OrderInput) (string, error)
	ShipDocument(ctx context.Context, doc []byte) (string, error)
	Deliver(ctx context.Context, trackingCode string) error
	DeliverAt(ctx context.Context, trackingCode string, confirmedAt time.Time) error
	GetOrder(ctx context.Context, orderID string) (entities.OrderStatus, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderLifecycle
}

func NewHTTPHandler(logger *slog.Logger, svc OrderLifecycle) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.RegisterOrder)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Post("/shipments", h.ShipOrder)
	r.Post("/deliveries", h.DeliverOrder)
}

// RegisterOrder validates and stores a new order.
// @Summary      Register an order
// @Description  Validates the order fields and stores an order request. The order id is derived from the fields and the capture time.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      RegisterOrderRequest  true  "Order fields"
// @Success      201    {object}  RegisterOrderResponse
// @Failure      400    {object}  utils.ErrorResponse "Invalid field"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *HTTPHandler) RegisterOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req RegisterOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	orderID, err := h.svc.Register(ctx, RegisterOrderJSONToEntity(req))
	observe(transitionRegister, start, err)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, RegisterOrderResponse{OrderID: orderID}, http.StatusCreated)
}

// GetOrder returns the lifecycle status of an order.
// @Summary      Get order status
// @Description  Returns the order request with its shipment and delivery, if any
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order id, 32 hex characters"
// @Success      200       {object}  OrderStatus
// @Failure      400       {object}  utils.ErrorResponse "Malformed order id"
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Failure      500       {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	orderID := chi.URLParam(r, "order_id")

	status, err := h.svc.GetOrder(ctx, orderID)
	observe(queryOrder, start, err)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderStatusEntityToJSON(status), http.StatusOK)
}

// ShipOrder ships a registered order.
// @Summary      Ship an order
// @Description  Accepts a shipment trigger document naming the order in order_id and returns the tracking code
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        document  body      ShipmentRequest  true  "Shipment trigger document"
// @Success      201       {object}  ShipmentResponse
// @Failure      400       {object}  utils.ErrorResponse "Invalid document or malformed order id"
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Failure      409       {object}  utils.ErrorResponse "Order already shipped"
// @Failure      500       {object}  utils.ErrorResponse "Internal server error"
// @Router       /shipments [post]
func (h *HTTPHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	code, err := h.svc.ShipDocument(ctx, doc)
	observe(transitionShip, start, err)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, ShipmentResponse{TrackingCode: code}, http.StatusCreated)
}

// DeliverOrder confirms the delivery of a shipment.
// @Summary      Confirm a delivery
// @Description  Confirms delivery of the shipment with the given tracking code, at delivered_at or now
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        delivery  body      DeliveryRequest  true  "Delivery confirmation"
// @Success      200       {object}  DeliveryResponse
// @Failure      400       {object}  utils.ErrorResponse "Malformed tracking code"
// @Failure      404       {object}  utils.ErrorResponse "Shipment not found"
// @Failure      409       {object}  utils.ErrorResponse "Already delivered"
// @Failure      422       {object}  utils.ErrorResponse "Invalid delivery day"
// @Failure      500       {object}  utils.ErrorResponse "Internal server error"
// @Router       /deliveries [post]
func (h *HTTPHandler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req DeliveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var err error
	if req.DeliveredAt != nil {
		err = h.svc.DeliverAt(ctx, req.TrackingCode, *req.DeliveredAt)
	} else {
		err = h.svc.Deliver(ctx, req.TrackingCode)
	}
	observe(transitionDeliver, start, err)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, DeliveryResponse{TrackingCode: req.TrackingCode, Delivered: true}, http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		vErr *entities.ValidationError
		mErr *entities.MalformedReferenceError
		nErr *entities.NotFoundError
	)

	switch {
	case errors.As(err, &vErr):
		utils.WriteFieldError(w, vErr.Error(), vErr.Field, http.StatusBadRequest)
	case errors.As(err, &mErr):
		utils.WriteError(w, mErr.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &nErr):
		utils.WriteError(w, nErr.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidDeliveryDay):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func observe(transition string, start time.Time, err error) {
	transitionsTotal.WithLabelValues(transition, result(err)).Inc()
	transitionDuration.WithLabelValues(transition).Observe(time.Since(start).Seconds())
}
