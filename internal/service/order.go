package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/entities"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/fingerprint"
	"github.com/SergeyBogomolovv/logistics-tracker/internal/validation"
	"github.com/SergeyBogomolovv/logistics-tracker/pkg/trm"
)

type OrderRepo interface {
	Requests(ctx context.Context) ([]entities.OrderRequest, error)
	AppendRequest(ctx context.Context, o entities.OrderRequest) error
	Shipments(ctx context.Context) ([]entities.OrderShipping, error)
	AppendShipment(ctx context.Context, s entities.OrderShipping) error
	Deliveries(ctx context.Context) ([]entities.DeliveryRecord, error)
	AppendDelivery(ctx context.Context, d entities.DeliveryRecord) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type Option func(*orderService)

// WithClock replaces time.Now as the source of capture, issue and confirmation times.
func WithClock(now func() time.Time) Option {
	return func(s *orderService) {
		s.now = now
	}
}

func WithDeliveryPolicy(p DeliveryPolicy) Option {
	return func(s *orderService) {
		s.policy = p
	}
}

type orderService struct {
	// serializes transitions within the process; txManager covers other processes
	mu sync.Mutex

	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	refs      *validation.References
	policy    DeliveryPolicy
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, opts ...Option) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		refs:      validation.NewReferences(),
		policy:    DeliveryExact,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the raw order fields, stores a new order request and returns its id.
func (s *orderService) Register(ctx context.Context, in entities.OrderInput) (string, error) {
	fields, err := validation.Order(in)
	if err != nil {
		return "", err
	}

	order := entities.OrderRequest{
		OrderFields: fields,
		TimeStamp:   entities.Truncate(s.now()),
	}
	order.OrderID, err = fingerprint.OrderID(fields, order.TimeStamp)
	if err != nil {
		return "", fmt.Errorf("failed to derive order id: %w", err)
	}

	err = s.transition(ctx, func(ctx context.Context) error {
		requests, err := s.repo.Requests(ctx)
		if err != nil {
			return err
		}
		// same fields captured at the same instant are the same request; not appended twice on purpose
		if _, ok := findRequest(requests, order.OrderID); ok {
			return nil
		}
		return s.repo.AppendRequest(ctx, order)
	})
	if err != nil {
		return "", err
	}

	s.cacheRequest(order)
	s.logger.Debug("order registered", slog.String("order_id", order.OrderID))
	return order.OrderID, nil
}

// Ship issues a shipment for a registered order and returns its tracking code.
func (s *orderService) Ship(ctx context.Context, orderID string) (string, error) {
	if err := s.refs.OrderID(orderID); err != nil {
		return "", err
	}
	orderID = strings.ToLower(orderID)

	var shipping entities.OrderShipping
	err := s.transition(ctx, func(ctx context.Context) error {
		order, err := s.lookupRequest(ctx, orderID)
		if err != nil {
			return err
		}

		shipments, err := s.repo.Shipments(ctx)
		if err != nil {
			return err
		}
		if _, ok := findShipmentByOrder(shipments, orderID); ok {
			return fmt.Errorf("%w: order %s is already shipped", entities.ErrInvalidTransition, orderID)
		}

		issuedAt := entities.Truncate(s.now())
		shipping = entities.OrderShipping{
			OrderID:     order.OrderID,
			ProductID:   order.ProductID,
			PhoneNumber: order.PhoneNumber,
			IssuedAt:    issuedAt,
			DeliveryDay: issuedAt.Add(order.OrderType.DeliveryDelay()),
		}
		shipping.TrackingCode = fingerprint.ShippingCode(shipping)

		return s.repo.AppendShipment(ctx, shipping)
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("order shipped",
		slog.String("order_id", orderID),
		slog.String("tracking_code", shipping.TrackingCode),
		slog.Time("delivery_day", shipping.DeliveryDay),
	)
	return shipping.TrackingCode, nil
}

// ShipDocument reads the order id from a shipment trigger document and ships it.
func (s *orderService) ShipDocument(ctx context.Context, doc []byte) (string, error) {
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return "", fmt.Errorf("%w: shipment document is not a json object: %v", entities.ErrInvalidInput, err)
	}

	raw, ok := fields["order_id"]
	if !ok {
		return "", entities.ErrMissingOrderID
	}
	orderID, ok := raw.(string)
	if !ok {
		return "", entities.NewMalformedReferenceError(entities.KindOrderID, fmt.Sprint(raw))
	}
	return s.Ship(ctx, orderID)
}

// Deliver confirms delivery of a shipment at the current time.
func (s *orderService) Deliver(ctx context.Context, trackingCode string) error {
	return s.DeliverAt(ctx, trackingCode, s.now())
}

// DeliverAt confirms delivery of a shipment at confirmedAt.
func (s *orderService) DeliverAt(ctx context.Context, trackingCode string, confirmedAt time.Time) error {
	if err := s.refs.TrackingCode(trackingCode); err != nil {
		return err
	}
	trackingCode = strings.ToLower(trackingCode)
	confirmedAt = entities.Truncate(confirmedAt)

	err := s.transition(ctx, func(ctx context.Context) error {
		shipments, err := s.repo.Shipments(ctx)
		if err != nil {
			return err
		}
		shipping, ok := findShipmentByCode(shipments, trackingCode)
		if !ok {
			return entities.NewNotFoundError(entities.KindTrackingCode, trackingCode)
		}

		deliveries, err := s.repo.Deliveries(ctx)
		if err != nil {
			return err
		}
		if _, ok := findDelivery(deliveries, trackingCode); ok {
			return fmt.Errorf("%w: shipment %s is already delivered", entities.ErrInvalidTransition, trackingCode)
		}

		if !s.policy.Accepts(shipping.DeliveryDay, confirmedAt) {
			return fmt.Errorf("%w: expected %s, confirmed %s", entities.ErrInvalidDeliveryDay,
				shipping.DeliveryDay.Format(time.RFC3339Nano), confirmedAt.Format(time.RFC3339Nano))
		}

		return s.repo.AppendDelivery(ctx, entities.DeliveryRecord{
			TrackingCode: trackingCode,
			TimeStamp:    confirmedAt,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Debug("order delivered", slog.String("tracking_code", trackingCode))
	return nil
}

// GetOrder collects every record known for an order.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.OrderStatus, error) {
	if err := s.refs.OrderID(orderID); err != nil {
		return entities.OrderStatus{}, err
	}
	orderID = strings.ToLower(orderID)

	var status entities.OrderStatus
	err := s.transition(ctx, func(ctx context.Context) error {
		order, err := s.lookupRequest(ctx, orderID)
		if err != nil {
			return err
		}
		status = entities.OrderStatus{Request: order, Status: entities.StatusRequested}

		shipments, err := s.repo.Shipments(ctx)
		if err != nil {
			return err
		}
		shipping, ok := findShipmentByOrder(shipments, orderID)
		if !ok {
			return nil
		}
		shipping.TrackingCode = fingerprint.ShippingCode(shipping)
		status.Status = entities.StatusShipped
		status.Shipping = &shipping

		deliveries, err := s.repo.Deliveries(ctx)
		if err != nil {
			return err
		}
		if delivery, ok := findDelivery(deliveries, shipping.TrackingCode); ok {
			status.Status = entities.StatusDelivered
			status.Delivery = &delivery
		}
		return nil
	})
	if err != nil {
		return entities.OrderStatus{}, err
	}
	return status, nil
}

// OverdueShipments returns shipments whose delivery day has passed without a delivery.
func (s *orderService) OverdueShipments(ctx context.Context) ([]entities.OrderShipping, error) {
	now := entities.Truncate(s.now())

	var overdue []entities.OrderShipping
	err := s.transition(ctx, func(ctx context.Context) error {
		shipments, err := s.repo.Shipments(ctx)
		if err != nil {
			return err
		}
		deliveries, err := s.repo.Deliveries(ctx)
		if err != nil {
			return err
		}

		delivered := make(map[string]struct{}, len(deliveries))
		for _, d := range deliveries {
			delivered[d.TrackingCode] = struct{}{}
		}

		overdue = nil
		for _, sh := range shipments {
			code := fingerprint.ShippingCode(sh)
			if _, ok := delivered[code]; ok {
				continue
			}
			if sh.DeliveryDay.Before(now) {
				sh.TrackingCode = code
				overdue = append(overdue, sh)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return overdue, nil
}

// WarmUpCache loads the count most recent order requests into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	requests, err := s.repo.Requests(ctx)
	if err != nil {
		return fmt.Errorf("failed to read order requests: %w", err)
	}

	start := max(len(requests)-count, 0)
	for _, order := range requests[start:] {
		s.cacheRequest(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(requests)-start))
	return nil
}

func (s *orderService) transition(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fnErr error
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		fnErr = fn(ctx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin or commit failed
		return entities.NewStorageError("commit", "transaction", err)
	}
	return err
}

func (s *orderService) lookupRequest(ctx context.Context, orderID string) (entities.OrderRequest, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.OrderRequest
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
	}

	requests, err := s.repo.Requests(ctx)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	order, ok := findRequest(requests, orderID)
	if !ok {
		return entities.OrderRequest{}, entities.NewNotFoundError(entities.KindOrderID, orderID)
	}

	s.cacheRequest(order)
	return order, nil
}

func (s *orderService) cacheRequest(order entities.OrderRequest) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderID, data)
}

func findRequest(requests []entities.OrderRequest, orderID string) (entities.OrderRequest, bool) {
	for _, r := range requests {
		if r.OrderID == orderID {
			return r, true
		}
	}
	return entities.OrderRequest{}, false
}

func findShipmentByOrder(shipments []entities.OrderShipping, orderID string) (entities.OrderShipping, bool) {
	for _, sh := range shipments {
		if sh.OrderID == orderID {
			return sh, true
		}
	}
	return entities.OrderShipping{}, false
}

// findShipmentByCode matches on the code recomputed from each record, never on the stored one.
func findShipmentByCode(shipments []entities.OrderShipping, code string) (entities.OrderShipping, bool) {
	for _, sh := range shipments {
		if fingerprint.ShippingCode(sh) == code {
			return sh, true
		}
	}
	return entities.OrderShipping{}, false
}

func findDelivery(deliveries []entities.DeliveryRecord, code string) (entities.DeliveryRecord, bool) {
	for _, d := range deliveries {
		if d.TrackingCode == code {
			return d, true
		}
	}
	return entities.DeliveryRecord{}, false
}
