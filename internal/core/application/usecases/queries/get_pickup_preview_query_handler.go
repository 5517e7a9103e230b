package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

// GetPickupPreviewQueryHandler runs the read-only prefix of the confirmation
// flow: token, ledger, order fetch and state gate. It takes no lock and never
// writes to the ledger.
type GetPickupPreviewQueryHandler struct {
	ledger ports.PickupLedger
	reader ports.OrderReader

	tokens services.CapabilityToken
	gate   services.OrderStateGate

	upstreamTimeout time.Duration
	logger          *slog.Logger
}

func NewGetPickupPreviewQueryHandler(
	ledger ports.PickupLedger,
	reader ports.OrderReader,
	upstreamTimeout time.Duration,
	logger *slog.Logger,
) *GetPickupPreviewQueryHandler {
	return &GetPickupPreviewQueryHandler{
		ledger:          ledger,
		reader:          reader,
		tokens:          services.NewCapabilityToken(),
		gate:            services.NewOrderStateGate(),
		upstreamTimeout: upstreamTimeout,
		logger:          logger.With("component", "pickup-preview"),
	}
}

// Preview builds the query from raw request values; malformed input yields BadRequest.
func (h *GetPickupPreviewQueryHandler) Preview(ctx context.Context, orderID, token string) GetPickupPreviewQueryResponse {
	query, err := NewGetPickupPreviewQuery(orderID, token)
	if err != nil {
		return GetPickupPreviewQueryResponse{Status: pickup.BadRequest}
	}

	resp, err := h.Handle(ctx, query)
	if err != nil {
		return GetPickupPreviewQueryResponse{Status: pickup.Internal}
	}
	return resp
}

func (h *GetPickupPreviewQueryHandler) Handle(
	ctx context.Context,
	query GetPickupPreviewQuery,
) (GetPickupPreviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickupPreviewQueryResponse{}, err
	}

	id := query.OrderID()
	resp := GetPickupPreviewQueryResponse{OrderID: id.String(), Token: query.Token()}

	if !h.tokens.Verify(id, query.Token()) {
		resp.Status = pickup.InvalidToken
		return resp, nil
	}

	confirmed, err := h.ledger.IsConfirmed(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read pickup ledger", "order_id", id.String(), "error", err)
		resp.Status = pickup.Internal
		return resp, nil
	}
	if confirmed {
		resp.Status = pickup.AlreadyConfirmed
		return resp, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, h.upstreamTimeout)
	defer cancel()

	o, err := h.reader.GetOrder(fetchCtx, id)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		resp.Status = pickup.OrderNotFound
		return resp, nil
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to fetch order", "order_id", id.String(), "error", err)
		resp.Status = pickup.UpstreamError
		return resp, nil
	}
	resp.OrderName = o.Name()

	switch err := h.gate.Check(o); {
	case err == nil:
		resp.Status = pickup.Ready
	case errors.Is(err, services.ErrOrderAlreadyFulfilled):
		resp.Status = pickup.AlreadyFulfilled
	case errors.Is(err, services.ErrPaymentIncomplete):
		resp.Status = pickup.PaymentIncomplete
	default:
		resp.Status = pickup.Internal
	}
	return resp, nil
}
