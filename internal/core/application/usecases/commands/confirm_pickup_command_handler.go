package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/order"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/core/domain/services"
	"pickup/internal/core/ports"
	"pickup/internal/pkg/errs"
)

const tracerName = "pickup/commands"

// ConfirmPickupResult is the terminal outcome of one confirmation request.
type ConfirmPickupResult struct {
	Status pickup.Status

	// Strategy is the last request shape sent upstream, StrategyNone if none was sent.
	Strategy fulfillment.Strategy

	Location *kernel.LocationID

	// Attempts counts fulfillment requests sent upstream.
	Attempts int

	// Ambiguous is set when a request may have been applied upstream even
	// though the outcome is UpstreamError.
	Ambiguous bool

	// ManualItems lists the titles of items handed over outside the fulfillment API.
	ManualItems []string

	Receipt *fulfillment.Receipt
}

// ConfirmPickupCommandHandler orchestrates a pickup confirmation.
//
// Sequence:
//   - verify the capability token
//   - hold the per-order ledger lock until the outcome is known
//   - short-circuit orders already confirmed in the ledger
//   - fetch the order and check its payment and fulfillment state
//   - partition line items and resolve the fulfillment location
//   - send fulfillment requests, cascading to a more minimal shape only when
//     upstream rejects a shape as not acceptable
//   - mark the ledger once upstream accepted
//
// Every outcome after token verification is recorded in the journal.
// Nothing is retried outside the cascade, and a request that failed in
// transport is never resent.
//
// Example:
//
//	handler := NewConfirmPickupCommandHandler(ledger, gateway, journal, resolver, planner, 10*time.Second, logger)
//	result := handler.ConfirmPickup(ctx, "1001", token)
//	if result.Status == pickup.Fulfilled {
//	    // customer sees the success page
//	}
type ConfirmPickupCommandHandler struct {
	ledger   ports.PickupLedger
	gateway  ports.OrderGateway
	journal  JournalWriter
	resolver *services.LocationResolver
	planner  services.FulfillmentPlanner

	tokens      services.CapabilityToken
	gate        services.OrderStateGate
	partitioner services.LineItemPartitioner

	upstreamTimeout time.Duration
	logger          *slog.Logger
	tracer          trace.Tracer
	now             func() time.Time
}

func NewConfirmPickupCommandHandler(
	ledger ports.PickupLedger,
	gateway ports.OrderGateway,
	journal JournalWriter,
	resolver *services.LocationResolver,
	planner services.FulfillmentPlanner,
	upstreamTimeout time.Duration,
	logger *slog.Logger,
) *ConfirmPickupCommandHandler {
	return &ConfirmPickupCommandHandler{
		ledger:          ledger,
		gateway:         gateway,
		journal:         journal,
		resolver:        resolver,
		planner:         planner,
		tokens:          services.NewCapabilityToken(),
		gate:            services.NewOrderStateGate(),
		partitioner:     services.NewLineItemPartitioner(),
		upstreamTimeout: upstreamTimeout,
		logger:          logger.With("component", "confirm-pickup"),
		tracer:          otel.Tracer(tracerName),
		now:             time.Now,
	}
}

// ConfirmPickup builds the command from raw request values. Malformed input
// yields BadRequest.
func (h *ConfirmPickupCommandHandler) ConfirmPickup(ctx context.Context, orderID, token string) ConfirmPickupResult {
	cmd, err := NewConfirmPickupCommand(orderID, token)
	if err != nil {
		h.logger.InfoContext(ctx, "rejected malformed pickup request", "order_id", orderID, "error", err)
		return ConfirmPickupResult{Status: pickup.BadRequest}
	}

	result, err := h.Handle(ctx, cmd)
	if err != nil {
		return ConfirmPickupResult{Status: pickup.Internal}
	}
	return result
}

// Handle returns an error only for a command not built by its constructor.
// Every other failure is reported through ConfirmPickupResult.Status.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, command ConfirmPickupCommand) (ConfirmPickupResult, error) {
	if err := command.Validate(); err != nil {
		return ConfirmPickupResult{}, err
	}

	id := command.OrderID()
	ctx, span := h.tracer.Start(ctx, "ConfirmPickup", trace.WithAttributes(attribute.String("pickup.order_id", id.String())))
	defer span.End()

	if !h.tokens.Verify(id, command.Token()) {
		h.logger.InfoContext(ctx, "invalid pickup token", "order_id", id.String())
		span.SetAttributes(attribute.String("pickup.status", pickup.InvalidToken.String()))
		return ConfirmPickupResult{Status: pickup.InvalidToken}, nil
	}

	result := h.confirm(ctx, id)

	h.report(ctx, span, id, result)
	h.record(ctx, id, result)

	return result, nil
}

func (h *ConfirmPickupCommandHandler) confirm(ctx context.Context, id kernel.OrderID) ConfirmPickupResult {
	release, err := h.ledger.Acquire(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return ConfirmPickupResult{Status: pickup.PickupInProgress}
		}
		h.logger.ErrorContext(ctx, "failed to acquire pickup lock", "order_id", id.String(), "error", err)
		return ConfirmPickupResult{Status: pickup.Internal}
	}
	defer release()

	// Once the lock is held the flow runs to completion even if the shopper
	// goes away; every upstream call below is bounded by upstreamTimeout.
	ctx = context.WithoutCancel(ctx)

	confirmed, err := h.ledger.IsConfirmed(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read pickup ledger", "order_id", id.String(), "error", err)
		return ConfirmPickupResult{Status: pickup.Internal}
	}
	if confirmed {
		return ConfirmPickupResult{Status: pickup.AlreadyConfirmed}
	}

	o, err := h.fetchOrder(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ConfirmPickupResult{Status: pickup.OrderNotFound}
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch order", "order_id", id.String(), "error", err)
		return ConfirmPickupResult{Status: pickup.UpstreamError}
	}

	if status, ok := h.checkState(ctx, o); !ok {
		return ConfirmPickupResult{Status: status}
	}

	partition := h.partitioner.Partition(o)
	if partition.IsEmpty() {
		return ConfirmPickupResult{Status: pickup.NoFulfillableItems}
	}

	location, err := h.resolveLocation(ctx, o)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve fulfillment location", "order_id", id.String(), "error", err)
		return ConfirmPickupResult{Status: pickup.LocationUnresolved}
	}

	result := ConfirmPickupResult{
		Location:    &location,
		ManualItems: partition.ManualTitles(),
	}

	if len(partition.AutoFulfillable) == 0 {
		result.Status = pickup.Fulfilled
		h.markConfirmed(ctx, id)
		return result
	}

	plan, err := h.planner.Plan(partition, location)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to plan fulfillment", "order_id", id.String(), "error", err)
		result.Status = pickup.Internal
		return result
	}

	h.fulfill(ctx, id, plan, &result)
	if result.Status == pickup.Fulfilled {
		h.markConfirmed(ctx, id)
	}
	return result
}

func (h *ConfirmPickupCommandHandler) checkState(ctx context.Context, o *order.Order) (pickup.Status, bool) {
	err := h.gate.Check(o)
	switch {
	case err == nil:
		return pickup.Unknown, true
	case errors.Is(err, services.ErrOrderAlreadyFulfilled):
		return pickup.AlreadyFulfilled, false
	case errors.Is(err, services.ErrPaymentIncomplete):
		return pickup.PaymentIncomplete, false
	default:
		h.logger.ErrorContext(ctx, "failed to check order state", "order_id", o.ID().String(), "error", err)
		return pickup.Internal, false
	}
}

// fulfill walks the plan. Only a not-acceptable rejection moves on to the next
// request shape; any other outcome is terminal.
func (h *ConfirmPickupCommandHandler) fulfill(
	ctx context.Context,
	id kernel.OrderID,
	plan []fulfillment.Request,
	result *ConfirmPickupResult,
) {
	for _, req := range plan {
		result.Attempts++
		result.Strategy = req.Strategy()

		receipt, err := h.createFulfillment(ctx, id, req)
		if err == nil {
			result.Status = pickup.Fulfilled
			result.Receipt = &receipt
			return
		}

		if errors.Is(err, fulfillment.ErrRequestNotSent) {
			h.logger.ErrorContext(ctx, "fulfillment request could not be sent",
				"order_id", id.String(), "strategy", req.Strategy().String(), "error", err)
			result.Status = pickup.UpstreamError
			return
		}

		var rejected *fulfillment.RejectedError
		if !errors.As(err, &rejected) {
			h.logger.ErrorContext(ctx, "fulfillment request failed, upstream state unknown",
				"order_id", id.String(), "strategy", req.Strategy().String(), "error", err)
			result.Status = pickup.UpstreamError
			result.Ambiguous = true
			return
		}

		switch rejected.Class {
		case fulfillment.RejectionNotAcceptable:
			h.logger.InfoContext(ctx, "fulfillment shape rejected, trying next",
				"order_id", id.String(), "strategy", req.Strategy().String(), "status_code", rejected.StatusCode)
			continue
		case fulfillment.RejectionItemsUnavailable:
			result.Status = pickup.ItemsUnavailable
		case fulfillment.RejectionOrderInvalid:
			result.Status = pickup.OrderProcessingError
		default:
			result.Status = pickup.UpstreamError
			result.Ambiguous = rejected.IsAmbiguous()
		}

		h.logger.InfoContext(ctx, "fulfillment rejected",
			"order_id", id.String(), "strategy", req.Strategy().String(),
			"class", rejected.Class.String(), "status_code", rejected.StatusCode, "detail", rejected.Detail)
		return
	}

	result.Status = pickup.UpstreamRejected
}

func (h *ConfirmPickupCommandHandler) markConfirmed(ctx context.Context, id kernel.OrderID) {
	if err := h.ledger.MarkConfirmed(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to mark pickup confirmed", "order_id", id.String(), "error", err)
	}
}

func (h *ConfirmPickupCommandHandler) fetchOrder(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, h.upstreamTimeout)
	defer cancel()
	ctx, span := h.tracer.Start(ctx, "GetOrder")
	defer span.End()

	o, err := h.gateway.GetOrder(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get order failed")
	}
	return o, err
}

func (h *ConfirmPickupCommandHandler) resolveLocation(ctx context.Context, o *order.Order) (kernel.LocationID, error) {
	ctx, cancel := context.WithTimeout(ctx, h.upstreamTimeout)
	defer cancel()
	ctx, span := h.tracer.Start(ctx, "ResolveLocation")
	defer span.End()

	location, err := h.resolver.Resolve(ctx, o, h.gateway)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "location unresolved")
		return kernel.LocationID{}, err
	}
	span.SetAttributes(attribute.Int64("pickup.location_id", location.Int64()))
	return location, nil
}

func (h *ConfirmPickupCommandHandler) createFulfillment(
	ctx context.Context,
	id kernel.OrderID,
	req fulfillment.Request,
) (fulfillment.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, h.upstreamTimeout)
	defer cancel()
	ctx, span := h.tracer.Start(ctx, "CreateFulfillment",
		trace.WithAttributes(attribute.String("pickup.strategy", req.Strategy().String())))
	defer span.End()

	receipt, err := h.gateway.CreateFulfillment(ctx, id, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fulfillment not accepted")
	}
	return receipt, err
}

func (h *ConfirmPickupCommandHandler) report(ctx context.Context, span trace.Span, id kernel.OrderID, result ConfirmPickupResult) {
	span.SetAttributes(
		attribute.String("pickup.status", result.Status.String()),
		attribute.Int("pickup.attempts", result.Attempts),
		attribute.Bool("pickup.ambiguous", result.Ambiguous),
	)

	attrs := []any{
		"order_id", id.String(),
		"status", result.Status.String(),
		"strategy", result.Strategy.String(),
		"attempts", result.Attempts,
	}
	if result.Location != nil {
		attrs = append(attrs, "location_id", result.Location.Int64())
	}

	if result.Status.IsOperatorAlert() {
		span.SetStatus(codes.Error, result.Status.String())
		h.logger.ErrorContext(ctx, "pickup confirmation failed", append(attrs, "ambiguous", result.Ambiguous)...)
		return
	}

	h.logger.InfoContext(ctx, "pickup confirmation finished", attrs...)
	if result.Status == pickup.Fulfilled && len(result.ManualItems) > 0 {
		h.logger.InfoContext(ctx, "manual items picked up", "order_id", id.String(), "items", result.ManualItems)
	}
}

// record writes the journal entry even when the request context is gone.
// Journal failures never change the outcome.
func (h *ConfirmPickupCommandHandler) record(ctx context.Context, id kernel.OrderID, result ConfirmPickupResult) {
	entry, err := pickup.NewEntry(id, result.Status, result.Strategy, result.Location, result.Attempts, result.Ambiguous, h.now())
	if err == nil {
		err = h.journal.Add(context.WithoutCancel(ctx), entry)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to record pickup outcome", "order_id", id.String(), "error", err)
	}
}
