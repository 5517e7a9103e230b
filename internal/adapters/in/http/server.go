// Package http serves the shopper-facing pickup pages and the diagnostic
// journal API generated from api/http/openapi.yml.
package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/pickup"
	"pickup/internal/generated/servers"
)

const (
	healthy              = "Healthy"
	headerAcceptLanguage = "Accept-Language"
)

var _ servers.ServerInterface = (*Server)(nil)

type PickupConfirmer interface {
	ConfirmPickup(ctx context.Context, orderID, token string) commands.ConfirmPickupResult
}

type PickupPreviewer interface {
	Preview(ctx context.Context, orderID, token string) queries.GetPickupPreviewQueryResponse
}

type JournalLister interface {
	Handle(ctx context.Context, query queries.GetPickupJournalQuery) ([]queries.GetPickupJournalQueryResponse, error)
}

// Server implements servers.ServerInterface on top of the pickup use cases.
type Server struct {
	confirmer PickupConfirmer
	previewer PickupPreviewer
	journal   JournalLister

	localizer *Localizer
}

func NewServer(
	confirmer PickupConfirmer,
	previewer PickupPreviewer,
	journal JournalLister,
	localizer *Localizer,
) *Server {
	return &Server{
		confirmer: confirmer,
		previewer: previewer,
		journal:   journal,
		localizer: localizer,
	}
}

// confirmRequest accepts both JSON and form bodies.
type confirmRequest struct {
	OrderID string `json:"order_id" form:"order_id"`
	Token   string `json:"token" form:"token"`
}

func (s *Server) GetRoot(ctx echo.Context) error {
	return ctx.String(http.StatusOK, healthy)
}

func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, healthy)
}

// GetPickupConfirm handles GET /pickup/confirm. It renders the confirmation
// button when the link is usable and the reason otherwise.
func (s *Server) GetPickupConfirm(ctx echo.Context, params servers.GetPickupConfirmParams) error {
	tag := s.localizer.Match(ctx.Request().Header.Get(headerAcceptLanguage))
	preview := s.previewer.Preview(ctx.Request().Context(), deref(params.OrderId), deref(params.Token))

	if preview.Status != pickup.Ready {
		page, err := s.localizer.renderMessagePage(tag, preview.Status)
		if err != nil {
			return err
		}
		return ctx.HTMLBlob(HTTPStatus(preview.Status), page)
	}

	page, err := s.localizer.renderConfirmPage(tag, preview.OrderID, preview.Token, preview.OrderName)
	if err != nil {
		return err
	}
	return ctx.HTMLBlob(http.StatusOK, page)
}

// ExecutePickupConfirm handles POST /pickup/confirm/execute and answers with
// an HTML fragment the confirmation page drops into place.
func (s *Server) ExecutePickupConfirm(ctx echo.Context) error {
	tag := s.localizer.Match(ctx.Request().Header.Get(headerAcceptLanguage))

	status := pickup.BadRequest
	var req confirmRequest
	if err := ctx.Bind(&req); err == nil {
		status = s.confirmer.ConfirmPickup(ctx.Request().Context(), req.OrderID, req.Token).Status
	}

	body, err := s.localizer.renderFragment(tag, status)
	if err != nil {
		return err
	}
	return ctx.HTMLBlob(HTTPStatus(status), body)
}

// ListPickups handles GET /api/v1/pickups.
func (s *Server) ListPickups(ctx echo.Context, params servers.ListPickupsParams) error {
	limit := queries.DefaultJournalLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetPickupJournalQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	entries, err := s.journal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list pickups",
		})
	}

	response := make([]servers.PickupEntry, 0, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to list pickups",
			})
		}

		response = append(response, servers.PickupEntry{
			Id:         id,
			OrderId:    e.OrderID,
			Status:     e.Status,
			Strategy:   e.Strategy,
			LocationId: e.LocationID,
			Attempts:   e.Attempts,
			Ambiguous:  e.Ambiguous,
			Resolution: servers.PickupEntryResolution(e.Resolution),
			CreatedAt:  e.CreatedAt,
			ResolvedAt: e.ResolvedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
