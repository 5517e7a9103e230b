package queries

import (
	"context"

	"pickup/internal/core/domain/model/pickup"
)

// JournalReader is the read side of ports.PickupJournal.
type JournalReader interface {
	List(ctx context.Context, limit int) ([]*pickup.Entry, error)
}

type GetPickupJournalQueryHandler struct {
	journal JournalReader
}

func NewGetPickupJournalQueryHandler(journal JournalReader) GetPickupJournalQueryHandler {
	return GetPickupJournalQueryHandler{journal: journal}
}

// Handle returns entries newest first.
func (h GetPickupJournalQueryHandler) Handle(
	ctx context.Context,
	query GetPickupJournalQuery,
) ([]GetPickupJournalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.journal.List(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	result := make([]GetPickupJournalQueryResponse, 0, len(entries))
	for _, e := range entries {
		resp := GetPickupJournalQueryResponse{
			ID:         e.ID().String(),
			OrderID:    e.OrderID().String(),
			Status:     e.Status().String(),
			Strategy:   e.Strategy().String(),
			Attempts:   e.Attempts(),
			Ambiguous:  e.IsAmbiguous(),
			Resolution: e.Resolution().String(),
			CreatedAt:  e.CreatedAt(),
			ResolvedAt: e.ResolvedAt(),
		}
		if loc := e.Location(); loc != nil {
			id := loc.Int64()
			resp.LocationID = &id
		}
		result = append(result, resp)
	}
	return result, nil
}
