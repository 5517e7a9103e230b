package queries_test

import (
	"testing"
	"time"

	"pickup/internal/adapters/out/memory"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/fulfillment"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPickupJournalQueryHandler_Handle(t *testing.T) {
	journal := memory.NewPickupJournal()
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	loc := kernel.MustNewLocationID(79217262692)

	fulfilled, err := pickup.NewEntry(kernel.MustNewOrderID("1001"), pickup.Fulfilled, fulfillment.StrategyExplicit,
		&loc, 1, false, createdAt)
	require.NoError(t, err)
	ambiguous, err := pickup.NewEntry(kernel.MustNewOrderID("1002"), pickup.UpstreamError, fulfillment.StrategyExplicit,
		nil, 1, true, createdAt.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, journal.Add(t.Context(), fulfilled))
	require.NoError(t, journal.Add(t.Context(), ambiguous))

	query, err := queries.NewGetPickupJournalQuery(10)
	require.NoError(t, err)

	result, err := queries.NewGetPickupJournalQueryHandler(journal).Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "1002", result[0].OrderID)
	assert.Equal(t, "UPSTREAM_ERROR", result[0].Status)
	assert.True(t, result[0].Ambiguous)
	assert.Equal(t, "pending", result[0].Resolution)
	assert.Nil(t, result[0].LocationID)

	assert.Equal(t, fulfilled.ID().String(), result[1].ID)
	assert.Equal(t, "FULFILLED", result[1].Status)
	assert.Equal(t, "explicit", result[1].Strategy)
	require.NotNil(t, result[1].LocationID)
	assert.Equal(t, int64(79217262692), *result[1].LocationID)
	assert.Equal(t, createdAt, result[1].CreatedAt)
	assert.Nil(t, result[1].ResolvedAt)
}

func TestGetPickupJournalQueryHandler_UnconstructedQuery(t *testing.T) {
	_, err := queries.NewGetPickupJournalQueryHandler(memory.NewPickupJournal()).
		Handle(t.Context(), queries.GetPickupJournalQuery{})

	assert.ErrorIs(t, err, queries.ErrGetPickupJournalQueryIsNotConstructed)
}
