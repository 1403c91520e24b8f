package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"urbanhelp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHistoryMergesStores(t *testing.T) {
	engine, bk, wk, sv, _ := newTestEngine()

	older := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	raw := []models.Booking{
		{
			ID:         "bk-1",
			ServiceID:  "svc-1",
			Charge:     1500,
			Date:       newer,
			Status:     models.StatusApproved,
			IsApproved: true,
			ClientInfo: models.ClientInfo{Email: "asha@example.com"},
		},
		{
			ID:         "bk-2",
			ServiceID:  "svc-2",
			Charge:     800,
			Date:       older,
			Status:     models.StatusPendingApproval,
			ClientInfo: models.ClientInfo{Email: "asha@example.com"},
		},
	}
	approved := []models.ApprovedBooking{
		{
			ID:                "ab-1",
			OriginalBookingID: "bk-1",
			ApprovedWorkerID:  "wk-1",
			ServiceID:         "svc-1",
			Charge:            1500,
			Date:              newer,
			Status:            models.StatusApproved,
			IsPaid:            true,
			ClientInfo:        models.ClientInfo{Email: "asha@example.com"},
		},
	}

	bk.On("GetByClientEmail", "asha@example.com").Return(raw, nil)
	bk.On("GetApprovedByClientEmail", "asha@example.com").Return(approved, nil)
	sv.On("GetAll").Return([]models.Service{
		{ID: "svc-1", Title: "Plumbing", Price: 1500},
		{ID: "svc-2", Title: "Cleaning", Price: 800},
	}, nil)
	wk.On("GetAll").Return([]models.ApprovedWorker{
		{ID: "wk-1", Name: "Ram Thapa", Email: "ram@example.com"},
	}, nil)

	views, err := engine.UserHistory(context.Background(), "asha@example.com")
	require.NoError(t, err)

	// One entry per booking: the approved record folds into its original.
	require.Len(t, views, 2)

	// Newest first.
	assert.Equal(t, "bk-1", views[0].ID)
	assert.Equal(t, "bk-2", views[1].ID)

	// Approved fields win for the merged entry.
	merged := views[0]
	assert.Equal(t, "ab-1", merged.ApprovedBookingID)
	assert.True(t, merged.IsPaid)
	assert.Equal(t, models.StatusApproved, merged.Status)
	assert.Equal(t, "Plumbing", merged.Service.Title)
	require.NotNil(t, merged.Worker)
	assert.Equal(t, "Ram Thapa", merged.Worker.Name)

	// The raw-only entry carries no worker and no snapshot id.
	assert.Empty(t, views[1].ApprovedBookingID)
	assert.Nil(t, views[1].Worker)
	assert.Equal(t, "Cleaning", views[1].Service.Title)
}

func TestUserHistoryEmpty(t *testing.T) {
	engine, bk, wk, sv, _ := newTestEngine()

	bk.On("GetByClientEmail", "nobody@example.com").Return([]models.Booking{}, nil)
	bk.On("GetApprovedByClientEmail", "nobody@example.com").Return([]models.ApprovedBooking{}, nil)
	sv.On("GetAll").Return([]models.Service{}, nil)
	wk.On("GetAll").Return([]models.ApprovedWorker{}, nil)

	views, err := engine.UserHistory(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestUserHistoryOrphanSnapshot(t *testing.T) {
	// An approved record whose original was purged still shows up once.
	engine, bk, wk, sv, _ := newTestEngine()

	bk.On("GetByClientEmail", "asha@example.com").Return([]models.Booking{}, nil)
	bk.On("GetApprovedByClientEmail", "asha@example.com").Return([]models.ApprovedBooking{
		{ID: "ab-9", OriginalBookingID: "bk-gone", Status: models.StatusApproved},
	}, nil)
	sv.On("GetAll").Return([]models.Service{}, nil)
	wk.On("GetAll").Return([]models.ApprovedWorker{}, nil)

	views, err := engine.UserHistory(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "bk-gone", views[0].ID)
	assert.Equal(t, "ab-9", views[0].ApprovedBookingID)
	assert.True(t, views[0].IsApproved)
}

func TestUserHistoryDegradesOnCatalogFailure(t *testing.T) {
	engine, bk, wk, sv, _ := newTestEngine()

	bk.On("GetByClientEmail", "asha@example.com").Return([]models.Booking{
		{ID: "bk-1", ServiceID: "svc-1", ClientInfo: models.ClientInfo{Email: "asha@example.com"}},
	}, nil)
	bk.On("GetApprovedByClientEmail", "asha@example.com").Return([]models.ApprovedBooking{}, nil)
	sv.On("GetAll").Return(nil, errors.New("catalog down"))
	wk.On("GetAll").Return(nil, errors.New("directory down"))

	views, err := engine.UserHistory(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "svc-1", views[0].Service.ID)
	assert.Empty(t, views[0].Service.Title)
}

func TestUserHistoryStableOrderForEqualDates(t *testing.T) {
	engine, bk, wk, sv, _ := newTestEngine()

	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	raw := []models.Booking{
		{ID: "bk-c", Date: date, CreatedAt: created, ClientInfo: models.ClientInfo{Email: "asha@example.com"}},
		{ID: "bk-a", Date: date, CreatedAt: created, ClientInfo: models.ClientInfo{Email: "asha@example.com"}},
		{ID: "bk-b", Date: date, CreatedAt: created.Add(time.Hour), ClientInfo: models.ClientInfo{Email: "asha@example.com"}},
	}

	bk.On("GetByClientEmail", "asha@example.com").Return(raw, nil)
	bk.On("GetApprovedByClientEmail", "asha@example.com").Return([]models.ApprovedBooking{}, nil)
	sv.On("GetAll").Return([]models.Service{}, nil)
	wk.On("GetAll").Return([]models.ApprovedWorker{}, nil)

	first, err := engine.UserHistory(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Newest created first, then ID for full ties.
	assert.Equal(t, "bk-b", first[0].ID)
	assert.Equal(t, "bk-a", first[1].ID)
	assert.Equal(t, "bk-c", first[2].ID)

	// The ordering is identical on every call.
	for i := 0; i < 5; i++ {
		again, err := engine.UserHistory(context.Background(), "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestListAll(t *testing.T) {
	engine, bk, wk, sv, _ := newTestEngine()

	bk.On("GetAll").Return([]models.Booking{
		{ID: "bk-1", ServiceID: "svc-1", ApprovedWorkerID: "wk-1", Status: models.StatusApproved},
		{ID: "bk-2", ServiceID: "svc-2", Status: models.StatusPendingApproval},
	}, nil)
	sv.On("GetAll").Return([]models.Service{{ID: "svc-1", Title: "Plumbing"}}, nil)
	wk.On("GetAll").Return([]models.ApprovedWorker{{ID: "wk-1", Name: "Ram Thapa"}}, nil)

	views, err := engine.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Plumbing", views[0].Service.Title)
	require.NotNil(t, views[0].Worker)
	assert.Equal(t, "Ram Thapa", views[0].Worker.Name)
	assert.Nil(t, views[1].Worker)
}
