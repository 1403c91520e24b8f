package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "urbanhelp/database/repository/booking"
	"urbanhelp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:        "bk-1",
		ServiceID: "svc-1",
		Duration:  "2 hours",
		Charge:    1500,
		Date:      time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		Time:      "10:00",
		ClientInfo: models.ClientInfo{
			Name:     "Asha Shrestha",
			Email:    "asha@example.com",
			Phone:    "9841000000",
			Location: "Kathmandu",
			Address:  "Baneshwor-10",
		},
		Status: models.StatusPendingApproval,
	}
}

func testWorker() *models.ApprovedWorker {
	return &models.ApprovedWorker{
		ID:    "wk-1",
		Name:  "Ram Thapa",
		Email: "ram@example.com",
		Phone: "9851000000",
	}
}

func TestApproveBooking(t *testing.T) {
	engine, bk, wk, _, disp := newTestEngine()

	b := pendingBooking()
	approved := *b
	approved.IsApproved = true
	approved.ApprovedWorkerID = "wk-1"
	approved.Status = models.StatusApproved

	bk.On("GetByID", "bk-1").Return(b, nil).Once()
	wk.On("GetByID", "wk-1").Return(testWorker(), nil)
	bk.On("ApproveTransactionally", mock.Anything, "bk-1", mock.AnythingOfType("*models.ApprovedBooking")).Return(nil)
	bk.On("GetByID", "bk-1").Return(&approved, nil).Once()

	res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.Booking.IsApproved)
	assert.Equal(t, models.StatusApproved, res.Booking.Status)
	assert.Equal(t, "wk-1", res.Booking.ApprovedWorkerID)
	assert.NotEmpty(t, res.ApprovedBookingID)
	assert.Equal(t, 1, disp.ApprovedCalls)

	// The snapshot carries the original booking's fields and identity.
	require.NotNil(t, disp.LastApproved)
	assert.Equal(t, "bk-1", disp.LastApproved.OriginalBookingID)
	assert.Equal(t, "wk-1", disp.LastApproved.ApprovedWorkerID)
	assert.Equal(t, b.Charge, disp.LastApproved.Charge)
	assert.Equal(t, b.ClientInfo, disp.LastApproved.ClientInfo)
	assert.False(t, disp.LastApproved.IsPaid)
	assert.Equal(t, models.StatusApproved, disp.LastApproved.Status)
	bk.AssertExpectations(t)
}

func TestApproveBookingNotFound(t *testing.T) {
	engine, bk, _, _, disp := newTestEngine()

	bk.On("GetByID", "bk-missing").Return(nil, nil)

	res, err := engine.Approve(context.Background(), "bk-missing", "wk-1")
	assert.Nil(t, res)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Zero(t, disp.ApprovedCalls)
}

func TestApproveBookingAlreadyApproved(t *testing.T) {
	// payment_pending and payment_failed only occur after an approval, so a
	// second approve must be rejected from them too.
	statuses := []models.BookingStatus{
		models.StatusApproved,
		models.StatusCompleted,
		models.StatusPaymentPending,
		models.StatusPaymentFailed,
	}
	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			engine, bk, wk, _, disp := newTestEngine()

			b := pendingBooking()
			b.Status = status
			b.IsApproved = true
			bk.On("GetByID", "bk-1").Return(b, nil)

			res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
			assert.Nil(t, res)
			assert.True(t, IsKind(err, KindConflict))
			assert.Zero(t, disp.ApprovedCalls)
			wk.AssertNotCalled(t, "GetByID", mock.Anything)
			bk.AssertNotCalled(t, "ApproveTransactionally", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestApproveBookingCancelled(t *testing.T) {
	engine, bk, _, _, disp := newTestEngine()

	b := pendingBooking()
	b.Status = models.StatusCancelled
	bk.On("GetByID", "bk-1").Return(b, nil)

	res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
	assert.Nil(t, res)
	assert.True(t, IsKind(err, KindConflict))
	assert.Zero(t, disp.ApprovedCalls)
}

func TestApproveBookingWorkerNotFound(t *testing.T) {
	engine, bk, wk, _, disp := newTestEngine()

	bk.On("GetByID", "bk-1").Return(pendingBooking(), nil)
	wk.On("GetByID", "wk-missing").Return(nil, nil)

	res, err := engine.Approve(context.Background(), "bk-1", "wk-missing")
	assert.Nil(t, res)
	assert.True(t, IsKind(err, KindNotFound))
	assert.Zero(t, disp.ApprovedCalls)
	bk.AssertNotCalled(t, "ApproveTransactionally", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveBookingConcurrentConflict(t *testing.T) {
	engine, bk, wk, _, disp := newTestEngine()

	bk.On("GetByID", "bk-1").Return(pendingBooking(), nil)
	wk.On("GetByID", "wk-1").Return(testWorker(), nil)
	bk.On("ApproveTransactionally", mock.Anything, "bk-1", mock.Anything).Return(bookingRepo.ErrApprovalConflict)

	res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
	assert.Nil(t, res)
	assert.True(t, IsKind(err, KindConflict))
	assert.Zero(t, disp.ApprovedCalls)
}

func TestApproveBookingTransactionFailureDispatchesNothing(t *testing.T) {
	engine, bk, wk, _, disp := newTestEngine()

	bk.On("GetByID", "bk-1").Return(pendingBooking(), nil)
	wk.On("GetByID", "wk-1").Return(testWorker(), nil)
	bk.On("ApproveTransactionally", mock.Anything, "bk-1", mock.Anything).Return(errors.New("txn aborted"))

	res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
	assert.Nil(t, res)
	assert.True(t, IsKind(err, KindPersistence))
	assert.Zero(t, disp.ApprovedCalls)
}

func TestApproveBookingRefetchFallback(t *testing.T) {
	engine, bk, wk, _, disp := newTestEngine()

	bk.On("GetByID", "bk-1").Return(pendingBooking(), nil).Once()
	wk.On("GetByID", "wk-1").Return(testWorker(), nil)
	bk.On("ApproveTransactionally", mock.Anything, "bk-1", mock.Anything).Return(nil)
	bk.On("GetByID", "bk-1").Return(nil, errors.New("transient")).Once()

	res, err := engine.Approve(context.Background(), "bk-1", "wk-1")
	require.NoError(t, err)

	// The commit succeeded, so the returned booking reflects it even when the
	// re-fetch fails.
	assert.True(t, res.Booking.IsApproved)
	assert.Equal(t, models.StatusApproved, res.Booking.Status)
	assert.Equal(t, "wk-1", res.Booking.ApprovedWorkerID)
	assert.Equal(t, 1, disp.ApprovedCalls)
}
