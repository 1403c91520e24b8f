package booking

import (
	"context"
	"testing"
	"time"

	"urbanhelp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
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
	}
}

func TestCreateBooking(t *testing.T) {
	engine, bk, _, sv, _ := newTestEngine()

	sv.On("GetByID", "svc-1").Return(&models.Service{ID: "svc-1", Title: "Plumbing"}, nil)
	bk.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)

	b, err := engine.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.StatusPendingApproval, b.Status)
	assert.False(t, b.IsApproved)
	assert.False(t, b.IsPaid)
	assert.Empty(t, b.ApprovedWorkerID)
	bk.AssertExpectations(t)
}

func TestCreateBookingValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"missing service", func(r *CreateRequest) { r.ServiceID = "" }},
		{"missing duration", func(r *CreateRequest) { r.Duration = "" }},
		{"negative charge", func(r *CreateRequest) { r.Charge = -1 }},
		{"zero date", func(r *CreateRequest) { r.Date = time.Time{} }},
		{"missing time", func(r *CreateRequest) { r.Time = "" }},
		{"missing client email", func(r *CreateRequest) { r.ClientInfo.Email = "" }},
		{"missing client address", func(r *CreateRequest) { r.ClientInfo.Address = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, bk, _, _, _ := newTestEngine()
			req := validCreateRequest()
			tc.mutate(&req)

			b, err := engine.Create(context.Background(), req)
			assert.Nil(t, b)
			assert.True(t, IsKind(err, KindValidation), "expected validation error, got %v", err)
			bk.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateBookingZeroChargeAllowed(t *testing.T) {
	engine, bk, _, sv, _ := newTestEngine()

	sv.On("GetByID", "svc-1").Return(&models.Service{ID: "svc-1"}, nil)
	bk.On("Create", mock.AnythingOfType("*models.Booking")).Return(nil)

	req := validCreateRequest()
	req.Charge = 0
	_, err := engine.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBookingUnknownService(t *testing.T) {
	engine, bk, _, sv, _ := newTestEngine()

	sv.On("GetByID", "svc-missing").Return(nil, nil)

	req := validCreateRequest()
	req.ServiceID = "svc-missing"
	b, err := engine.Create(context.Background(), req)
	assert.Nil(t, b)
	assert.True(t, IsKind(err, KindNotFound))
	bk.AssertNotCalled(t, "Create", mock.Anything)
}
