package booking

import (
	"context"

	"urbanhelp/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// Mock repositories

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetAll() ([]models.Booking, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByClientEmail(email string) ([]models.Booking, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	args := m.Called(id, updateDoc)
	return args.Error(0)
}

func (m *MockBookingRepo) GetApprovedByID(id string) (*models.ApprovedBooking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovedBooking), args.Error(1)
}

func (m *MockBookingRepo) GetApprovedByOriginalID(originalID string) (*models.ApprovedBooking, error) {
	args := m.Called(originalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovedBooking), args.Error(1)
}

func (m *MockBookingRepo) GetApprovedByClientEmail(email string) ([]models.ApprovedBooking, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApprovedBooking), args.Error(1)
}

func (m *MockBookingRepo) UpdateApprovedSetDocument(id string, updateDoc bson.M) error {
	args := m.Called(id, updateDoc)
	return args.Error(0)
}

func (m *MockBookingRepo) ApproveTransactionally(ctx context.Context, bookingID string, snapshot *models.ApprovedBooking) error {
	args := m.Called(ctx, bookingID, snapshot)
	return args.Error(0)
}

func (m *MockBookingRepo) SetPaidTransactionally(ctx context.Context, bookingID string, isPaid bool, status models.BookingStatus) error {
	args := m.Called(ctx, bookingID, isPaid, status)
	return args.Error(0)
}

type MockWorkerRepo struct {
	mock.Mock
}

func (m *MockWorkerRepo) GetByID(id string) (*models.ApprovedWorker, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApprovedWorker), args.Error(1)
}

func (m *MockWorkerRepo) GetAll() ([]models.ApprovedWorker, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApprovedWorker), args.Error(1)
}

func (m *MockWorkerRepo) Create(w *models.ApprovedWorker) error {
	args := m.Called(w)
	return args.Error(0)
}

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) GetByID(id string) (*models.Service, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepo) GetAll() ([]models.Service, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepo) Create(s *models.Service) error {
	args := m.Called(s)
	return args.Error(0)
}

// RecordingDispatcher counts dispatches instead of delivering them.
type RecordingDispatcher struct {
	ApprovedCalls  int
	CancelledCalls int
	PaymentCalls   int

	LastApproved    *models.ApprovedBooking
	LastTransaction string
}

func (d *RecordingDispatcher) BookingApproved(b *models.Booking, snapshot *models.ApprovedBooking, worker *models.ApprovedWorker) {
	d.ApprovedCalls++
	d.LastApproved = snapshot
}

func (d *RecordingDispatcher) BookingCancelled(b *models.Booking) {
	d.CancelledCalls++
}

func (d *RecordingDispatcher) PaymentConfirmed(b *models.Booking, transactionID string) {
	d.PaymentCalls++
	d.LastTransaction = transactionID
}

func newTestEngine() (*DefaultEngine, *MockBookingRepo, *MockWorkerRepo, *MockServiceRepo, *RecordingDispatcher) {
	bk := new(MockBookingRepo)
	wk := new(MockWorkerRepo)
	sv := new(MockServiceRepo)
	disp := &RecordingDispatcher{}
	engine := &DefaultEngine{
		Repo:       bk,
		Workers:    wk,
		Services:   sv,
		Dispatcher: disp,
	}
	return engine, bk, wk, sv, disp
}
