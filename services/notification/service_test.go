package notification

import (
	"context"
	"testing"

	"urbanhelp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(n *models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockNotificationRepo) GetForUser(email string, limit int64) ([]models.Notification, error) {
	args := m.Called(email, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(id string) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepo) MarkAllRead(email string) (int64, error) {
	args := m.Called(email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNotificationRepo) PatchMetadataByRelatedEntity(relatedEntityID string, patch bson.M) error {
	args := m.Called(relatedEntityID, patch)
	return args.Error(0)
}

func TestCreateAssignsID(t *testing.T) {
	repo := new(MockNotificationRepo)
	svc := &DefaultService{Repo: repo}

	repo.On("Create", mock.AnythingOfType("*models.Notification")).Return(nil)

	n := &models.Notification{UserEmail: "asha@example.com", Message: "Booking approved"}
	require.NoError(t, svc.Create(context.Background(), n))
	assert.NotEmpty(t, n.ID)
}

func TestCreateKeepsExistingID(t *testing.T) {
	repo := new(MockNotificationRepo)
	svc := &DefaultService{Repo: repo}

	repo.On("Create", mock.Anything).Return(nil)

	n := &models.Notification{ID: "ntf-1", UserEmail: "asha@example.com"}
	require.NoError(t, svc.Create(context.Background(), n))
	assert.Equal(t, "ntf-1", n.ID)
}

func TestListForUserCapsLimit(t *testing.T) {
	repo := new(MockNotificationRepo)
	svc := &DefaultService{Repo: repo}

	repo.On("GetForUser", "asha@example.com", int64(userNotificationLimit)).
		Return([]models.Notification{{ID: "ntf-1"}}, nil)

	ns, err := svc.ListForUser(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Len(t, ns, 1)
	repo.AssertExpectations(t)
}

func TestSetPaidFlag(t *testing.T) {
	repo := new(MockNotificationRepo)
	svc := &DefaultService{Repo: repo}

	repo.On("PatchMetadataByRelatedEntity", "bk-1", bson.M{"isPaid": true}).Return(nil)

	require.NoError(t, svc.SetPaidFlag(context.Background(), "bk-1", true))
	repo.AssertExpectations(t)
}
