package services

import (
	"context"

	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
}

type MockStore struct {
	mock.Mock
	registrations MockRegistrationStore
	feedbacks     MockFeedbackStore
}

func (m *MockStore) Registrations() store.RegistrationStore { return &m.registrations }
func (m *MockStore) Feedbacks() store.FeedbackStore         { return &m.feedbacks }
func (m *MockStore) Backend() string                        { return "mock" }

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error { return nil }

type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) Create(ctx context.Context, reg *types.Registration) (string, error) {
	args := m.Called(ctx, reg)
	return args.String(0), args.Error(1)
}

func (m *MockRegistrationStore) List(ctx context.Context) ([]*types.Registration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Registration), args.Error(1)
}

func (m *MockRegistrationStore) FindByEmail(ctx context.Context, normalizedEmail string) ([]*types.Registration, error) {
	args := m.Called(ctx, normalizedEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Registration), args.Error(1)
}

func (m *MockRegistrationStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) Create(ctx context.Context, fb *types.Feedback) (string, error) {
	args := m.Called(ctx, fb)
	return args.String(0), args.Error(1)
}

func (m *MockFeedbackStore) List(ctx context.Context) ([]*types.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Feedback), args.Error(1)
}

func (m *MockFeedbackStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// compile-time checks
var (
	_ store.Store             = (*MockStore)(nil)
	_ store.RegistrationStore = (*MockRegistrationStore)(nil)
	_ store.FeedbackStore     = (*MockFeedbackStore)(nil)
)
