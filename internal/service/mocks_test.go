package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthease/internal/backend"
	"healthease/internal/model"
	"healthease/internal/session"
)

// MockAPI is a mock implementation of backend.API.
type MockAPI struct {
	mock.Mock
}

var _ backend.API = (*MockAPI)(nil)

func (m *MockAPI) Login(ctx context.Context, email, password string) (*model.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockAPI) Register(ctx context.Context, req backend.RegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) Verify(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAPI) Doctors(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockAPI) BookAppointment(ctx context.Context, token string, req model.AppointmentRequest) (string, error) {
	args := m.Called(ctx, token, req)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) DashboardStats(ctx context.Context, token string) (*model.DashboardStats, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *MockAPI) SeedDoctors(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) SeedAdmin(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockStore is a mock implementation of session.StoreInterface.
type MockStore struct {
	mock.Mock
}

var _ session.StoreInterface = (*MockStore)(nil)

func (m *MockStore) Get(ctx context.Context, clientID string) (*model.Session, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockStore) Set(ctx context.Context, clientID string, sess model.Session) error {
	args := m.Called(ctx, clientID, sess)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockStore) SetFlash(ctx context.Context, clientID string, flash session.Flash) error {
	args := m.Called(ctx, clientID, flash)
	return args.Error(0)
}

func (m *MockStore) PopFlash(ctx context.Context, clientID string) (*session.Flash, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Flash), args.Error(1)
}

func (m *MockStore) Acquire(ctx context.Context, clientID, action string) (bool, error) {
	args := m.Called(ctx, clientID, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Release(ctx context.Context, clientID, action string) error {
	args := m.Called(ctx, clientID, action)
	return args.Error(0)
}

// expectGuard allows one guarded action to run.
func expectGuard(m *MockStore, clientID, action string) {
	m.On("Acquire", mock.Anything, clientID, action).Return(true, nil).Once()
	m.On("Release", mock.Anything, clientID, action).Return(nil).Once()
}
