package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FunSlots_Go/internal/domain"
)

// MockSessionService mocks the session.Service interface
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*domain.SessionSnapshot, error) {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(*domain.SessionSnapshot)
	return snap, args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*domain.SessionSnapshot)
	return snap, args.Error(1)
}

func (m *MockSessionService) Spin(ctx context.Context, id string) (*domain.SpinResult, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*domain.SpinResult)
	return res, args.Error(1)
}

func (m *MockSessionService) Reset(ctx context.Context, id string) (*domain.SessionSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*domain.SessionSnapshot)
	return snap, args.Error(1)
}

func (m *MockSessionService) End(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionService) Paytable() domain.Paytable {
	args := m.Called()
	return args.Get(0).(domain.Paytable)
}

func (m *MockSessionService) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
