package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moneyforge/fincalc/internal/domain"
)

// MockCalculator is a testify mock of the Calculator interface
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Payment(ctx context.Context, request *domain.PaymentRequest) (*domain.ValueResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueResponse), args.Error(1)
}

func (m *MockCalculator) SimpleInterest(ctx context.Context, request *domain.SimpleInterestRequest) (*domain.ValueResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueResponse), args.Error(1)
}

func (m *MockCalculator) PresentValue(ctx context.Context, request *domain.PresentValueRequest) (*domain.ValueResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueResponse), args.Error(1)
}

func (m *MockCalculator) NetPresentValue(ctx context.Context, request *domain.NetPresentValueRequest) (*domain.ValueResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueResponse), args.Error(1)
}

func (m *MockCalculator) FutureValue(ctx context.Context, request *domain.FutureValueRequest) (*domain.ValueResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValueResponse), args.Error(1)
}

func (m *MockCalculator) Amortize(ctx context.Context, request *domain.AmortizationRequest) (*domain.AmortizationResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AmortizationResponse), args.Error(1)
}

func (m *MockCalculator) CompoundInterest(ctx context.Context, request *domain.CompoundInterestRequest) (*domain.CompoundInterestResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompoundInterestResponse), args.Error(1)
}
