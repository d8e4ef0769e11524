// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/carryon-service/internal/domain/model"
	"github.com/guttosm/carryon-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAirlinesRepositoryInterface struct {
	mock.Mock
}

func (m *MockAirlinesRepositoryInterface) List(ctx context.Context, filter repository.AirlineFilter) ([]model.AirlineAllowanceEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AirlineAllowanceEntry), args.Error(1)
}

func (m *MockAirlinesRepositoryInterface) Get(ctx context.Context, id string) (*model.AirlineAllowanceEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AirlineAllowanceEntry), args.Error(1)
}

func (m *MockAirlinesRepositoryInterface) Upsert(ctx context.Context, entry model.AirlineAllowanceEntry, updatedBy string) (*repository.AirlineDocument, error) {
	args := m.Called(ctx, entry, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.AirlineDocument), args.Error(1)
}

func (m *MockAirlinesRepositoryInterface) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAirlinesRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirlinesRepositoryInterface) SeedIfEmpty(ctx context.Context, entries []model.AirlineAllowanceEntry, seededBy string) (int, error) {
	args := m.Called(ctx, entries, seededBy)
	return args.Int(0), args.Error(1)
}
