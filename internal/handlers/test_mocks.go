package handlers

import (
	"context"
	"errors"

	"github.com/Werneck0live/empresa-api/internal/models"
	"github.com/Werneck0live/empresa-api/internal/service"
)

type svcMock struct {
	CreateFn   func(ctx context.Context, data service.CreateCompanyDTO) (*models.Company, error)
	FindAllFn  func(ctx context.Context) ([]models.Company, error)
	FindByIDFn func(ctx context.Context, id string) (*models.Company, error)
	UpdateFn   func(ctx context.Context, id string, data service.UpdateCompanyDTO) (*models.Company, error)
	DeleteFn   func(ctx context.Context, id string) error
}

func (m *svcMock) Create(ctx context.Context, data service.CreateCompanyDTO) (*models.Company, error) {
	if m.CreateFn == nil {
		return nil, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, data)
}
func (m *svcMock) FindAll(ctx context.Context) ([]models.Company, error) {
	if m.FindAllFn == nil {
		return nil, errors.New("FindAllFn not set")
	}
	return m.FindAllFn(ctx)
}
func (m *svcMock) FindByID(ctx context.Context, id string) (*models.Company, error) {
	if m.FindByIDFn == nil {
		return nil, errors.New("FindByIDFn not set")
	}
	return m.FindByIDFn(ctx, id)
}
func (m *svcMock) Update(ctx context.Context, id string, data service.UpdateCompanyDTO) (*models.Company, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, data)
}
func (m *svcMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
