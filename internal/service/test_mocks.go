package service

import (
	"context"
	"errors"

	"github.com/Werneck0live/empresa-api/internal/models"
)

type repoMock struct {
	CreateFn     func(ctx context.Context, c *models.Company) (*models.Company, error)
	FindAllFn    func(ctx context.Context) ([]models.Company, error)
	FindByIDFn   func(ctx context.Context, id string) (*models.Company, error)
	FindByCNPJFn func(ctx context.Context, cnpj string) (*models.Company, error)
	UpdateFn     func(ctx context.Context, id string, c *models.Company) (*models.Company, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (m *repoMock) Create(ctx context.Context, c *models.Company) (*models.Company, error) {
	if m.CreateFn == nil {
		return nil, errors.New("CreateFn not set")
	}
	return m.CreateFn(ctx, c)
}
func (m *repoMock) FindAll(ctx context.Context) ([]models.Company, error) {
	if m.FindAllFn == nil {
		return nil, errors.New("FindAllFn not set")
	}
	return m.FindAllFn(ctx)
}
func (m *repoMock) FindByID(ctx context.Context, id string) (*models.Company, error) {
	if m.FindByIDFn == nil {
		return nil, errors.New("FindByIDFn not set")
	}
	return m.FindByIDFn(ctx, id)
}
func (m *repoMock) FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error) {
	if m.FindByCNPJFn == nil {
		return nil, errors.New("FindByCNPJFn not set")
	}
	return m.FindByCNPJFn(ctx, cnpj)
}
func (m *repoMock) Update(ctx context.Context, id string, c *models.Company) (*models.Company, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("UpdateFn not set")
	}
	return m.UpdateFn(ctx, id, c)
}
func (m *repoMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn == nil {
		return errors.New("DeleteFn not set")
	}
	return m.DeleteFn(ctx, id)
}
