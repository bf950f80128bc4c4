package service

import (
	"context"
	"errors"

	"github.com/Werneck0live/empresa-api/internal/apperr"
	"github.com/Werneck0live/empresa-api/internal/models"
	"github.com/Werneck0live/empresa-api/internal/repository"
)

// Porta de persistência que o service enxerga; a implementação
// concreta (Mongo) fica em internal/repository.
type Repository interface {
	Create(ctx context.Context, c *models.Company) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*models.Company, error)
	Update(ctx context.Context, id string, c *models.Company) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type CreateCompanyDTO struct {
	Name    string
	CNPJ    string
	Email   string
	Phone   string
	Address string
}

type UpdateCompanyDTO struct {
	Name    *string
	CNPJ    *string
	Email   *string
	Phone   *string
	Address *string
}

type CompanyService struct {
	repo Repository
}

func NewCompanyService(repo Repository) *CompanyService {
	return &CompanyService{repo: repo}
}

/*
Create checa o CNPJ antes de inserir. A checagem não é atômica com a
escrita; o índice único do repositório cobre a corrida e devolve
ErrDuplicateCNPJ, que aqui também vira Conflict.
*/
func (s *CompanyService) Create(ctx context.Context, data CreateCompanyDTO) (*models.Company, error) {
	existing, err := s.repo.FindByCNPJ(ctx, data.CNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Company with this CNPJ already exists")
	}

	c := models.Company{
		Name:    data.Name,
		CNPJ:    data.CNPJ,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}

	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCNPJ) {
			return nil, apperr.Conflict("Company with this CNPJ already exists")
		}
		return nil, err
	}
	return created, nil
}

func (s *CompanyService) FindAll(ctx context.Context) ([]models.Company, error) {
	return s.repo.FindAll(ctx)
}

func (s *CompanyService) FindByID(ctx context.Context, id string) (*models.Company, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("Company not found")
	}
	return c, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, data UpdateCompanyDTO) (*models.Company, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Troca de CNPJ: só consulta a base se o valor for de fato outro.
	if data.CNPJ != nil && *data.CNPJ != "" && *data.CNPJ != c.CNPJ {
		existing, err := s.repo.FindByCNPJ(ctx, *data.CNPJ)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("Company with this CNPJ already exists")
		}
	}

	c.ApplyPatch(models.CompanyPatch{
		Name:    data.Name,
		CNPJ:    data.CNPJ,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	})

	updated, err := s.repo.Update(ctx, id, c)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateCNPJ):
			return nil, apperr.Conflict("Company with this CNPJ already exists")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound("Company not found")
		}
		return nil, err
	}
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Company not found")
		}
		return err
	}
	return nil
}
