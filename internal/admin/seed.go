package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/Werneck0live/empresa-api/internal/models"
	"github.com/Werneck0live/empresa-api/internal/repository"
)

//go:embed seeds/companies.json
var companiesJSON []byte

type seedItem struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Idempotente: cria se não existir; se já existir, ignora.
func SeedCompanies(ctx context.Context, repo *repository.CompanyRepository, log *slog.Logger) error {
	var items []seedItem
	if err := json.Unmarshal(companiesJSON, &items); err != nil {
		return err
	}

	for _, s := range items {
		c := models.Company{
			Name:    s.Name,
			CNPJ:    s.CNPJ,
			Email:   s.Email,
			Phone:   s.Phone,
			Address: s.Address,
		}

		// timeout curto por item pra não travar
		ictx, cancel := context.WithTimeout(ctx, 3*time.Second)
		_, err := repo.Create(ictx, &c)
		cancel()

		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCNPJ) {
				log.Info("seed_company_exists", "cnpj", s.CNPJ)
				continue
			}
			return err
		}
		log.Info("seed_company_created", "cnpj", s.CNPJ)
	}

	log.Info("seed_companies_done", "count", len(items))
	return nil
}
