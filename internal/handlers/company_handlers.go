package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Werneck0live/empresa-api/internal/apperr"
	"github.com/Werneck0live/empresa-api/internal/models"
	"github.com/Werneck0live/empresa-api/internal/service"
	"github.com/Werneck0live/empresa-api/internal/utils"
)

// Operações que o handler consome do service; a regra de negócio
// (unicidade de CNPJ, existência antes de mutar) mora lá.
type Service interface {
	Create(ctx context.Context, data service.CreateCompanyDTO) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	FindByID(ctx context.Context, id string) (*models.Company, error)
	Update(ctx context.Context, id string, data service.UpdateCompanyDTO) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type CompanyHandler struct {
	Svc Service
}

func NewCompanyHandler(svc Service) *CompanyHandler {
	return &CompanyHandler{Svc: svc}
}

// garantir que a requisição venha no padrão /api/companies/{id_company}
func parseIDFromPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" && parts[1] == "companies" && parts[2] != "" {
		return parts[2], true
	}
	return "", false
}

func (h *CompanyHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {

	switch r.Method {

	// getAll
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		list, err := h.Svc.FindAll(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, list)

	// create
	case http.MethodPost:
		var dto CompanyCreateDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, utils.FormatUnknownFieldError(err))
			return
		}
		if issues := validateCreateDTO(dto); len(issues) > 0 {
			writeValidationError(w, issues)
			return
		}

		data := service.CreateCompanyDTO{
			Name:  *dto.Name,
			CNPJ:  *dto.CNPJ,
			Email: *dto.Email,
		}
		if dto.Phone != nil {
			data.Phone = *dto.Phone
		}
		if dto.Address != nil {
			data.Address = *dto.Address
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.Create(ctx, data)
		if err != nil {
			writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusCreated, c)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CompanyHandler) CompanyByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDFromPath(r.URL.Path)
	if !ok {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if issues := validateIDParam(id); len(issues) > 0 {
		writeValidationError(w, issues)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.FindByID(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, c)

	case http.MethodPut:
		var dto CompanyUpdateDTO
		if err := utils.DecodeStrict(r.Body, &dto); err != nil {
			utils.BadRequest(w, utils.FormatUnknownFieldError(err))
			return
		}
		if issues := validateUpdateDTO(dto); len(issues) > 0 {
			writeValidationError(w, issues)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		c, err := h.Svc.Update(ctx, id, service.UpdateCompanyDTO{
			Name:    dto.Name,
			CNPJ:    dto.CNPJ,
			Email:   dto.Email,
			Phone:   dto.Phone,
			Address: dto.Address,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, c)

	case http.MethodDelete:
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.Svc.Delete(ctx, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeValidationError(w http.ResponseWriter, issues []Issue) {
	utils.WriteJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation error",
		"details": issues,
	})
}

/*
writeError traduz o erro do service: AppError carrega o status HTTP;
qualquer outro erro é infraestrutura — loga e responde 500 genérico,
sem vazar detalhe interno pro cliente.
*/
func writeError(w http.ResponseWriter, err error) {
	if ae, ok := apperr.From(err); ok {
		utils.WriteJSON(w, ae.StatusCode, map[string]string{"error": ae.Message})
		return
	}
	slog.Error("internal server error", "err", err)
	utils.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
