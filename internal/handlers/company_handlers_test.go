package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Werneck0live/empresa-api/internal/apperr"
	"github.com/Werneck0live/empresa-api/internal/models"
	"github.com/Werneck0live/empresa-api/internal/service"
)

const companyID = "3f6c5f2e-8a33-4a25-9b3e-1f2d4c5b6a70"
const validCNPJ = "11222333000181"

/*
RODAR TODOS OS TESTES:

go test -run 'TestCompanies_List_|TestCompanies_Create_|TestCompanyByID_Get_|TestCompanyByID_Put_|TestCompanyByID_Delete_' -v ./internal/handlers -count=1

*/

// 1) GET (ListAll) - go test -run 'TestCompanies_List_' -v ./internal/handlers -count=1

func TestCompanies_List(t *testing.T) {
	sm := &svcMock{
		FindAllFn: func(_ context.Context) ([]models.Company, error) {
			return []models.Company{
				{ID: companyID, Name: "ACME", CNPJ: validCNPJ, Email: "contato@acme.com.br"},
			}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rr := httptest.NewRecorder()

	h.Companies(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d; body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var got []models.Company
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\nbody=%s", err, rr.Body.String())
	}
	if len(got) != 1 || got[0].Name != "ACME" {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestCompanies_List_Empty(t *testing.T) {
	sm := &svcMock{
		FindAllFn: func(_ context.Context) ([]models.Company, error) {
			return []models.Company{}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rr := httptest.NewRecorder()
	h.Companies(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusOK)
	}
	// lista vazia serializa como [], nunca null
	if body := bytes.TrimSpace(rr.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("body=%q want=[]", body)
	}
}

// Erro do service → 500 genérico, sem vazar detalhe
func TestCompanies_List_ServiceError(t *testing.T) {
	sm := &svcMock{
		FindAllFn: func(_ context.Context) ([]models.Company, error) {
			return nil, errors.New("mongo down")
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rr := httptest.NewRecorder()
	h.Companies(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusInternalServerError, rr.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "Internal server error" {
		t.Fatalf("mensagem genérica esperada, got=%q", body["error"])
	}
}

func TestCompanies_MethodNotAllowed(t *testing.T) {
	h := &CompanyHandler{Svc: &svcMock{}}
	req := httptest.NewRequest(http.MethodDelete, "/api/companies", nil)
	rr := httptest.NewRecorder()
	h.Companies(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusMethodNotAllowed)
	}
}

// 2) POST (Create) - go test -run 'TestCompanies_Create_' -v ./internal/handlers -count=1

func TestCompanies_Create_Created(t *testing.T) {
	now := time.Now().UTC()
	sm := &svcMock{
		CreateFn: func(_ context.Context, data service.CreateCompanyDTO) (*models.Company, error) {
			if data.Name != "Test Company" || data.CNPJ != "12345678901234" || data.Email != "test@company.com" {
				t.Fatalf("dto inesperado: %#v", data)
			}
			return &models.Company{
				ID: companyID, Name: data.Name, CNPJ: data.CNPJ, Email: data.Email,
				CreatedAt: now, UpdatedAt: now,
			}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	body := `{"name":"Test Company","cnpj":"12345678901234","email":"test@company.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/companies", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Companies(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	var got models.Company
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v (body=%s)", err, rr.Body.String())
	}
	if got.ID == "" || got.Name != "Test Company" {
		t.Fatalf("payload inesperado: %#v", got)
	}
}

func TestCompanies_Create_CNPJConflict(t *testing.T) {
	sm := &svcMock{
		CreateFn: func(_ context.Context, _ service.CreateCompanyDTO) (*models.Company, error) {
			return nil, apperr.Conflict("Company with this CNPJ already exists")
		},
	}
	h := &CompanyHandler{Svc: sm}

	body := `{"name":"Test Company","cnpj":"12345678901234","email":"other@company.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/companies", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Companies(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusConflict, rr.Body.String())
	}
	var got map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got["error"] != "Company with this CNPJ already exists" {
		t.Fatalf("body inesperado: %s", rr.Body.String())
	}
}

func TestCompanies_Create_ValidationError(t *testing.T) {
	called := false
	sm := &svcMock{
		CreateFn: func(_ context.Context, _ service.CreateCompanyDTO) (*models.Company, error) {
			called = true
			return nil, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	// cnpj com pontuação e email sem domínio: duas violações de uma vez
	body := `{"name":"ab","cnpj":"11.222.333/0001-81","email":"sem-arroba"}`
	req := httptest.NewRequest(http.MethodPost, "/api/companies", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Companies(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	if called {
		t.Fatalf("service não pode ser chamado com payload inválido")
	}

	var got struct {
		Error   string  `json:"error"`
		Details []Issue `json:"details"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v (body=%s)", err, rr.Body.String())
	}
	if got.Error != "Validation error" || len(got.Details) != 3 {
		t.Fatalf("esperava 3 violações (name, cnpj, email): %#v", got)
	}
}

func TestCompanies_Create_UnknownField(t *testing.T) {
	h := &CompanyHandler{Svc: &svcMock{}}

	body := `{"name":"Test Company","cnpj":"12345678901234","email":"t@c.com","foo":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/companies", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Companies(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

// 3) GET (ById{id}) - go test -run 'TestCompanyByID_Get_' -v ./internal/handlers -count=1

func TestCompanyByID_Get_Found(t *testing.T) {
	sm := &svcMock{
		FindByIDFn: func(_ context.Context, id string) (*models.Company, error) {
			if id != companyID {
				t.Fatalf("id inesperado: got=%s want=%s", id, companyID)
			}
			return &models.Company{ID: id, Name: "ACME", CNPJ: validCNPJ, Email: "a@b.com"}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID, nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got models.Company
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("json inválido: %v (body=%s)", err, rr.Body.String())
	}
	if got.ID != companyID || got.Name != "ACME" {
		t.Fatalf("payload inesperado: %#v", got)
	}
}

func TestCompanyByID_Get_NotFound(t *testing.T) {
	sm := &svcMock{
		FindByIDFn: func(_ context.Context, _ string) (*models.Company, error) {
			return nil, apperr.NotFound("Company not found")
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies/"+companyID, nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
	var got map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got["error"] != "Company not found" {
		t.Fatalf("body inesperado: %s", rr.Body.String())
	}
}

// id que não é UUID → 400 antes de chegar no service
func TestCompanyByID_Get_InvalidUUID(t *testing.T) {
	sm := &svcMock{
		FindByIDFn: func(_ context.Context, _ string) (*models.Company, error) {
			t.Fatalf("service não pode ser chamado com id inválido")
			return nil, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodGet, "/api/companies/nao-e-uuid", nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	var got struct {
		Error   string  `json:"error"`
		Details []Issue `json:"details"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got.Error != "Validation error" || len(got.Details) != 1 || got.Details[0].Path != "id" {
		t.Fatalf("payload inesperado: %s", rr.Body.String())
	}
}

// path sem id -> parseIDFromPath falha
func TestCompanyByID_Get_InvalidPath(t *testing.T) {
	h := &CompanyHandler{Svc: &svcMock{}}

	req := httptest.NewRequest(http.MethodGet, "/api/companies/a/b", nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusNotFound)
	}
}

// 4) PUT (Update) - go test -run 'TestCompanyByID_Put_' -v ./internal/handlers -count=1

func TestCompanyByID_Put_PartialOK(t *testing.T) {
	sm := &svcMock{
		UpdateFn: func(_ context.Context, id string, data service.UpdateCompanyDTO) (*models.Company, error) {
			if id != companyID {
				t.Fatalf("id inesperado: got=%s want=%s", id, companyID)
			}
			if data.Name == nil || *data.Name != "New Name" {
				t.Fatalf("name não repassado: %#v", data)
			}
			if data.CNPJ != nil || data.Email != nil || data.Phone != nil || data.Address != nil {
				t.Fatalf("campos omitidos devem chegar nil: %#v", data)
			}
			return &models.Company{ID: id, Name: "New Name", CNPJ: validCNPJ, Email: "a@b.com"}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	body := `{"name":"New Name"}`
	req := httptest.NewRequest(http.MethodPut, "/api/companies/"+companyID, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var got models.Company
	_ = json.Unmarshal(rr.Body.Bytes(), &got)
	if got.Name != "New Name" || got.CNPJ != validCNPJ {
		t.Fatalf("payload inesperado: %#v", got)
	}
}

// payload vazio é update válido (no-op)
func TestCompanyByID_Put_EmptyPayload(t *testing.T) {
	sm := &svcMock{
		UpdateFn: func(_ context.Context, id string, data service.UpdateCompanyDTO) (*models.Company, error) {
			return &models.Company{ID: id, Name: "ACME", CNPJ: validCNPJ, Email: "a@b.com"}, nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodPut, "/api/companies/"+companyID, bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestCompanyByID_Put_InvalidCNPJ(t *testing.T) {
	h := &CompanyHandler{Svc: &svcMock{}}

	body := `{"cnpj":"123"}`
	req := httptest.NewRequest(http.MethodPut, "/api/companies/"+companyID, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

func TestCompanyByID_Put_CNPJConflict(t *testing.T) {
	sm := &svcMock{
		UpdateFn: func(_ context.Context, _ string, _ service.UpdateCompanyDTO) (*models.Company, error) {
			return nil, apperr.Conflict("Company with this CNPJ already exists")
		},
	}
	h := &CompanyHandler{Svc: sm}

	body := `{"cnpj":"12345678000190"}`
	req := httptest.NewRequest(http.MethodPut, "/api/companies/"+companyID, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusConflict, rr.Body.String())
	}
}

// 5) DELETE - go test -run 'TestCompanyByID_Delete_' -v ./internal/handlers -count=1

func TestCompanyByID_Delete_NoContent(t *testing.T) {
	sm := &svcMock{
		DeleteFn: func(_ context.Context, id string) error {
			if id != companyID {
				t.Fatalf("id inesperado: got=%s want=%s", id, companyID)
			}
			return nil
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodDelete, "/api/companies/"+companyID, nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusNoContent, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("204 não deve ter body: %s", rr.Body.String())
	}
}

func TestCompanyByID_Delete_NotFound(t *testing.T) {
	sm := &svcMock{
		DeleteFn: func(_ context.Context, _ string) error {
			return apperr.NotFound("Company not found")
		},
	}
	h := &CompanyHandler{Svc: sm}

	req := httptest.NewRequest(http.MethodDelete, "/api/companies/"+companyID, nil)
	rr := httptest.NewRecorder()

	h.CompanyByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=%d body=%s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

func TestCompanyByID_MethodNotAllowed(t *testing.T) {
	h := &CompanyHandler{Svc: &svcMock{}}
	req := httptest.NewRequest(http.MethodPost, "/api/companies/"+companyID, nil)
	rr := httptest.NewRecorder()
	h.CompanyByID(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=%d", rr.Code, http.StatusMethodNotAllowed)
	}
}
