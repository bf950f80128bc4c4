package handlers

import (
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	cnpjRegex  = regexp.MustCompile(`^\d{14}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10,11}$`)
)

// Uma violação por campo, no formato que o cliente recebe em "details".
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

/*
Validação pura e total: nunca retorna erro de execução, só a lista de
violações — TODAS, não apenas a primeira. Lista vazia = payload válido.
*/
func validateCreateDTO(d CompanyCreateDTO) []Issue {
	var issues []Issue

	switch {
	case d.Name == nil:
		issues = append(issues, Issue{Code: "invalid_type", Message: "Required", Path: "name"})
	case utf8.RuneCountInString(*d.Name) < 3:
		issues = append(issues, Issue{Code: "too_small", Message: "Name must be at least 3 characters", Path: "name"})
	case utf8.RuneCountInString(*d.Name) > 255:
		issues = append(issues, Issue{Code: "too_big", Message: "Name must be at most 255 characters", Path: "name"})
	}

	switch {
	case d.CNPJ == nil:
		issues = append(issues, Issue{Code: "invalid_type", Message: "Required", Path: "cnpj"})
	case !cnpjRegex.MatchString(*d.CNPJ):
		issues = append(issues, Issue{Code: "invalid_string", Message: "CNPJ must have 14 digits", Path: "cnpj"})
	}

	switch {
	case d.Email == nil:
		issues = append(issues, Issue{Code: "invalid_type", Message: "Required", Path: "email"})
	case !emailRegex.MatchString(*d.Email):
		issues = append(issues, Issue{Code: "invalid_string", Message: "Invalid email format", Path: "email"})
	}

	issues = append(issues, validateOptionals(d.Phone, d.Address)...)
	return issues
}

func validateUpdateDTO(d CompanyUpdateDTO) []Issue {
	var issues []Issue

	if d.Name != nil {
		switch {
		case utf8.RuneCountInString(*d.Name) < 3:
			issues = append(issues, Issue{Code: "too_small", Message: "Name must be at least 3 characters", Path: "name"})
		case utf8.RuneCountInString(*d.Name) > 255:
			issues = append(issues, Issue{Code: "too_big", Message: "Name must be at most 255 characters", Path: "name"})
		}
	}
	if d.CNPJ != nil && !cnpjRegex.MatchString(*d.CNPJ) {
		issues = append(issues, Issue{Code: "invalid_string", Message: "CNPJ must have 14 digits", Path: "cnpj"})
	}
	if d.Email != nil && !emailRegex.MatchString(*d.Email) {
		issues = append(issues, Issue{Code: "invalid_string", Message: "Invalid email format", Path: "email"})
	}

	issues = append(issues, validateOptionals(d.Phone, d.Address)...)
	return issues
}

func validateOptionals(phone, address *string) []Issue {
	var issues []Issue
	if phone != nil && !phoneRegex.MatchString(*phone) {
		issues = append(issues, Issue{Code: "invalid_string", Message: "Phone must have 10 or 11 digits", Path: "phone"})
	}
	if address != nil && utf8.RuneCountInString(*address) > 255 {
		issues = append(issues, Issue{Code: "too_big", Message: "Address must be at most 255 characters", Path: "address"})
	}
	return issues
}

// {id} da rota precisa ser UUID no formato 8-4-4-4-12.
func validateIDParam(id string) []Issue {
	if len(id) != 36 {
		return []Issue{{Code: "invalid_string", Message: "Invalid UUID format", Path: "id"}}
	}
	if _, err := uuid.Parse(id); err != nil {
		return []Issue{{Code: "invalid_string", Message: "Invalid UUID format", Path: "id"}}
	}
	return nil
}
