package handlers

//	somente os campos do contrato
//
// id/created_at/updated_at NÃO vêm do cliente (gerados pela persistência)
//
// Ponteiros distinguem "omitido" de "informado" — a validação precisa
// disso para diferenciar campo ausente de campo presente e inválido.
type CompanyCreateDTO struct {
	Name    *string `json:"name,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Update parcial; payload vazio é válido (no-op).
type CompanyUpdateDTO struct {
	Name    *string `json:"name,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}
