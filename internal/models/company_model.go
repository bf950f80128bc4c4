package models

import "time"

type Company struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CNPJ      string    `bson:"cnpj" json:"cnpj"` // exatamente 14 dígitos, único na base
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Patch parcial; ponteiros distinguem "omitido" de "informado".
type CompanyPatch struct {
	Name    *string
	CNPJ    *string
	Email   *string
	Phone   *string
	Address *string
}

/*
ApplyPatch sobrescreve apenas os campos presentes no patch.
ID, CreatedAt e UpdatedAt nunca são aceitos aqui.

Campos obrigatórios (name/cnpj/email) só mudam com valor não-vazio;
phone/address mudam sempre que a chave vier no patch, inclusive para vazio.
*/
func (c *Company) ApplyPatch(p CompanyPatch) {
	if p.Name != nil && *p.Name != "" {
		c.Name = *p.Name
	}
	if p.CNPJ != nil && *p.CNPJ != "" {
		c.CNPJ = *p.CNPJ
	}
	if p.Email != nil && *p.Email != "" {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}
