package schemas

import "carteira/internal/models"

// CreateClienteRequest is the body of POST /clientes.
type CreateClienteRequest struct {
	NomeCompleto   string       `json:"nome_completo" binding:"required,min=3,max=255"`
	CpfCnpj        string       `json:"cpf_cnpj" binding:"required,cpf_cnpj"`
	Telefone       string       `json:"telefone" binding:"required,telefone"`
	DataNascimento *models.Date `json:"data_nascimento" binding:"required"`
	Email          string       `json:"email" binding:"required,email,max=255"`
}

// ToModel builds the record to insert.
func (r CreateClienteRequest) ToModel() *models.Cliente {
	return &models.Cliente{
		NomeCompleto:   r.NomeCompleto,
		CpfCnpj:        r.CpfCnpj,
		Telefone:       r.Telefone,
		DataNascimento: *r.DataNascimento,
		Email:          r.Email,
	}
}

// UpdateClienteRequest is the body of PUT /clientes/:id. Every field is
// optional; the rules of CreateClienteRequest apply to those present.
type UpdateClienteRequest struct {
	NomeCompleto   *string      `json:"nome_completo" binding:"omitnil,min=3,max=255"`
	CpfCnpj        *string      `json:"cpf_cnpj" binding:"omitnil,cpf_cnpj"`
	Telefone       *string      `json:"telefone" binding:"omitnil,telefone"`
	DataNascimento *models.Date `json:"data_nascimento" binding:"omitnil"`
	Email          *string      `json:"email" binding:"omitnil,email,max=255"`
}

// Changes returns the supplied fields keyed by column name.
func (r UpdateClienteRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	if r.NomeCompleto != nil {
		c["nome_completo"] = *r.NomeCompleto
	}
	if r.CpfCnpj != nil {
		c["cpf_cnpj"] = *r.CpfCnpj
	}
	if r.Telefone != nil {
		c["telefone"] = *r.Telefone
	}
	if r.DataNascimento != nil {
		c["data_nascimento"] = *r.DataNascimento
	}
	if r.Email != nil {
		c["email"] = *r.Email
	}
	return c
}

// BuscarClienteQuery is the query of GET /clientes/buscar. Exactly one of the
// two criteria must be present.
type BuscarClienteQuery struct {
	NomeCompleto string `form:"nome_completo" binding:"omitempty,max=255"`
	CpfCnpj      string `form:"cpf_cnpj" binding:"omitempty,cpf_cnpj"`
}
