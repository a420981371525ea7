package models

// Cliente is a customer holding asset allocations.
type Cliente struct {
	Base
	NomeCompleto   string `gorm:"size:255;not null" json:"nome_completo"`
	CpfCnpj        string `gorm:"size:14;not null;uniqueIndex:uq_clientes_cpf_cnpj" json:"cpf_cnpj"`
	Telefone       string `gorm:"size:15;not null" json:"telefone"`
	DataNascimento Date   `gorm:"type:date;not null" json:"data_nascimento"`
	Email          string `gorm:"size:255;not null;uniqueIndex:uq_clientes_email" json:"email"`
}

// TableName overrides the table name used by Cliente.
func (Cliente) TableName() string { return "clientes" }
