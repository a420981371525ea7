package models

// Alocacao is a customer's holding of one asset. A customer has at most one
// allocation per asset; the customer/asset pair never changes after creation.
type Alocacao struct {
	Base
	ClienteID           uint     `gorm:"not null;uniqueIndex:uq_alocacoes_cliente_acao,priority:1" json:"cliente_id"`
	AcaoID              uint     `gorm:"not null;uniqueIndex:uq_alocacoes_cliente_acao,priority:2;index" json:"acao_id"`
	Quantidade          Quantity `gorm:"type:numeric(18,4);not null" json:"quantidade"`
	ValorMedioAquisicao Money    `gorm:"type:numeric(18,2);not null" json:"valor_medio_aquisicao"`
	DataUltimaCompra    Date     `gorm:"type:date;not null" json:"data_ultima_compra"`

	// Deleting the customer removes its allocations; deleting a referenced
	// asset is refused.
	Cliente *Cliente `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
	Acao    *Acao    `gorm:"foreignKey:AcaoID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName overrides the table name used by Alocacao.
func (Alocacao) TableName() string { return "alocacoes" }
