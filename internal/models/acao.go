package models

// Acao is a tradable instrument (stock, fund, bond) with a current market price.
type Acao struct {
	Base
	Nome       string  `gorm:"size:255;not null;uniqueIndex:uq_acoes_nome" json:"nome"`
	Ticker     string  `gorm:"size:10;not null;uniqueIndex:uq_acoes_ticker" json:"ticker"`
	PrecoAtual Money   `gorm:"type:numeric(18,2);not null" json:"preco_atual"`
	Tipo       *string `gorm:"size:50" json:"tipo"`
	Descricao  *string `gorm:"type:text" json:"descricao"`
}

// TableName overrides the table name used by Acao.
func (Acao) TableName() string { return "acoes" }
