package schemas

import "carteira/internal/models"

// CreateAcaoRequest is the body of POST /acoes.
type CreateAcaoRequest struct {
	Nome       string        `json:"nome" binding:"required,min=3,max=255"`
	Ticker     string        `json:"ticker" binding:"required,ticker"`
	PrecoAtual *models.Money `json:"preco_atual" binding:"required,decimal_precision,decimal_scale,decimal_gt=0"`
	Tipo       *string       `json:"tipo" binding:"omitnil,max=50"`
	Descricao  *string       `json:"descricao"`
}

// ToModel builds the record to insert.
func (r CreateAcaoRequest) ToModel() *models.Acao {
	return &models.Acao{
		Nome:       r.Nome,
		Ticker:     r.Ticker,
		PrecoAtual: *r.PrecoAtual,
		Tipo:       r.Tipo,
		Descricao:  r.Descricao,
	}
}

// UpdateAcaoRequest is the body of PUT /acoes/:id.
type UpdateAcaoRequest struct {
	Nome       *string       `json:"nome" binding:"omitnil,min=3,max=255"`
	Ticker     *string       `json:"ticker" binding:"omitnil,ticker"`
	PrecoAtual *models.Money `json:"preco_atual" binding:"omitnil,decimal_precision,decimal_scale,decimal_gt=0"`
	Tipo       *string       `json:"tipo" binding:"omitnil,max=50"`
	Descricao  *string       `json:"descricao"`
}

// Changes returns the supplied fields keyed by column name.
func (r UpdateAcaoRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	if r.Nome != nil {
		c["nome"] = *r.Nome
	}
	if r.Ticker != nil {
		c["ticker"] = *r.Ticker
	}
	if r.PrecoAtual != nil {
		c["preco_atual"] = *r.PrecoAtual
	}
	if r.Tipo != nil {
		c["tipo"] = *r.Tipo
	}
	if r.Descricao != nil {
		c["descricao"] = *r.Descricao
	}
	return c
}
