package schemas

import (
	"time"

	"carteira/internal/models"
)

// CreateAlocacaoRequest is the body of POST /clientes/:id/alocacoes. The
// customer comes from the path.
type CreateAlocacaoRequest struct {
	AcaoID              uint             `json:"acao_id" binding:"required,gt=0,max=9223372036854775807"`
	Quantidade          *models.Quantity `json:"quantidade" binding:"required,decimal_precision,decimal_scale,decimal_gt=0"`
	ValorMedioAquisicao *models.Money    `json:"valor_medio_aquisicao" binding:"required,decimal_precision,decimal_scale,decimal_gte=0"`
	DataUltimaCompra    *models.Date     `json:"data_ultima_compra" binding:"required"`
}

// ToModel builds the record to insert for the given customer.
func (r CreateAlocacaoRequest) ToModel(clienteID uint) *models.Alocacao {
	return &models.Alocacao{
		ClienteID:           clienteID,
		AcaoID:              r.AcaoID,
		Quantidade:          *r.Quantidade,
		ValorMedioAquisicao: *r.ValorMedioAquisicao,
		DataUltimaCompra:    *r.DataUltimaCompra,
	}
}

// UpdateAlocacaoRequest is the body of PUT /alocacoes/:id. The customer and
// asset of an allocation cannot change, so they are not part of the shape;
// unknown keys are ignored.
type UpdateAlocacaoRequest struct {
	Quantidade          *models.Quantity `json:"quantidade" binding:"omitnil,decimal_precision,decimal_scale,decimal_gt=0"`
	ValorMedioAquisicao *models.Money    `json:"valor_medio_aquisicao" binding:"omitnil,decimal_precision,decimal_scale,decimal_gte=0"`
	DataUltimaCompra    *models.Date     `json:"data_ultima_compra" binding:"omitnil"`
}

// Changes returns the supplied fields keyed by column name.
func (r UpdateAlocacaoRequest) Changes() map[string]interface{} {
	c := make(map[string]interface{})
	if r.Quantidade != nil {
		c["quantidade"] = *r.Quantidade
	}
	if r.ValorMedioAquisicao != nil {
		c["valor_medio_aquisicao"] = *r.ValorMedioAquisicao
	}
	if r.DataUltimaCompra != nil {
		c["data_ultima_compra"] = *r.DataUltimaCompra
	}
	return c
}

// AcaoResumo is the asset summary embedded in allocation responses.
type AcaoResumo struct {
	ID         uint         `json:"id"`
	Nome       string       `json:"nome"`
	Ticker     string       `json:"ticker"`
	PrecoAtual models.Money `json:"preco_atual"`
}

// AlocacaoResponse is an allocation joined with its asset's display fields.
type AlocacaoResponse struct {
	ID                  uint            `json:"id"`
	ClienteID           uint            `json:"cliente_id"`
	AcaoID              uint            `json:"acao_id"`
	Quantidade          models.Quantity `json:"quantidade"`
	ValorMedioAquisicao models.Money    `json:"valor_medio_aquisicao"`
	DataUltimaCompra    models.Date     `json:"data_ultima_compra"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Acao                *AcaoResumo     `json:"acao,omitempty"`
}

// NewAlocacaoResponse flattens a with its preloaded asset, when present.
func NewAlocacaoResponse(a models.Alocacao) AlocacaoResponse {
	resp := AlocacaoResponse{
		ID:                  a.ID,
		ClienteID:           a.ClienteID,
		AcaoID:              a.AcaoID,
		Quantidade:          a.Quantidade,
		ValorMedioAquisicao: a.ValorMedioAquisicao,
		DataUltimaCompra:    a.DataUltimaCompra,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if a.Acao != nil {
		resp.Acao = &AcaoResumo{
			ID:         a.Acao.ID,
			Nome:       a.Acao.Nome,
			Ticker:     a.Acao.Ticker,
			PrecoAtual: a.Acao.PrecoAtual,
		}
	}
	return resp
}

// NewAlocacaoResponses converts a slice, never returning nil.
func NewAlocacaoResponses(list []models.Alocacao) []AlocacaoResponse {
	out := make([]AlocacaoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAlocacaoResponse(a))
	}
	return out
}
