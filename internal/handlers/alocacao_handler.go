package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/schemas"
	"carteira/internal/services"
)

// AlocacaoHandler handles allocation-related requests.
type AlocacaoHandler struct {
	alocacaoService services.AlocacaoServicer
	auditService    services.AuditServicer
}

// NewAlocacaoHandler creates a new AlocacaoHandler.
func NewAlocacaoHandler(alocacaoService services.AlocacaoServicer, auditService services.AuditServicer) *AlocacaoHandler {
	return &AlocacaoHandler{alocacaoService: alocacaoService, auditService: auditService}
}

// AddAlocacao handles allocating an asset to a customer.
// @Summary     Add allocation
// @Description Record that the customer holds an asset. A customer holds each asset at most once.
// @Tags        alocacoes
// @Accept      json
// @Produce     json
// @Param       id      path int                           true "Customer ID"
// @Param       request body schemas.CreateAlocacaoRequest true "Allocation details"
// @Success     201 {object} schemas.AlocacaoResponse "Allocation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Customer or asset not found"
// @Failure     409 {object} ErrorResponse "Customer already holds the asset"
// @Router      /clientes/{id}/alocacoes [post]
func (h *AlocacaoHandler) AddAlocacao(c *gin.Context) {
	clienteID, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req schemas.CreateAlocacaoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	alocacao, err := h.alocacaoService.AddAlocacao(c.Request.Context(), clienteID, req.ToModel(clienteID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ALOCACAO", "alocacao", alocacao.ID, c.ClientIP(),
		map[string]interface{}{"cliente_id": clienteID, "acao_id": req.AcaoID})

	c.JSON(http.StatusCreated, schemas.NewAlocacaoResponse(*alocacao))
}

// ListClienteAlocacoes handles listing a customer's allocations.
// @Summary     List customer allocations
// @Description Get the customer's allocations with a summary of each asset. An unknown customer has none.
// @Tags        alocacoes
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {array}  schemas.AlocacaoResponse "Allocations"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Router      /clientes/{id}/alocacoes [get]
func (h *AlocacaoHandler) ListClienteAlocacoes(c *gin.Context) {
	clienteID, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	alocacoes, err := h.alocacaoService.ListClienteAlocacoes(c.Request.Context(), clienteID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewAlocacaoResponses(alocacoes))
}

// GetAlocacao handles retrieving a specific allocation.
// @Summary     Get allocation by ID
// @Tags        alocacoes
// @Produce     json
// @Param       id path int true "Allocation ID"
// @Success     200 {object} schemas.AlocacaoResponse "Allocation details"
// @Failure     400 {object} ErrorResponse "Invalid allocation ID"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Router      /alocacoes/{id} [get]
func (h *AlocacaoHandler) GetAlocacao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	alocacao, err := h.alocacaoService.GetAlocacaoByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewAlocacaoResponse(*alocacao))
}

// UpdateAlocacao handles a partial update of an allocation.
// @Summary     Update allocation
// @Description Change quantity, average price or last purchase date. The customer and asset are fixed.
// @Tags        alocacoes
// @Accept      json
// @Produce     json
// @Param       id      path int                           true "Allocation ID"
// @Param       request body schemas.UpdateAlocacaoRequest true "Fields to change"
// @Success     200 {object} schemas.AlocacaoResponse "Updated allocation"
// @Failure     400 {object} ErrorResponse "Invalid input or empty update"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Router      /alocacoes/{id} [put]
func (h *AlocacaoHandler) UpdateAlocacao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req schemas.UpdateAlocacaoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	changes := req.Changes()
	alocacao, err := h.alocacaoService.UpdateAlocacao(c.Request.Context(), id, changes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ALOCACAO", "alocacao", id, c.ClientIP(), changes)

	c.JSON(http.StatusOK, schemas.NewAlocacaoResponse(*alocacao))
}

// DeleteAlocacao handles deleting an allocation.
// @Summary     Delete allocation
// @Tags        alocacoes
// @Produce     json
// @Param       id path int true "Allocation ID"
// @Success     200 {object} schemas.MessageResponse "Allocation deleted"
// @Failure     400 {object} ErrorResponse "Invalid allocation ID"
// @Failure     404 {object} ErrorResponse "Allocation not found"
// @Router      /alocacoes/{id} [delete]
func (h *AlocacaoHandler) DeleteAlocacao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.alocacaoService.DeleteAlocacao(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ALOCACAO", "alocacao", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, schemas.MessageResponse{Message: "Allocation deleted successfully"})
}
