package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/schemas"
	"carteira/internal/services"
)

// AcaoHandler handles asset-related requests.
type AcaoHandler struct {
	acaoService  services.AcaoServicer
	auditService services.AuditServicer
}

// NewAcaoHandler creates a new AcaoHandler.
func NewAcaoHandler(acaoService services.AcaoServicer, auditService services.AuditServicer) *AcaoHandler {
	return &AcaoHandler{acaoService: acaoService, auditService: auditService}
}

// CreateAcao handles creating a new asset.
// @Summary     Create asset
// @Description Register an asset. nome and ticker must be unique.
// @Tags        acoes
// @Accept      json
// @Produce     json
// @Param       request body schemas.CreateAcaoRequest true "Asset details"
// @Success     201 {object} models.Acao "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate nome or ticker"
// @Router      /acoes [post]
func (h *AcaoHandler) CreateAcao(c *gin.Context) {
	var req schemas.CreateAcaoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	acao, err := h.acaoService.CreateAcao(c.Request.Context(), req.ToModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ACAO", "acao", acao.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, acao)
}

// ListAcoes handles listing all assets.
// @Summary     List assets
// @Tags        acoes
// @Produce     json
// @Success     200 {array}  models.Acao "Assets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /acoes [get]
func (h *AcaoHandler) ListAcoes(c *gin.Context) {
	acoes, err := h.acaoService.ListAcoes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, acoes)
}

// GetAcao handles retrieving a specific asset.
// @Summary     Get asset by ID
// @Tags        acoes
// @Produce     json
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Acao "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /acoes/{id} [get]
func (h *AcaoHandler) GetAcao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	acao, err := h.acaoService.GetAcaoByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, acao)
}

// UpdateAcao handles a partial update of an asset.
// @Summary     Update asset
// @Description Change the supplied fields only. At least one field is required.
// @Tags        acoes
// @Accept      json
// @Produce     json
// @Param       id      path int                       true "Asset ID"
// @Param       request body schemas.UpdateAcaoRequest true "Fields to change"
// @Success     200 {object} models.Acao "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input or empty update"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Duplicate nome or ticker"
// @Router      /acoes/{id} [put]
func (h *AcaoHandler) UpdateAcao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req schemas.UpdateAcaoRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	changes := req.Changes()
	acao, err := h.acaoService.UpdateAcao(c.Request.Context(), id, changes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ACAO", "acao", id, c.ClientIP(), changes)

	c.JSON(http.StatusOK, acao)
}

// DeleteAcao handles deleting an asset nobody holds.
// @Summary     Delete asset
// @Description Delete an asset. Refused while any allocation references it.
// @Tags        acoes
// @Produce     json
// @Param       id path int true "Asset ID"
// @Success     200 {object} schemas.MessageResponse "Asset deleted"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset in use"
// @Router      /acoes/{id} [delete]
func (h *AcaoHandler) DeleteAcao(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.acaoService.DeleteAcao(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ACAO", "acao", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, schemas.MessageResponse{Message: "Asset deleted successfully"})
}
