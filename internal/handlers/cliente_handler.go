package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/schemas"
	"carteira/internal/services"
	"carteira/internal/validator"
)

// ClienteHandler handles customer-related requests.
type ClienteHandler struct {
	clienteService services.ClienteServicer
	auditService   services.AuditServicer
}

// NewClienteHandler creates a new ClienteHandler.
func NewClienteHandler(clienteService services.ClienteServicer, auditService services.AuditServicer) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService, auditService: auditService}
}

// CreateCliente handles creating a new customer.
// @Summary     Create customer
// @Description Register a customer. cpf_cnpj and email must be unique.
// @Tags        clientes
// @Accept      json
// @Produce     json
// @Param       request body schemas.CreateClienteRequest true "Customer details"
// @Success     201 {object} models.Cliente "Customer created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate cpf_cnpj or email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clientes [post]
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var req schemas.CreateClienteRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), req.ToModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_CLIENTE", "cliente", cliente.ID, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, cliente)
}

// ListClientes handles listing all customers.
// @Summary     List customers
// @Description Get every customer ordered by id
// @Tags        clientes
// @Produce     json
// @Success     200 {array}  models.Cliente "Customers"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clientes [get]
func (h *ClienteHandler) ListClientes(c *gin.Context) {
	clientes, err := h.clienteService.ListClientes(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, clientes)
}

// SearchCliente handles looking a customer up by document or name.
// @Summary     Search customer
// @Description Find the first customer by exact cpf_cnpj or by a case-insensitive part of the name. Exactly one criterion is required.
// @Tags        clientes
// @Produce     json
// @Param       nome_completo query string false "Part of the customer's name"
// @Param       cpf_cnpj      query string false "Customer document (11 or 14 digits)"
// @Success     200 {object} models.Cliente "Customer"
// @Failure     400 {object} ErrorResponse "Zero or two criteria supplied"
// @Failure     404 {object} ErrorResponse "No match"
// @Router      /clientes/buscar [get]
func (h *ClienteHandler) SearchCliente(c *gin.Context) {
	var q schemas.BuscarClienteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		switch {
		case validator.HasTag(err, validator.TagOneOfRequired):
			respondWithError(c, apperrors.WithDetails(apperrors.ErrMissingSearch, validator.Translate(err)))
			return
		case validator.HasTag(err, validator.TagOnlyOneOf):
			respondWithError(c, apperrors.WithDetails(apperrors.ErrInvalidSearch, validator.Translate(err)))
			return
		}
		respondWithError(c, validator.BindingError(err))
		return
	}

	cliente, err := h.clienteService.SearchCliente(c.Request.Context(), q.NomeCompleto, q.CpfCnpj)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// GetCliente handles retrieving a specific customer.
// @Summary     Get customer by ID
// @Description Get a specific customer by ID
// @Tags        clientes
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {object} models.Cliente "Customer details"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /clientes/{id} [get]
func (h *ClienteHandler) GetCliente(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cliente, err := h.clienteService.GetClienteByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// UpdateCliente handles a partial update of a customer.
// @Summary     Update customer
// @Description Change the supplied fields only. At least one field is required.
// @Tags        clientes
// @Accept      json
// @Produce     json
// @Param       id      path int                          true "Customer ID"
// @Param       request body schemas.UpdateClienteRequest true "Fields to change"
// @Success     200 {object} models.Cliente "Updated customer"
// @Failure     400 {object} ErrorResponse "Invalid input or empty update"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Failure     409 {object} ErrorResponse "Duplicate cpf_cnpj or email"
// @Router      /clientes/{id} [put]
func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req schemas.UpdateClienteRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	changes := req.Changes()
	cliente, err := h.clienteService.UpdateCliente(c.Request.Context(), id, changes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_CLIENTE", "cliente", id, c.ClientIP(), changes)

	c.JSON(http.StatusOK, cliente)
}

// DeleteCliente handles deleting a customer and, with it, their allocations.
// @Summary     Delete customer
// @Description Delete a customer. Their allocations are removed too.
// @Tags        clientes
// @Produce     json
// @Param       id path int true "Customer ID"
// @Success     200 {object} schemas.MessageResponse "Customer deleted"
// @Failure     400 {object} ErrorResponse "Invalid customer ID"
// @Failure     404 {object} ErrorResponse "Customer not found"
// @Router      /clientes/{id} [delete]
func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.clienteService.DeleteCliente(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_CLIENTE", "cliente", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, schemas.MessageResponse{Message: "Customer deleted successfully"})
}
