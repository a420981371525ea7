package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
)

var clienteErrors = dbErrorMap{notFound: apperrors.ErrClienteNotFound}

// clienteService handles customer-related business logic.
type clienteService struct {
	db *gorm.DB
}

// NewClienteService creates a new ClienteServicer.
func NewClienteService(db *gorm.DB) ClienteServicer {
	return &clienteService{db: db}
}

// CreateCliente inserts a new customer. cpf_cnpj and email must be unique.
func (s *clienteService) CreateCliente(ctx context.Context, cliente *models.Cliente) (*models.Cliente, error) {
	if err := s.db.WithContext(ctx).Create(cliente).Error; err != nil {
		return nil, clienteErrors.translate(err)
	}
	return cliente, nil
}

// ListClientes returns every customer ordered by id.
func (s *clienteService) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	clientes := make([]models.Cliente, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&clientes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return clientes, nil
}

// GetClienteByID retrieves a customer by ID
func (s *clienteService) GetClienteByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := s.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, clienteErrors.translate(err)
	}
	return &cliente, nil
}

// SearchCliente finds the first customer matching cpfCnpj exactly or, when no
// document is given, whose name contains nomeCompleto ignoring case.
func (s *clienteService) SearchCliente(ctx context.Context, nomeCompleto, cpfCnpj string) (*models.Cliente, error) {
	query := s.db.WithContext(ctx)
	switch {
	case cpfCnpj != "":
		query = query.Where("cpf_cnpj = ?", cpfCnpj)
	case nomeCompleto != "":
		query = query.Where(`LOWER(nome_completo) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(nomeCompleto))+"%")
	default:
		return nil, apperrors.ErrMissingSearch
	}

	var cliente models.Cliente
	if err := query.First(&cliente).Error; err != nil {
		return nil, clienteErrors.translate(err)
	}
	return &cliente, nil
}

// likeEscaper makes the LIKE wildcards match themselves under ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// UpdateCliente applies the given column changes and returns the stored record.
func (s *clienteService) UpdateCliente(ctx context.Context, id uint, updates map[string]interface{}) (*models.Cliente, error) {
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	result := s.db.WithContext(ctx).Model(&models.Cliente{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, clienteErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrClienteNotFound
	}

	return s.GetClienteByID(ctx, id)
}

// DeleteCliente removes a customer. Their allocations go with them.
func (s *clienteService) DeleteCliente(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if result.Error != nil {
		return clienteErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrClienteNotFound
	}
	return nil
}
