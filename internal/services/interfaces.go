package services

import (
	"context"

	"carteira/internal/models"
)

// ClienteServicer defines the contract for customer-related business logic.
type ClienteServicer interface {
	CreateCliente(ctx context.Context, cliente *models.Cliente) (*models.Cliente, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	GetClienteByID(ctx context.Context, id uint) (*models.Cliente, error)
	SearchCliente(ctx context.Context, nomeCompleto, cpfCnpj string) (*models.Cliente, error)
	UpdateCliente(ctx context.Context, id uint, updates map[string]interface{}) (*models.Cliente, error)
	DeleteCliente(ctx context.Context, id uint) error
}

// AcaoServicer defines the contract for asset-related business logic.
type AcaoServicer interface {
	CreateAcao(ctx context.Context, acao *models.Acao) (*models.Acao, error)
	ListAcoes(ctx context.Context) ([]models.Acao, error)
	GetAcaoByID(ctx context.Context, id uint) (*models.Acao, error)
	UpdateAcao(ctx context.Context, id uint, updates map[string]interface{}) (*models.Acao, error)
	DeleteAcao(ctx context.Context, id uint) error
}

// AlocacaoServicer defines the contract for allocation-related business logic.
// Allocations returned by it carry their Acao loaded.
type AlocacaoServicer interface {
	AddAlocacao(ctx context.Context, clienteID uint, alocacao *models.Alocacao) (*models.Alocacao, error)
	ListClienteAlocacoes(ctx context.Context, clienteID uint) ([]models.Alocacao, error)
	GetAlocacaoByID(ctx context.Context, id uint) (*models.Alocacao, error)
	UpdateAlocacao(ctx context.Context, id uint, updates map[string]interface{}) (*models.Alocacao, error)
	DeleteAlocacao(ctx context.Context, id uint) error
}

// AuditServicer defines the contract for audit event recording.
type AuditServicer interface {
	Log(action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
