package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
)

var alocacaoErrors = dbErrorMap{
	notFound:         apperrors.ErrAlocacaoNotFound,
	duplicate:        apperrors.ErrDuplicateAlocacao,
	foreignKeyFields: []string{"cliente_id", "acao_id"},
}

// alocacaoService handles allocation-related business logic.
type alocacaoService struct {
	db *gorm.DB
}

// NewAlocacaoService creates a new AlocacaoServicer.
func NewAlocacaoService(db *gorm.DB) AlocacaoServicer {
	return &alocacaoService{db: db}
}

// withAcao loads the asset summary shown alongside each allocation.
func withAcao(db *gorm.DB) *gorm.DB {
	return db.Preload("Acao", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "nome", "ticker", "preco_atual")
	})
}

// AddAlocacao records that clienteID holds an asset. Both the customer and the
// asset must exist and the pair must not be allocated yet.
func (s *alocacaoService) AddAlocacao(ctx context.Context, clienteID uint, alocacao *models.Alocacao) (*models.Alocacao, error) {
	db := s.db.WithContext(ctx)

	// Advisory checks for friendlier errors; the foreign keys still decide.
	if err := exists(db, &models.Cliente{}, clienteID); err != nil {
		return nil, clienteErrors.translate(err)
	}
	if err := exists(db, &models.Acao{}, alocacao.AcaoID); err != nil {
		return nil, acaoErrors.translate(err)
	}

	alocacao.ClienteID = clienteID
	if err := db.Omit(clause.Associations).Create(alocacao).Error; err != nil {
		return nil, alocacaoErrors.translate(err)
	}

	return s.GetAlocacaoByID(ctx, alocacao.ID)
}

// ListClienteAlocacoes returns the allocations of a customer ordered by id.
// An unknown customer simply has none.
func (s *alocacaoService) ListClienteAlocacoes(ctx context.Context, clienteID uint) ([]models.Alocacao, error) {
	alocacoes := make([]models.Alocacao, 0)
	err := withAcao(s.db.WithContext(ctx)).
		Where("cliente_id = ?", clienteID).
		Order("id ASC").
		Find(&alocacoes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return alocacoes, nil
}

// GetAlocacaoByID retrieves an allocation by ID
func (s *alocacaoService) GetAlocacaoByID(ctx context.Context, id uint) (*models.Alocacao, error) {
	var alocacao models.Alocacao
	if err := withAcao(s.db.WithContext(ctx)).First(&alocacao, id).Error; err != nil {
		return nil, alocacaoErrors.translate(err)
	}
	return &alocacao, nil
}

// UpdateAlocacao applies the given column changes and returns the stored record.
func (s *alocacaoService) UpdateAlocacao(ctx context.Context, id uint, updates map[string]interface{}) (*models.Alocacao, error) {
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	result := s.db.WithContext(ctx).Model(&models.Alocacao{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, alocacaoErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrAlocacaoNotFound
	}

	return s.GetAlocacaoByID(ctx, id)
}

// DeleteAlocacao removes an allocation.
func (s *alocacaoService) DeleteAlocacao(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Alocacao{}, id)
	if result.Error != nil {
		return alocacaoErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAlocacaoNotFound
	}
	return nil
}

// exists returns gorm.ErrRecordNotFound when no row of model has the given id.
func exists(db *gorm.DB, model interface{}, id uint) error {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
