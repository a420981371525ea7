package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
)

var acaoErrors = dbErrorMap{
	notFound:         apperrors.ErrAcaoNotFound,
	foreignKey:       apperrors.ErrAcaoInUse,
	foreignKeyFields: []string{"acao_id"},
}

// acaoService handles asset-related business logic.
type acaoService struct {
	db *gorm.DB
}

// NewAcaoService creates a new AcaoServicer.
func NewAcaoService(db *gorm.DB) AcaoServicer {
	return &acaoService{db: db}
}

// CreateAcao inserts a new asset. nome and ticker must be unique.
func (s *acaoService) CreateAcao(ctx context.Context, acao *models.Acao) (*models.Acao, error) {
	if err := s.db.WithContext(ctx).Create(acao).Error; err != nil {
		return nil, acaoErrors.translate(err)
	}
	return acao, nil
}

// ListAcoes returns every asset ordered by id.
func (s *acaoService) ListAcoes(ctx context.Context) ([]models.Acao, error) {
	acoes := make([]models.Acao, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&acoes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return acoes, nil
}

// GetAcaoByID retrieves an asset by ID
func (s *acaoService) GetAcaoByID(ctx context.Context, id uint) (*models.Acao, error) {
	var acao models.Acao
	if err := s.db.WithContext(ctx).First(&acao, id).Error; err != nil {
		return nil, acaoErrors.translate(err)
	}
	return &acao, nil
}

// UpdateAcao applies the given column changes and returns the stored record.
func (s *acaoService) UpdateAcao(ctx context.Context, id uint, updates map[string]interface{}) (*models.Acao, error) {
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	result := s.db.WithContext(ctx).Model(&models.Acao{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, acaoErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrAcaoNotFound
	}

	return s.GetAcaoByID(ctx, id)
}

// DeleteAcao removes an asset. It fails with ACAO_IN_USE while any
// allocation references it.
func (s *acaoService) DeleteAcao(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Acao{}, id)
	if result.Error != nil {
		return acaoErrors.translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAcaoNotFound
	}
	return nil
}
