package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/models"
)

type RegistroGormRepository struct {
	db *gorm.DB
}

func NewRegistroGormRepository(db *gorm.DB) *RegistroGormRepository {
	return &RegistroGormRepository{db: db}
}

// --------------------------------------------------
// Atendimentos
// --------------------------------------------------

func (r *RegistroGormRepository) GetAtendimento(
	ctx context.Context,
	userID string,
	id string,
) (*models.Atendimento, error) {

	var at models.Atendimento
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&at).Error; err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *RegistroGormRepository) ListAtendimentos(
	ctx context.Context,
	userID string,
) ([]models.Atendimento, error) {

	var list []models.Atendimento
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("data_atendimento ASC, created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// --------------------------------------------------
// Análises frequenciais
// --------------------------------------------------

func (r *RegistroGormRepository) GetAnalise(
	ctx context.Context,
	userID string,
	id string,
) (*models.AnaliseFrequencial, error) {

	var an models.AnaliseFrequencial
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&an).Error; err != nil {
		return nil, err
	}
	return &an, nil
}

func (r *RegistroGormRepository) ListAnalises(
	ctx context.Context,
	userID string,
) ([]models.AnaliseFrequencial, error) {

	var list []models.AnaliseFrequencial
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("data_inicio ASC, created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
