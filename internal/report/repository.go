package report

import (
	"context"

	"github.com/liberta-studio/liberta-api/internal/models"
)

// Repository é a leitura necessária para montar relatórios. Os
// registros voltam completos e em ordem cronológica de data; o motor
// nunca relê no meio de um job.
type Repository interface {
	// -------- Atendimentos --------
	GetAtendimento(
		ctx context.Context,
		userID string,
		id string,
	) (*models.Atendimento, error)

	ListAtendimentos(
		ctx context.Context,
		userID string,
	) ([]models.Atendimento, error)

	// -------- Análises frequenciais --------
	GetAnalise(
		ctx context.Context,
		userID string,
		id string,
	) (*models.AnaliseFrequencial, error)

	ListAnalises(
		ctx context.Context,
		userID string,
	) ([]models.AnaliseFrequencial, error)
}
