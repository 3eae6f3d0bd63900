package report

import (
	"context"

	"github.com/liberta-studio/liberta-api/internal/audit"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// GenerateCliente gera o histórico de um cliente na variante
// genérica (atendimentos). Cliente sem registros aborta sem arquivo.
type GenerateCliente struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	docs  DocumentFactory
}

func NewGenerateCliente(
	repo domain.Repository,
	audit *audit.Dispatcher,
	docs DocumentFactory,
) *GenerateCliente {
	return &GenerateCliente{
		repo:  repo,
		audit: audit,
		docs:  docs,
	}
}

func (uc *GenerateCliente) Execute(
	ctx context.Context,
	userID string,
	cliente string,
) (*Result, error) {

	list, err := uc.repo.ListAtendimentos(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs := domain.FilterByClient(domain.FromAtendimentos(list), cliente)

	res, err := renderCliente(uc.docs, domain.VariantHome, cliente, recs, timezone.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "report_generated",
		Entity:   "cliente",
		EntityID: cliente,
	})

	return res, nil
}
