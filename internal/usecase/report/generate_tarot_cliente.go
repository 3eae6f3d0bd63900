package report

import (
	"context"

	"github.com/liberta-studio/liberta-api/internal/audit"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// GenerateTarotCliente gera o relatório de análises frequenciais de
// um cliente. Uma análise só sai no template individual; histórico
// sai no consolidado.
type GenerateTarotCliente struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	docs  DocumentFactory
}

func NewGenerateTarotCliente(
	repo domain.Repository,
	audit *audit.Dispatcher,
	docs DocumentFactory,
) *GenerateTarotCliente {
	return &GenerateTarotCliente{
		repo:  repo,
		audit: audit,
		docs:  docs,
	}
}

func (uc *GenerateTarotCliente) Execute(
	ctx context.Context,
	userID string,
	cliente string,
) (*Result, error) {

	list, err := uc.repo.ListAnalises(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs := domain.FilterByClient(domain.FromAnalises(list), cliente)

	res, err := renderCliente(uc.docs, domain.VariantTarot, cliente, recs, timezone.Now())
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "report_generated",
		Entity:   "analise_cliente",
		EntityID: cliente,
	})

	return res, nil
}
