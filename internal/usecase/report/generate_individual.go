package report

import (
	"bytes"
	"context"

	"github.com/liberta-studio/liberta-api/internal/audit"
	"github.com/liberta-studio/liberta-api/internal/httperr"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// GenerateIndividual gera o relatório de um único atendimento,
// buscado por id dentro do acervo do usuário.
type GenerateIndividual struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	docs  DocumentFactory
}

func NewGenerateIndividual(
	repo domain.Repository,
	audit *audit.Dispatcher,
	docs DocumentFactory,
) *GenerateIndividual {
	return &GenerateIndividual{
		repo:  repo,
		audit: audit,
		docs:  docs,
	}
}

func (uc *GenerateIndividual) Execute(
	ctx context.Context,
	userID string,
	atendimentoID string,
) (*Result, error) {

	at, err := uc.repo.GetAtendimento(ctx, userID, atendimentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("record_not_found")
	}

	today := timezone.Now()
	doc := uc.docs()

	engine := domain.NewEngine(domain.VariantHome)
	engine.RenderIndividual(doc, domain.FromAtendimento(*at))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "report_generated",
		Entity:   "atendimento",
		EntityID: at.ID,
	})

	return &Result{
		Filename: domain.Filename("Relatorio_Individual", at.Nome, today),
		PDF:      buf.Bytes(),
	}, nil
}
