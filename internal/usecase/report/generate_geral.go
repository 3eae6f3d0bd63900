package report

import (
	"bytes"
	"context"

	"github.com/liberta-studio/liberta-api/internal/audit"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// GenerateGeral gera o relatório consolidado de todos os clientes de
// uma variante: um bloco por cliente, cada cliente em página nova.
type GenerateGeral struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	docs  DocumentFactory
}

func NewGenerateGeral(
	repo domain.Repository,
	audit *audit.Dispatcher,
	docs DocumentFactory,
) *GenerateGeral {
	return &GenerateGeral{
		repo:  repo,
		audit: audit,
		docs:  docs,
	}
}

func (uc *GenerateGeral) Execute(
	ctx context.Context,
	userID string,
	variant domain.Variant,
) (*Result, error) {

	recs, err := loadRecords(ctx, uc.repo, userID, variant)
	if err != nil {
		return nil, err
	}

	if _, err := domain.SelectTemplate(variant, len(recs)); err != nil {
		return nil, err
	}

	today := timezone.Now()
	doc := uc.docs()

	engine := domain.NewEngine(variant)
	engine.RenderAll(doc, domain.GroupByClient(recs))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	prefix := "Relatorio_Geral_Consolidado"
	entity := "atendimentos"
	if variant == domain.VariantTarot {
		prefix = "Relatorio_Geral_Tarot"
		entity = "analises"
	}

	uc.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "report_generated",
		Entity: entity,
	})

	return &Result{
		Filename: domain.Filename(prefix, "", today),
		PDF:      buf.Bytes(),
	}, nil
}
