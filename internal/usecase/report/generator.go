package report

import (
	"bytes"
	"context"
	"time"

	domain "github.com/liberta-studio/liberta-api/internal/report"
)

// Result é um relatório pronto para download: nome sugerido e bytes
// do PDF.
type Result struct {
	Filename string `json:"filename"`
	PDF      []byte `json:"-"`
}

// DocumentFactory abre um documento novo por job. Injetada pelos
// handlers com o branding do usuário; os testes passam uma fábrica
// de documentos em memória.
type DocumentFactory func() domain.Document

// renderCliente roda a tabela de decisão e desenha o relatório do
// cliente (individual ou consolidado) num documento novo.
func renderCliente(
	docs DocumentFactory,
	variant domain.Variant,
	cliente string,
	recs []domain.Record,
	today time.Time,
) (*Result, error) {

	tpl, err := domain.SelectTemplate(variant, len(recs))
	if err != nil {
		return nil, err
	}

	doc := docs()
	engine := domain.NewEngine(variant)

	if tpl == domain.TemplateIndividual {
		engine.RenderIndividual(doc, recs[0])
	} else {
		engine.RenderConsolidated(doc, cliente, recs)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return &Result{
		Filename: domain.Filename(domain.FilePrefix(variant, tpl), cliente, today),
		PDF:      buf.Bytes(),
	}, nil
}

// loadRecords materializa o acervo da variante já convertido para a
// forma neutra do motor.
func loadRecords(
	ctx context.Context,
	repo domain.Repository,
	userID string,
	variant domain.Variant,
) ([]domain.Record, error) {

	if variant == domain.VariantTarot {
		list, err := repo.ListAnalises(ctx, userID)
		if err != nil {
			return nil, err
		}
		return domain.FromAnalises(list), nil
	}

	list, err := repo.ListAtendimentos(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.FromAtendimentos(list), nil
}
