package report

import (
	"context"
	"sync"
	"time"

	"github.com/liberta-studio/liberta-api/internal/archive"
	"github.com/liberta-studio/liberta-api/internal/audit"
	"github.com/liberta-studio/liberta-api/internal/httperr"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// DefaultStagger é o intervalo entre os disparos do lote. Os jobs são
// independentes; o escalonamento só evita rajada de downloads no
// cliente, nunca é requisito de correção.
const DefaultStagger = 300 * time.Millisecond

// GenerateTodos gera um relatório por cliente, em lote. Cada job roda
// numa goroutine própria com atraso fixo crescente (intervalo vezes a
// posição do cliente na lista). Uma vez iniciado, o lote vai até o fim:
// não há cancelamento.
type GenerateTodos struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	docs    DocumentFactory
	arch    *archive.Uploader
	stagger time.Duration
}

func NewGenerateTodos(
	repo domain.Repository,
	audit *audit.Dispatcher,
	docs DocumentFactory,
	arch *archive.Uploader,
	stagger time.Duration,
) *GenerateTodos {
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	return &GenerateTodos{
		repo:    repo,
		audit:   audit,
		docs:    docs,
		arch:    arch,
		stagger: stagger,
	}
}

func (uc *GenerateTodos) Execute(
	ctx context.Context,
	userID string,
	variant domain.Variant,
) ([]Result, error) {

	recs, err := loadRecords(ctx, uc.repo, userID, variant)
	if err != nil {
		return nil, err
	}

	groups := domain.GroupByClient(recs)
	if len(groups) == 0 {
		return nil, httperr.ErrBusiness("no_records")
	}

	today := timezone.Now()

	results := make([]*Result, len(groups))
	errs := make([]error, len(groups))

	var wg sync.WaitGroup
	for i, g := range groups {
		wg.Add(1)
		go func(i int, g domain.ClientGroup) {
			defer wg.Done()
			time.Sleep(uc.stagger * time.Duration(i))
			results[i], errs[i] = renderCliente(uc.docs, variant, g.Nome, g.Records, today)
		}(i, g)
	}
	wg.Wait()

	out := make([]Result, 0, len(groups))
	for i, res := range results {
		if errs[i] != nil {
			uc.audit.Dispatch(audit.Event{
				UserID:   userID,
				Action:   "report_failed",
				Entity:   "cliente",
				EntityID: groups[i].Nome,
				Metadata: map[string]string{"error": errs[i].Error()},
			})
			continue
		}
		out = append(out, *res)
	}

	if uc.arch.Enabled() {
		// Lote iniciado termina: o arquivamento não herda o contexto
		// da requisição.
		bg := context.Background()
		for _, res := range out {
			if err := uc.arch.Store(bg, userID, res.Filename, res.PDF); err != nil {
				uc.audit.Dispatch(audit.Event{
					UserID:   userID,
					Action:   "report_archive_failed",
					Entity:   "relatorio",
					EntityID: res.Filename,
					Metadata: map[string]string{"error": err.Error()},
				})
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "reports_batch_generated",
		Entity:   "cliente",
		Metadata: map[string]int{"clientes": len(groups), "gerados": len(out)},
	})

	return out, nil
}
