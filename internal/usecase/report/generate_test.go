package report

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liberta-studio/liberta-api/internal/httperr"
	"github.com/liberta-studio/liberta-api/internal/models"
	domain "github.com/liberta-studio/liberta-api/internal/report"
)

// stubRepo entrega acervos fixos por usuário.
type stubRepo struct {
	atendimentos []models.Atendimento
	analises     []models.AnaliseFrequencial
}

func (s *stubRepo) GetAtendimento(ctx context.Context, userID, id string) (*models.Atendimento, error) {
	for i := range s.atendimentos {
		if s.atendimentos[i].ID == id && s.atendimentos[i].UserID == userID {
			return &s.atendimentos[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubRepo) ListAtendimentos(ctx context.Context, userID string) ([]models.Atendimento, error) {
	var out []models.Atendimento
	for _, a := range s.atendimentos {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) GetAnalise(ctx context.Context, userID, id string) (*models.AnaliseFrequencial, error) {
	for i := range s.analises {
		if s.analises[i].ID == id && s.analises[i].UserID == userID {
			return &s.analises[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubRepo) ListAnalises(ctx context.Context, userID string) ([]models.AnaliseFrequencial, error) {
	var out []models.AnaliseFrequencial
	for _, a := range s.analises {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeDocument grava todo texto emitido; Output despeja o texto
// concatenado, o suficiente para inspecionar o conteúdo do job.
type fakeDocument struct {
	pages int
	lines []string
}

func newFakeDocument() *fakeDocument { return &fakeDocument{pages: 1} }

func (f *fakeDocument) SetFont(style string, size float64) {}
func (f *fakeDocument) SetTextColor(r, g, b int)           {}
func (f *fakeDocument) Text(x, y float64, s string)        { f.lines = append(f.lines, s) }
func (f *fakeDocument) CenteredText(y float64, s string)   { f.lines = append(f.lines, s) }
func (f *fakeDocument) SplitText(s string, width float64) []string {
	return []string{s}
}
func (f *fakeDocument) AddPage()       { f.pages++ }
func (f *fakeDocument) PageCount() int { return f.pages }
func (f *fakeDocument) Output(w io.Writer) error {
	_, err := io.Copy(w, bytes.NewBufferString(strings.Join(f.lines, "\n")))
	return err
}

func fakeDocs(last **fakeDocument) DocumentFactory {
	return func() domain.Document {
		d := newFakeDocument()
		if last != nil {
			*last = d
		}
		return d
	}
}

func TestGenerateIndividual(t *testing.T) {
	repo := &stubRepo{atendimentos: []models.Atendimento{
		{ID: "at-1", UserID: "u1", Nome: "Maria Clara", DataAtendimento: "2024-02-01", Valor: "120", StatusPagamento: "pago"},
	}}

	uc := NewGenerateIndividual(repo, nil, fakeDocs(nil))

	res, err := uc.Execute(context.Background(), "u1", "at-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "Relatorio_Individual_Maria_Clara_"))
	assert.Contains(t, string(res.PDF), "Nome do Cliente: Maria Clara")
}

func TestGenerateIndividualNotFound(t *testing.T) {
	uc := NewGenerateIndividual(&stubRepo{}, nil, fakeDocs(nil))

	_, err := uc.Execute(context.Background(), "u1", "nope")
	assert.True(t, httperr.IsBusiness(err, "record_not_found"))
}

func TestGenerateIndividualScopedByUser(t *testing.T) {
	repo := &stubRepo{atendimentos: []models.Atendimento{
		{ID: "at-1", UserID: "outro", Nome: "Maria"},
	}}
	uc := NewGenerateIndividual(repo, nil, fakeDocs(nil))

	_, err := uc.Execute(context.Background(), "u1", "at-1")
	assert.True(t, httperr.IsBusiness(err, "record_not_found"))
}

func TestGenerateClienteEmptyAborts(t *testing.T) {
	var last *fakeDocument
	uc := NewGenerateCliente(&stubRepo{}, nil, fakeDocs(&last))

	_, err := uc.Execute(context.Background(), "u1", "Ninguém")
	assert.True(t, httperr.IsBusiness(err, "no_records"))

	// Conjunto vazio aborta antes de abrir documento.
	assert.Nil(t, last)
}

func TestGenerateClienteConsolidated(t *testing.T) {
	repo := &stubRepo{atendimentos: []models.Atendimento{
		{ID: "1", UserID: "u1", Nome: "Ana", DataAtendimento: "2024-01-01", Valor: "100"},
		{ID: "2", UserID: "u1", Nome: "Bia", DataAtendimento: "2024-01-02", Valor: "50"},
		{ID: "3", UserID: "u1", Nome: "Ana", DataAtendimento: "2024-02-01", Valor: "200"},
	}}
	uc := NewGenerateCliente(repo, nil, fakeDocs(nil))

	res, err := uc.Execute(context.Background(), "u1", "Ana")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "Relatorio_Detalhado_Ana_"))

	text := string(res.PDF)
	assert.Contains(t, text, "Total de Atendimentos: 2")
	assert.Contains(t, text, "Valor Total Gasto: R$ 300.00")
	assert.NotContains(t, text, "Bia")
}

func TestGenerateTarotClienteSingleIsIndividual(t *testing.T) {
	repo := &stubRepo{analises: []models.AnaliseFrequencial{
		{ID: "an-1", UserID: "u1", NomeCliente: "Clara", DataInicio: "2024-01-10", Preco: "150"},
	}}
	uc := NewGenerateTarotCliente(repo, nil, fakeDocs(nil))

	res, err := uc.Execute(context.Background(), "u1", "Clara")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "Relatorio_Individual_Tarot_Clara_"))
	assert.Contains(t, string(res.PDF), "Relatório Individual – Análise Atual")
}

func TestGenerateTarotClienteHistoryIsConsolidated(t *testing.T) {
	repo := &stubRepo{analises: []models.AnaliseFrequencial{
		{ID: "an-1", UserID: "u1", NomeCliente: "Clara", DataInicio: "2024-01-10", Preco: "150"},
		{ID: "an-2", UserID: "u1", NomeCliente: "Clara", DataInicio: "2024-02-10", Preco: ""},
	}}
	uc := NewGenerateTarotCliente(repo, nil, fakeDocs(nil))

	res, err := uc.Execute(context.Background(), "u1", "Clara")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "Relatorio_Geral_Tarot_Clara_"))

	text := string(res.PDF)
	assert.Contains(t, text, "Total de Análises: 2")
	assert.Contains(t, text, "Observações Gerais")
}

func TestGenerateGeral(t *testing.T) {
	repo := &stubRepo{atendimentos: []models.Atendimento{
		{ID: "1", UserID: "u1", Nome: "Ana", DataAtendimento: "2024-01-01", Valor: "100"},
		{ID: "2", UserID: "u1", Nome: "Bia", DataAtendimento: "2024-01-02", Valor: "50"},
	}}
	var last *fakeDocument
	uc := NewGenerateGeral(repo, nil, fakeDocs(&last))

	res, err := uc.Execute(context.Background(), "u1", domain.VariantHome)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Filename, "Relatorio_Geral_Consolidado_"))

	text := string(res.PDF)
	assert.Contains(t, text, "Nome do Cliente: Ana")
	assert.Contains(t, text, "Nome do Cliente: Bia")

	// Cada cliente em página nova.
	assert.GreaterOrEqual(t, last.PageCount(), 2)
}

func TestGenerateGeralEmptyAborts(t *testing.T) {
	uc := NewGenerateGeral(&stubRepo{}, nil, fakeDocs(nil))

	_, err := uc.Execute(context.Background(), "u1", domain.VariantTarot)
	assert.True(t, httperr.IsBusiness(err, "no_records"))
}

func TestGenerateTodos(t *testing.T) {
	repo := &stubRepo{analises: []models.AnaliseFrequencial{
		{ID: "1", UserID: "u1", NomeCliente: "Ana", DataInicio: "2024-01-01", Preco: "150"},
		{ID: "2", UserID: "u1", NomeCliente: "Bia", DataInicio: "2024-01-02", Preco: "150"},
		{ID: "3", UserID: "u1", NomeCliente: "Ana", DataInicio: "2024-02-01", Preco: "150"},
	}}
	uc := NewGenerateTodos(repo, nil, func() domain.Document { return newFakeDocument() }, nil, 1)

	results, err := uc.Execute(context.Background(), "u1", domain.VariantTarot)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Resultados na ordem de primeira aparição dos clientes.
	assert.True(t, strings.HasPrefix(results[0].Filename, "Relatorio_Geral_Tarot_Ana_"))
	assert.True(t, strings.HasPrefix(results[1].Filename, "Relatorio_Individual_Tarot_Bia_"))
}

func TestGenerateTodosEmptyAborts(t *testing.T) {
	uc := NewGenerateTodos(&stubRepo{}, nil, func() domain.Document { return newFakeDocument() }, nil, 1)

	_, err := uc.Execute(context.Background(), "u1", domain.VariantHome)
	assert.True(t, httperr.IsBusiness(err, "no_records"))
}
