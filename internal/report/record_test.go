package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liberta-studio/liberta-api/internal/models"
)

func TestGroupByClient(t *testing.T) {
	records := []Record{
		{ID: "1", Cliente: "Ana"},
		{ID: "2", Cliente: "Bruno"},
		{ID: "3", Cliente: "Ana"},
		{ID: "4", Cliente: "ana"},
	}

	groups := GroupByClient(records)
	require.Len(t, groups, 3)

	// Ordem da primeira aparição, sem normalização de caixa.
	assert.Equal(t, "Ana", groups[0].Nome)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "1", groups[0].Records[0].ID)
	assert.Equal(t, "3", groups[0].Records[1].ID)

	assert.Equal(t, "Bruno", groups[1].Nome)
	assert.Equal(t, 1, groups[1].Count)

	assert.Equal(t, "ana", groups[2].Nome)
}

func TestGroupByClientEmpty(t *testing.T) {
	assert.Empty(t, GroupByClient(nil))
}

func TestFilterByClient(t *testing.T) {
	records := []Record{
		{ID: "1", Cliente: "Ana"},
		{ID: "2", Cliente: "Bruno"},
		{ID: "3", Cliente: "Ana"},
	}

	got := FilterByClient(records, "Ana")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, FilterByClient(records, "Carla"))
}

func TestFromAtendimento(t *testing.T) {
	rec := FromAtendimento(models.Atendimento{
		ID:              "at-1",
		Nome:            "Maria",
		DataNascimento:  "1990-06-15",
		Signo:           "Gêmeos",
		TipoServico:     "mesa radionica",
		StatusPagamento: "pendente",
		DataAtendimento: "2024-02-01",
		Valor:           "120",
		Destino:         "Campinas",
		AtencaoFlag:     true,
	})

	assert.Equal(t, "Maria", rec.Cliente)
	assert.Equal(t, "Mesa Radiônica", rec.Servico)
	assert.Equal(t, "Pendente", rec.Status)
	assert.Equal(t, "2024-02-01", rec.Data)
	assert.True(t, rec.AtencaoFlag)
}

func TestFromAnalise(t *testing.T) {
	rec := FromAnalise(models.AnaliseFrequencial{
		ID:          "an-1",
		NomeCliente: "Clara",
		DataInicio:  "2024-01-10",
		Preco:       "",
		Finalizado:  false,
		Lembretes:   []models.Lembrete{{Texto: "Retorno", Dias: 15}},
	})

	assert.Equal(t, "Clara", rec.Cliente)
	assert.Equal(t, "Em Andamento", rec.Status)
	require.Len(t, rec.Lembretes, 1)
	assert.Equal(t, 15, rec.Lembretes[0].Dias)

	done := FromAnalise(models.AnaliseFrequencial{Finalizado: true})
	assert.Equal(t, "Finalizado", done.Status)
}
