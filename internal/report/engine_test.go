package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liberta-studio/liberta-api/internal/models"
)

// fakeCanvas grava as instruções emitidas pelo motor sem desenhar nada.
// A quebra de linha simula uma fonte de largura fixa: dois milímetros
// por caractere.
type fakeCanvas struct {
	pages int
	color [3]int
	texts []placedText
}

type placedText struct {
	page  int
	x, y  float64
	text  string
	color [3]int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{pages: 1}
}

func (f *fakeCanvas) SetFont(style string, size float64) {}

func (f *fakeCanvas) SetTextColor(r, g, b int) { f.color = [3]int{r, g, b} }

func (f *fakeCanvas) Text(x, y float64, s string) {
	f.texts = append(f.texts, placedText{page: f.pages, x: x, y: y, text: s, color: f.color})
}

func (f *fakeCanvas) CenteredText(y float64, s string) { f.Text(105, y, s) }

func (f *fakeCanvas) SplitText(s string, width float64) []string {
	perLine := int(width / 2)
	runes := []rune(s)
	if len(runes) <= perLine {
		return []string{s}
	}
	var lines []string
	for len(runes) > perLine {
		lines = append(lines, string(runes[:perLine]))
		runes = runes[perLine:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

func (f *fakeCanvas) AddPage() { f.pages++ }

func (f *fakeCanvas) PageCount() int { return f.pages }

func (f *fakeCanvas) contains(sub string) bool {
	for _, t := range f.texts {
		if strings.Contains(t.text, sub) {
			return true
		}
	}
	return false
}

func (f *fakeCanvas) find(sub string) (placedText, bool) {
	for _, t := range f.texts {
		if strings.Contains(t.text, sub) {
			return t, true
		}
	}
	return placedText{}, false
}


func TestRenderIndividualTarot(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantTarot)

	e.RenderIndividual(c, Record{
		ID:             "a1",
		Cliente:        "Maria Clara",
		DataNascimento: "1990-06-15",
		Signo:          "Gêmeos",
		Data:           "2024-02-01",
		Valor:          "",
		Status:         "Em Andamento",
		AnaliseAntes:   "Cliente chegou ansiosa.",
		AnaliseDepois:  "Cliente saiu tranquila.",
		Lembretes: []models.Lembrete{
			{Texto: "Repetir banho de ervas", Dias: 7},
			{Texto: ""},
			{Texto: "Retorno para nova leitura", Dias: 0},
		},
		AtencaoFlag: true,
		AtencaoNota: "Evitar temas familiares",
	})

	assert.True(t, c.contains("Relatório Individual – Análise Atual"))
	assert.True(t, c.contains("Nome do Cliente: Maria Clara"))
	assert.True(t, c.contains("Data de Nascimento: 15/06/1990"))
	assert.True(t, c.contains("Signo: Gêmeos"))
	assert.True(t, c.contains("Data da Análise: 01/02/2024"))

	// Preço vazio cai no padrão da variante tarot.
	assert.True(t, c.contains("Valor da Análise: R$ 150.00"))

	assert.True(t, c.contains("Cliente chegou ansiosa."))
	assert.True(t, c.contains("Cliente saiu tranquila."))

	// Lembrete em branco é pulado e a numeração segue contínua.
	assert.True(t, c.contains("1. Repetir banho de ervas"))
	assert.True(t, c.contains("Avisar daqui a 7 dias"))
	assert.True(t, c.contains("2. Retorno para nova leitura"))
	assert.False(t, c.contains("3."))

	warn, ok := c.find("ATENÇÃO: Evitar temas familiares")
	require.True(t, ok)
	assert.Equal(t, [3]int{220, 38, 38}, warn.color)
}

func TestRenderIndividualHome(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantHome)

	e.RenderIndividual(c, Record{
		Cliente:    "João Batista",
		Data:       "2024-01-10",
		Valor:      "80",
		Status:     "Pago",
		Servico:    "Mesa Radiônica",
		Destino:    "São Paulo",
		Ano:        "2024",
		Detalhes:   "Sessão focada em limpeza energética.",
		Tratamento: "Sete dias de água fluidificada.",
		Indicacao:  "Indicado por Ana.",
	})

	assert.True(t, c.contains("Relatório Individual do Cliente"))
	assert.True(t, c.contains("Valor: R$ 80.00"))
	assert.True(t, c.contains("Destino: São Paulo"))
	assert.True(t, c.contains("Ano: 2024"))
	assert.True(t, c.contains("Detalhes da Sessão:"))
	assert.True(t, c.contains("Sessão focada em limpeza energética."))
	assert.True(t, c.contains("Tratamento:"))
	assert.True(t, c.contains("Indicação:"))

	// Sem flag de atenção, nenhum texto vermelho.
	for _, txt := range c.texts {
		assert.NotEqual(t, [3]int{220, 38, 38}, txt.color, "texto vermelho inesperado: %q", txt.text)
	}
}

func TestRenderIndividualOmitsEmptyFields(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantTarot)

	e.RenderIndividual(c, Record{Cliente: "Sem Dados"})

	assert.True(t, c.contains("Nome do Cliente: Sem Dados"))
	assert.False(t, c.contains("Data de Nascimento"))
	assert.False(t, c.contains("Signo:"))
	assert.False(t, c.contains("Análise – Antes"))
	assert.False(t, c.contains("Tratamento Realizado"))
}

func TestRenderConsolidatedStats(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantTarot)

	recs := []Record{
		{Cliente: "Maria", Data: "2024-01-01", Valor: "200", Status: "Finalizado", AnaliseAntes: "Início do processo."},
		{Cliente: "Maria", Data: "2024-02-01", Valor: "", Status: "Em Andamento"},
	}
	e.RenderConsolidated(c, "Maria", recs)

	assert.True(t, c.contains("Histórico Consolidado"))
	assert.True(t, c.contains("Data da Primeira Análise: 01/01/2024"))
	assert.True(t, c.contains("Data da Última Análise: 01/02/2024"))
	assert.True(t, c.contains("Total de Análises: 2"))

	// 200 + fallback 150.
	assert.True(t, c.contains("Valor Total Gasto: R$ 350.00"))
	assert.True(t, c.contains("Média por Análise: R$ 175.00"))

	assert.True(t, c.contains("1) Data: 01/01/2024 — Preço: R$ 200.00 — Status: Finalizado"))
	assert.True(t, c.contains("2) Data: 01/02/2024 — Preço: R$ 150.00 — Status: Em Andamento"))

	// Variante tarot fecha com as observações fixas.
	assert.True(t, c.contains("Observações Gerais"))
	assert.True(t, c.contains("• Evolução observada nas análises."))
}

func TestRenderConsolidatedSingleRecordMean(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantHome)

	e.RenderConsolidated(c, "Pedro", []Record{
		{Cliente: "Pedro", Data: "2024-03-01", Valor: "200", Status: "Pago", Servico: "Tarot"},
	})

	assert.True(t, c.contains("Total de Atendimentos: 1"))
	assert.True(t, c.contains("Valor Total Gasto: R$ 200.00"))
	assert.True(t, c.contains("Média por Atendimento: R$ 200.00"))
	assert.True(t, c.contains("1) Data: 01/03/2024 — Serviço: Tarot — Status: Pago"))
	assert.False(t, c.contains("Observações Gerais"))
}

func TestRenderConsolidatedPaginates(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantHome)

	long := strings.Repeat("Sessão longa com muitos detalhes registrados. ", 8)
	var recs []Record
	for i := 0; i < 12; i++ {
		recs = append(recs, Record{
			Cliente:  "Cliente Fiel",
			Data:     "2024-01-15",
			Valor:    "100",
			Status:   "Pago",
			Servico:  "Terapia",
			Detalhes: long,
		})
	}
	e.RenderConsolidated(c, "Cliente Fiel", recs)

	assert.GreaterOrEqual(t, c.PageCount(), 2, "histórico longo deve quebrar em múltiplas páginas")

	// Nenhuma linha abaixo do limiar mais uma folga de bloco.
	for _, txt := range c.texts {
		assert.LessOrEqual(t, txt.y, 260.0, "linha fora da área útil: %q", txt.text)
	}
}

func TestRenderAllOneClientPerPage(t *testing.T) {
	c := newFakeCanvas()
	e := NewEngine(VariantTarot)

	groups := []ClientGroup{
		{Nome: "Ana", Count: 1, Records: []Record{{Cliente: "Ana", Data: "2024-01-01", Valor: "150", Status: "Finalizado"}}},
		{Nome: "Bia", Count: 1, Records: []Record{{Cliente: "Bia", Data: "2024-01-02", Valor: "150", Status: "Finalizado"}}},
		{Nome: "Caio", Count: 1, Records: []Record{{Cliente: "Caio", Data: "2024-01-03", Valor: "150", Status: "Finalizado"}}},
	}
	e.RenderAll(c, groups)

	assert.GreaterOrEqual(t, c.PageCount(), 3)

	ana, _ := c.find("Nome do Cliente: Ana")
	bia, _ := c.find("Nome do Cliente: Bia")
	caio, _ := c.find("Nome do Cliente: Caio")
	assert.Equal(t, 1, ana.page)
	assert.Equal(t, 2, bia.page)
	assert.Equal(t, 3, caio.page)
}
