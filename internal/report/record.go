package report

import (
	domain "github.com/liberta-studio/liberta-api/internal/domain/atendimento"
	"github.com/liberta-studio/liberta-api/internal/models"
)

// ======================================================
// REGISTRO NEUTRO
// ======================================================

// Record é a forma neutra que o motor de layout consome: as duas
// variantes (atendimento e análise frequencial) convergem para cá,
// cada uma preenchendo o subconjunto de campos narrativos que possui.
type Record struct {
	ID      string
	Cliente string

	DataNascimento string
	Signo          string

	// Data do atendimento ou início da análise; ordena o histórico.
	Data string

	Valor  string
	Status string

	// Variante genérica
	Servico    string
	Destino    string
	Ano        string
	Detalhes   string
	Tratamento string
	Indicacao  string

	// Variante tarot
	AnaliseAntes  string
	AnaliseDepois string
	Lembretes     []models.Lembrete

	AtencaoFlag bool
	AtencaoNota string
}

func FromAtendimento(a models.Atendimento) Record {
	return Record{
		ID:             a.ID,
		Cliente:        a.Nome,
		DataNascimento: a.DataNascimento,
		Signo:          a.Signo,
		Data:           a.DataAtendimento,
		Valor:          a.Valor,
		Status:         domain.StatusPagamento(a.StatusPagamento).Label(),
		Servico:        domain.FormatServico(a.TipoServico),
		Destino:        a.Destino,
		Ano:            a.Ano,
		Detalhes:       a.Detalhes,
		Tratamento:     a.Tratamento,
		Indicacao:      a.Indicacao,
		AtencaoFlag:    a.AtencaoFlag,
		AtencaoNota:    a.AtencaoNota,
	}
}

func FromAnalise(a models.AnaliseFrequencial) Record {
	return Record{
		ID:             a.ID,
		Cliente:        a.NomeCliente,
		DataNascimento: a.DataNascimento,
		Signo:          a.Signo,
		Data:           a.DataInicio,
		Valor:          a.Preco,
		Status:         domain.StatusAnalise(a.Finalizado),
		AnaliseAntes:   a.AnaliseAntes,
		AnaliseDepois:  a.AnaliseDepois,
		Lembretes:      a.Lembretes,
		AtencaoFlag:    a.AtencaoFlag,
		AtencaoNota:    a.AtencaoNota,
	}
}

func FromAtendimentos(list []models.Atendimento) []Record {
	out := make([]Record, 0, len(list))
	for _, a := range list {
		out = append(out, FromAtendimento(a))
	}
	return out
}

func FromAnalises(list []models.AnaliseFrequencial) []Record {
	out := make([]Record, 0, len(list))
	for _, a := range list {
		out = append(out, FromAnalise(a))
	}
	return out
}

// ======================================================
// AGRUPAMENTO POR CLIENTE
// ======================================================

type ClientGroup struct {
	Nome    string   `json:"nome"`
	Count   int      `json:"count"`
	Records []Record `json:"records"`
}

// GroupByClient agrupa por igualdade exata do nome (sem normalização:
// variações de caixa ou espaço são clientes distintos, de propósito).
// A ordem dos grupos é a da primeira aparição; dentro do grupo, a ordem
// de entrada é preservada.
func GroupByClient(records []Record) []ClientGroup {
	index := make(map[string]int)
	var groups []ClientGroup

	for _, r := range records {
		i, ok := index[r.Cliente]
		if !ok {
			index[r.Cliente] = len(groups)
			groups = append(groups, ClientGroup{Nome: r.Cliente})
			i = len(groups) - 1
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].Count++
	}

	return groups
}

// FilterByClient devolve só os registros do cliente, na ordem de entrada.
func FilterByClient(records []Record, cliente string) []Record {
	var out []Record
	for _, r := range records {
		if r.Cliente == cliente {
			out = append(out, r)
		}
	}
	return out
}
