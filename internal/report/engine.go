package report

import (
	"fmt"

	"github.com/liberta-studio/liberta-api/internal/models"
)

// =========================================================
// MOTOR DE LAYOUT DOS RELATÓRIOS
// =========================================================
//
// Todas as medidas estão em milímetros sobre página A4 retrato
// (210 x 297). O cursor vertical avança conforme o conteúdo é
// emitido e quebra a página quando ultrapassa o limiar.

const (
	marginX        = 14.0
	indentX        = 20.0
	titleY         = 15.0
	bodyStartY     = 30.0
	resetY         = 20.0
	breakThreshold = 250.0
	obsThreshold   = 200.0
	wrapWidth      = 180.0
	reminderWidth  = 170.0
	lineHeight     = 5.0
	kvLineHeight   = 8.0
)

// Engine desenha relatórios sobre um Canvas. A variante define
// cores, rótulos e valores padrão; a mesma rotina de consolidação
// atende atendimentos de casa e análises de tarot.
type Engine struct {
	variant Variant
	style   Style
}

func NewEngine(v Variant) *Engine {
	return &Engine{variant: v, style: v.Style()}
}

// cursor acompanha a posição vertical corrente no canvas.
type cursor struct {
	c Canvas
	y float64
}

func (cur *cursor) pageBreak() {
	cur.c.AddPage()
	cur.y = resetY
}

// ensureRoom quebra a página antes de iniciar um bloco quando o
// cursor já passou do limiar inferior.
func (cur *cursor) ensureRoom() {
	if cur.y > breakThreshold {
		cur.pageBreak()
	}
}

// wrapped emite um parágrafo quebrado na largura dada, verificando
// o limiar a cada linha.
func (cur *cursor) wrapped(x, width float64, text string) {
	for _, line := range cur.c.SplitText(text, width) {
		cur.ensureRoom()
		cur.c.Text(x, cur.y, line)
		cur.y += lineHeight
	}
}

func (cur *cursor) line(x float64, s string) {
	cur.ensureRoom()
	cur.c.Text(x, cur.y, s)
	cur.y += lineHeight
}

func (cur *cursor) kv(s string) {
	cur.ensureRoom()
	cur.c.Text(marginX, cur.y, s)
	cur.y += kvLineHeight
}

// =========================================================
// RELATÓRIO INDIVIDUAL
// =========================================================

// RenderIndividual desenha o relatório de um único registro.
func (e *Engine) RenderIndividual(c Canvas, rec Record) {
	title := "Relatório Individual do Cliente"
	if e.variant == VariantTarot {
		title = "Relatório Individual – Análise Atual"
	}
	e.emitTitle(c, title)

	cur := &cursor{c: c, y: bodyStartY}
	c.SetFont("B", 12)
	c.SetTextColor(bodyColor.R, bodyColor.G, bodyColor.B)

	cur.kv("Nome do Cliente: " + rec.Cliente)
	if rec.DataNascimento != "" {
		cur.kv("Data de Nascimento: " + FormatDate(rec.DataNascimento))
	}
	if rec.Signo != "" {
		cur.kv("Signo: " + rec.Signo)
	}
	if rec.Data != "" {
		if e.variant == VariantTarot {
			cur.kv("Data da Análise: " + FormatDate(rec.Data))
		} else {
			cur.kv("Data do Atendimento: " + FormatDate(rec.Data))
		}
	}
	valor := ParseAmount(rec.Valor, e.style.DefaultAmount)
	if e.variant == VariantTarot {
		cur.kv("Valor da Análise: " + FormatBRL(valor))
	} else {
		cur.kv("Valor: " + FormatBRL(valor))
	}
	cur.y += 7

	c.SetFont("", 11)
	if e.variant == VariantTarot {
		e.section(cur, "Análise – Antes", rec.AnaliseAntes)
		e.section(cur, "Análise – Depois", rec.AnaliseDepois)
		e.reminders(cur, rec.Lembretes)
	} else {
		if rec.Destino != "" {
			cur.line(marginX, "Destino: "+rec.Destino)
		}
		if rec.Ano != "" {
			cur.line(marginX, "Ano: "+rec.Ano)
		}
		if rec.Destino != "" || rec.Ano != "" {
			cur.y += 5
		}
		e.section(cur, "Detalhes da Sessão", rec.Detalhes)
		e.section(cur, "Tratamento", rec.Tratamento)
		e.section(cur, "Indicação", rec.Indicacao)
	}

	e.attention(cur, rec)
}

// section emite um bloco narrativo com rótulo em negrito e corpo
// quebrado em linhas. Blocos vazios não ocupam espaço.
func (e *Engine) section(cur *cursor, label, text string) {
	if text == "" {
		return
	}
	cur.ensureRoom()
	cur.c.SetFont("B", 11)
	cur.c.Text(marginX, cur.y, label+":")
	cur.y += lineHeight + 1
	cur.c.SetFont("", 11)
	cur.wrapped(marginX, wrapWidth, text)
	cur.y += 5
}

// reminders emite a lista numerada de lembretes da análise.
func (e *Engine) reminders(cur *cursor, lembretes []models.Lembrete) {
	items := nonBlank(lembretes)
	if len(items) == 0 {
		return
	}
	cur.ensureRoom()
	cur.c.SetFont("B", 11)
	cur.c.Text(marginX, cur.y, "Tratamento Realizado:")
	cur.y += lineHeight + 1
	cur.c.SetFont("", 11)
	for i, l := range items {
		cur.wrapped(indentX, reminderWidth, fmt.Sprintf("%d. %s", i+1, l.Texto))
		if l.Dias > 0 {
			cur.line(indentX, fmt.Sprintf("Avisar daqui a %d dias", l.Dias))
		}
	}
	cur.y += 5
}

// attention emite o bloco destacado em vermelho para clientes
// marcados com a flag de atenção.
func (e *Engine) attention(cur *cursor, rec Record) {
	if !rec.AtencaoFlag {
		return
	}
	cur.ensureRoom()
	nota := rec.AtencaoNota
	if nota == "" {
		nota = "Este cliente requer atenção especial"
	}
	cur.c.SetTextColor(attentionColor.R, attentionColor.G, attentionColor.B)
	cur.c.SetFont("B", 11)
	cur.wrapped(marginX, wrapWidth, "ATENÇÃO: "+nota)
	cur.c.SetTextColor(bodyColor.R, bodyColor.G, bodyColor.B)
	cur.c.SetFont("", 11)
	cur.y += 3
}

// =========================================================
// RELATÓRIO CONSOLIDADO
// =========================================================

// RenderConsolidated desenha o histórico consolidado de um único
// cliente: identificação, totais e um bloco por registro.
func (e *Engine) RenderConsolidated(c Canvas, cliente string, recs []Record) {
	title := "Relatório Geral do Cliente (Detalhado)"
	if e.variant == VariantTarot {
		title = "Relatório Geral do Cliente – Histórico Consolidado (Detalhado)"
	}
	e.emitTitle(c, title)

	cur := &cursor{c: c, y: bodyStartY}
	e.clientBody(cur, cliente, recs)
}

// RenderAll desenha o relatório geral de todos os clientes, um
// bloco consolidado por cliente, cada cliente em página nova.
func (e *Engine) RenderAll(c Canvas, groups []ClientGroup) {
	title := "Relatório Geral Consolidado"
	if e.variant == VariantTarot {
		title = "Relatório Geral de Todos os Clientes"
	}
	e.emitTitle(c, title)

	cur := &cursor{c: c, y: bodyStartY + 5}
	for i, g := range groups {
		if i > 0 {
			cur.pageBreak()
		}
		e.clientBody(cur, g.Nome, g.Records)
	}
}

// clientBody emite identificação, estatísticas e os blocos de
// registro de um cliente. Compartilhado entre o consolidado de um
// cliente e o geral de todos.
func (e *Engine) clientBody(cur *cursor, cliente string, recs []Record) {
	c := cur.c
	c.SetFont("B", 12)
	c.SetTextColor(bodyColor.R, bodyColor.G, bodyColor.B)

	cur.kv("Nome do Cliente: " + cliente)
	if len(recs) == 0 {
		return
	}
	first := recs[0]
	if first.DataNascimento != "" {
		cur.kv("Data de Nascimento: " + FormatDate(first.DataNascimento))
	}
	if first.Signo != "" {
		cur.kv("Signo: " + first.Signo)
	}
	if e.variant == VariantTarot {
		cur.kv("Data da Primeira Análise: " + FormatDate(first.Data))
		cur.kv("Data da Última Análise: " + FormatDate(recs[len(recs)-1].Data))
	}

	total := 0.0
	for _, r := range recs {
		total += ParseAmount(r.Valor, e.style.DefaultAmount)
	}
	n := len(recs)
	cur.kv(fmt.Sprintf("Total de %s: %d", e.style.UnitPlural, n))
	cur.kv("Valor Total Gasto: " + FormatBRL(total))
	cur.kv(fmt.Sprintf("Média por %s: %s", e.style.UnitSingular, FormatBRL(total/float64(n))))
	cur.y += 4

	for i, r := range recs {
		cur.ensureRoom()
		e.recordBlock(cur, i+1, r)
	}

	if e.variant == VariantTarot {
		e.observations(cur)
	}
}

// recordBlock emite um registro do histórico consolidado.
func (e *Engine) recordBlock(cur *cursor, index int, rec Record) {
	c := cur.c
	c.SetFont("B", 11)
	var header string
	if e.variant == VariantTarot {
		preco := FormatBRL(ParseAmount(rec.Valor, e.style.DefaultAmount))
		header = fmt.Sprintf("%d) Data: %s — Preço: %s — Status: %s", index, FormatDate(rec.Data), preco, rec.Status)
	} else {
		header = fmt.Sprintf("%d) Data: %s — Serviço: %s — Status: %s", index, FormatDate(rec.Data), rec.Servico, rec.Status)
	}
	cur.line(marginX, header)
	cur.y += 1
	c.SetFont("", 10)

	if e.variant == VariantTarot {
		if rec.AnaliseAntes != "" {
			cur.wrapped(indentX, reminderWidth, "Análise Antes: "+rec.AnaliseAntes)
		}
		if rec.AnaliseDepois != "" {
			cur.wrapped(indentX, reminderWidth, "Análise Depois: "+rec.AnaliseDepois)
		}
		if items := nonBlank(rec.Lembretes); len(items) > 0 {
			cur.line(indentX, "Tratamentos/Lembretes:")
			for i, l := range items {
				texto := fmt.Sprintf("%d. %s", i+1, l.Texto)
				if l.Dias > 0 {
					texto = fmt.Sprintf("%s (%d dias)", texto, l.Dias)
				}
				cur.wrapped(indentX+4, reminderWidth, texto)
			}
		}
	} else {
		if rec.Destino != "" {
			cur.line(indentX, "Destino: "+rec.Destino)
		}
		if rec.Ano != "" {
			cur.line(indentX, "Ano: "+rec.Ano)
		}
		if rec.Detalhes != "" {
			cur.wrapped(indentX, reminderWidth, "Detalhes da Sessão: "+rec.Detalhes)
		}
		if rec.Tratamento != "" {
			cur.wrapped(indentX, reminderWidth, "Tratamento: "+rec.Tratamento)
		}
		if rec.Indicacao != "" {
			cur.wrapped(indentX, reminderWidth, "Indicação: "+rec.Indicacao)
		}
	}

	if rec.AtencaoFlag {
		nota := rec.AtencaoNota
		if nota == "" {
			nota = "Este cliente requer atenção especial"
		}
		c.SetTextColor(attentionColor.R, attentionColor.G, attentionColor.B)
		c.SetFont("B", 10)
		cur.wrapped(indentX, reminderWidth, "ATENÇÃO: "+nota)
		c.SetTextColor(bodyColor.R, bodyColor.G, bodyColor.B)
		c.SetFont("", 10)
	}
	cur.y += 6
}

// observations emite as observações gerais fixas dos relatórios
// de tarot.
func (e *Engine) observations(cur *cursor) {
	if cur.y > obsThreshold {
		cur.pageBreak()
	}
	c := cur.c
	c.SetFont("B", 12)
	c.Text(marginX, cur.y, "Observações Gerais")
	cur.y += 10
	c.SetFont("", 10)
	for _, linha := range []string{
		"• Evolução observada nas análises.",
		"• Padrões recorrentes nas descrições de \"Antes\" e \"Depois\".",
		"• Frequência dos retornos com base no campo \"Avisar daqui a [X] dias\".",
	} {
		cur.line(indentX, linha)
		cur.y += 1
	}
	cur.y += 9
}

func (e *Engine) emitTitle(c Canvas, title string) {
	c.SetFont("", 18)
	c.SetTextColor(e.style.TitleColor.R, e.style.TitleColor.G, e.style.TitleColor.B)
	c.CenteredText(titleY, title)
	c.SetTextColor(bodyColor.R, bodyColor.G, bodyColor.B)
}

func nonBlank(lembretes []models.Lembrete) []models.Lembrete {
	out := make([]models.Lembrete, 0, len(lembretes))
	for _, l := range lembretes {
		if l.Texto != "" {
			out = append(out, l)
		}
	}
	return out
}
