package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseAmount converte o valor em texto para número, caindo no fallback
// da variante (0 para atendimento, 150 para análise) quando o campo está
// vazio ou não parseia. Nunca retorna erro: leniência é regra de negócio.
func ParseAmount(raw string, fallback float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// FormatBRL formata moeda com duas casas, padrão dos relatórios.
func FormatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// FormatDate converte "2006-01-02" para "02/01/2006". Data ausente ou
// inválida vira o literal "N/A", nunca erro.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

// FormatToday é a data de geração usada no rodapé e nos nomes de arquivo.
func FormatToday(t time.Time) string {
	return t.Format("02/01/2006")
}
