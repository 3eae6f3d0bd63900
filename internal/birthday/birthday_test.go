package birthday

import (
	"testing"
	"time"

	"github.com/liberta-studio/liberta-api/internal/models"
)

func TestMatches(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	atendimentos := []models.Atendimento{
		{ID: "a1", Nome: "Maria", DataNascimento: "1990-06-15"},
		{ID: "a2", Nome: "João", DataNascimento: "1985-06-14"},
		{ID: "a3", Nome: "Clara", DataNascimento: "2000-01-15"},
		{ID: "a4", Nome: "Sem Data"},
		{ID: "a5", Nome: "Data Quebrada", DataNascimento: "15/06/1990"},
	}

	got := Matches(atendimentos, today)

	if len(got) != 1 {
		t.Fatalf("esperava 1 aniversariante, veio %d: %+v", len(got), got)
	}
	if got[0].Nome != "Maria" {
		t.Fatalf("aniversariante errado: %q", got[0].Nome)
	}
	if got[0].Idade != 34 {
		t.Fatalf("idade = %d, want 34", got[0].Idade)
	}
}

func TestMatchesAnalises(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	analises := []models.AnaliseFrequencial{
		{ID: "an1", NomeCliente: "Clara", DataNascimento: "1988-06-15"},
		{ID: "an2", NomeCliente: "Rui", DataNascimento: "1988-07-15"},
	}

	got := MatchesAnalises(analises, today)

	if len(got) != 1 {
		t.Fatalf("esperava 1 aniversariante, veio %d", len(got))
	}
	if got[0].Origem != "analise" || got[0].Nome != "Clara" || got[0].Idade != 36 {
		t.Fatalf("match errado: %+v", got[0])
	}
}

func TestMatchesEmptyInput(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := Matches(nil, today); len(got) != 0 {
		t.Fatalf("lista vazia deve retornar vazio, veio %+v", got)
	}
}

func TestIsToday(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth string
		want  bool
	}{
		{"mesmo dia e mês", "1990-06-15", true},
		{"outro dia", "1990-06-14", false},
		{"outro mês", "1990-05-15", false},
		{"vazio", "", false},
		{"inválida", "ontem", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsToday(tt.birth, today); got != tt.want {
				t.Fatalf("IsToday(%q) = %v, want %v", tt.birth, got, tt.want)
			}
		})
	}
}
