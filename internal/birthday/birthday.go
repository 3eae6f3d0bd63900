package birthday

import (
	"time"

	"github.com/liberta-studio/liberta-api/internal/models"
)

// ===============================
// Aniversariantes do dia
// ===============================

type Match struct {
	RegistroID string `json:"registro_id"`
	Origem     string `json:"origem"`
	Nome       string `json:"nome"`
	Idade      int    `json:"idade"`
}

// Matches filtra os atendimentos cujo dia e mês de nascimento coincidem
// com hoje (ano ignorado). A idade é a diferença simples de anos, exata
// no próprio aniversário, que é o único caso em que a função retorna.
// Datas ausentes ou inválidas contam como não-aniversariantes.
func Matches(atendimentos []models.Atendimento, today time.Time) []Match {
	var out []Match

	for _, a := range atendimentos {
		if m, ok := match(a.ID, "atendimento", a.Nome, a.DataNascimento, today); ok {
			out = append(out, m)
		}
	}

	return out
}

// MatchesAnalises aplica o mesmo filtro às análises frequenciais.
func MatchesAnalises(analises []models.AnaliseFrequencial, today time.Time) []Match {
	var out []Match

	for _, a := range analises {
		if m, ok := match(a.ID, "analise", a.NomeCliente, a.DataNascimento, today); ok {
			out = append(out, m)
		}
	}

	return out
}

func match(id, origem, nome, dataNascimento string, today time.Time) (Match, bool) {
	if dataNascimento == "" {
		return Match{}, false
	}

	birth, err := time.Parse("2006-01-02", dataNascimento)
	if err != nil {
		return Match{}, false
	}

	if birth.Day() != today.Day() || birth.Month() != today.Month() {
		return Match{}, false
	}

	return Match{
		RegistroID: id,
		Origem:     origem,
		Nome:       nome,
		Idade:      today.Year() - birth.Year(),
	}, true
}

// IsToday responde se uma única data de nascimento cai hoje.
// Usado na borda de criação/edição de atendimento.
func IsToday(dataNascimento string, today time.Time) bool {
	if dataNascimento == "" {
		return false
	}
	birth, err := time.Parse("2006-01-02", dataNascimento)
	if err != nil {
		return false
	}
	return birth.Day() == today.Day() && birth.Month() == today.Month()
}
