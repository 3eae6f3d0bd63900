package zodiac

import "time"

// ===============================
// Signos
// ===============================

const (
	Aries       = "Áries"
	Touro       = "Touro"
	Gemeos      = "Gêmeos"
	Cancer      = "Câncer"
	Leao        = "Leão"
	Virgem      = "Virgem"
	Libra       = "Libra"
	Escorpiao   = "Escorpião"
	Sagitario   = "Sagitário"
	Capricornio = "Capricórnio"
	Aquario     = "Aquário"
	Peixes      = "Peixes"
)

// Sign mapeia qualquer data de nascimento para um dos 12 signos.
// As faixas são contíguas e cobrem o ano inteiro; Peixes é o ramo
// restante (19/02 a 20/03). Opera sobre dia e mês locais, sem timezone.
func Sign(birth time.Time) string {
	month := int(birth.Month())
	day := birth.Day()

	switch {
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return Aries
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return Touro
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return Gemeos
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return Cancer
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return Leao
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return Virgem
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return Libra
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return Escorpiao
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return Sagitario
	case (month == 12 && day >= 22) || (month == 1 && day <= 19):
		return Capricornio
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return Aquario
	default:
		return Peixes
	}
}

// SignFromString calcula o signo a partir da data em "2006-01-02".
// Data inválida retorna vazio: quem chama deve pular o cálculo,
// nunca propagar erro.
func SignFromString(birth string) string {
	t, err := time.Parse("2006-01-02", birth)
	if err != nil {
		return ""
	}
	return Sign(t)
}
