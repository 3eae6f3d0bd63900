package atendimento

import "strings"

// FormatServico converte o identificador de serviço do formulário
// ("tarot-terapeutico", "mesa radionica") para o rótulo impresso.
func FormatServico(tipo string) string {
	if tipo == "" {
		return "N/A"
	}

	s := strings.ReplaceAll(tipo, "-", " ")
	s = strings.Replace(s, "tarot", "Tarot", 1)
	s = strings.Replace(s, "terapia", "Terapia", 1)
	s = strings.Replace(s, "mesa radionica", "Mesa Radiônica", 1)
	return s
}
