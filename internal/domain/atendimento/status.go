package atendimento

// ===============================
// Status de Pagamento
// ===============================

type StatusPagamento string

const (
	StatusPago      StatusPagamento = "pago"
	StatusPendente  StatusPagamento = "pendente"
	StatusParcelado StatusPagamento = "parcelado"
)

// IsValid aceita também vazio: registros antigos podem não ter status.
func (s StatusPagamento) IsValid() bool {
	switch s {
	case StatusPago, StatusPendente, StatusParcelado, "":
		return true
	}
	return false
}

// Label é o texto exibido em relatórios e listagens.
func (s StatusPagamento) Label() string {
	switch s {
	case StatusPago:
		return "Pago"
	case StatusPendente:
		return "Pendente"
	case StatusParcelado:
		return "Parcelado"
	default:
		return "Não especificado"
	}
}

// StatusAnalise traduz o booleano "finalizado" da análise frequencial.
func StatusAnalise(finalizado bool) string {
	if finalizado {
		return "Finalizado"
	}
	return "Em Andamento"
}
