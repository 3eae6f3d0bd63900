package models

import "time"

// Lembrete de tratamento com prazo de retorno em dias.
type Lembrete struct {
	Texto string `json:"texto"`
	Dias  int    `json:"dias"`
}

// AnaliseFrequencial é o registro da variante tarot: análise antes/depois,
// lembretes de tratamento e preço com fallback de negócio (150).
type AnaliseFrequencial struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	NomeCliente    string `gorm:"size:100;not null" json:"nomeCliente"`
	DataNascimento string `gorm:"size:10" json:"dataNascimento"`
	Signo          string `gorm:"size:20" json:"signo"`

	DataInicio string `gorm:"size:10" json:"dataInicio"`
	Preco      string `gorm:"size:20" json:"preco"`
	Finalizado bool   `json:"finalizado"`

	AnaliseAntes  string `gorm:"type:text" json:"analiseAntes"`
	AnaliseDepois string `gorm:"type:text" json:"analiseDepois"`

	Lembretes []Lembrete `gorm:"serializer:json" json:"lembretes"`

	AtencaoFlag bool   `json:"atencaoFlag"`
	AtencaoNota string `gorm:"size:255" json:"atencaoNota"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
