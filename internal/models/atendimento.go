package models

import "time"

// Atendimento genérico (tarot, terapia, mesa radiônica...), sempre
// vinculado ao usuário dono. Datas e valor ficam como texto, no mesmo
// formato que o formulário envia; o parse defensivo acontece na borda.
type Atendimento struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Nome           string `gorm:"size:100;not null" json:"nome"`
	DataNascimento string `gorm:"size:10" json:"dataNascimento"`
	Signo          string `gorm:"size:20" json:"signo"`

	TipoServico     string `gorm:"size:50" json:"tipoServico"`
	StatusPagamento string `gorm:"size:20" json:"statusPagamento"`
	DataAtendimento string `gorm:"size:10" json:"dataAtendimento"`
	Valor           string `gorm:"size:20" json:"valor"`

	Destino string `gorm:"size:100" json:"destino"`
	Ano     string `gorm:"size:10" json:"ano"`

	Detalhes   string `gorm:"type:text" json:"detalhes"`
	Tratamento string `gorm:"type:text" json:"tratamento"`
	Indicacao  string `gorm:"type:text" json:"indicacao"`

	AtencaoFlag bool   `json:"atencaoFlag"`
	AtencaoNota string `gorm:"size:255" json:"atencaoNota"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
