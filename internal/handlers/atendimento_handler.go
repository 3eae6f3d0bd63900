package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/audit"
	"github.com/liberta-studio/liberta-api/internal/birthday"
	domain "github.com/liberta-studio/liberta-api/internal/domain/atendimento"
	"github.com/liberta-studio/liberta-api/internal/httperr"
	"github.com/liberta-studio/liberta-api/internal/httpresp"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/timezone"
	"github.com/liberta-studio/liberta-api/internal/zodiac"
)

// ======================================================
// HANDLER
// ======================================================

type AtendimentoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAtendimentoHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AtendimentoHandler {
	return &AtendimentoHandler{
		db:    db,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AtendimentoRequest struct {
	Nome            string `json:"nome" binding:"required"`
	DataNascimento  string `json:"dataNascimento"`
	Signo           string `json:"signo"`
	TipoServico     string `json:"tipoServico"`
	StatusPagamento string `json:"statusPagamento"`
	DataAtendimento string `json:"dataAtendimento"`
	Valor           string `json:"valor"`

	Destino string `json:"destino"`
	Ano     string `json:"ano"`

	Detalhes   string `json:"detalhes"`
	Tratamento string `json:"tratamento"`
	Indicacao  string `json:"indicacao"`

	AtencaoFlag bool   `json:"atencaoFlag"`
	AtencaoNota string `json:"atencaoNota"`
}

// ======================================================
// HELPERS
// ======================================================

func isValidDateField(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (req *AtendimentoRequest) validate(c *gin.Context) bool {
	if !isValidDateField(req.DataNascimento) || !isValidDateField(req.DataAtendimento) {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
		return false
	}
	if !domain.StatusPagamento(req.StatusPagamento).IsValid() {
		httperr.BadRequest(c, "invalid_payment_status", "Status de pagamento inválido.")
		return false
	}
	return true
}

// apply copia a requisição para o modelo. O signo digitado vence;
// vazio, é derivado da data de nascimento.
func (req *AtendimentoRequest) apply(at *models.Atendimento) {
	at.Nome = req.Nome
	at.DataNascimento = req.DataNascimento
	at.Signo = req.Signo
	if at.Signo == "" {
		at.Signo = zodiac.SignFromString(req.DataNascimento)
	}
	at.TipoServico = req.TipoServico
	at.StatusPagamento = req.StatusPagamento
	at.DataAtendimento = req.DataAtendimento
	at.Valor = req.Valor
	at.Destino = req.Destino
	at.Ano = req.Ano
	at.Detalhes = req.Detalhes
	at.Tratamento = req.Tratamento
	at.Indicacao = req.Indicacao
	at.AtencaoFlag = req.AtencaoFlag
	at.AtencaoNota = req.AtencaoNota
}

// ======================================================
// CREATE
// ======================================================

func (h *AtendimentoHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req AtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	at := models.Atendimento{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	req.apply(&at)

	if err := h.db.Create(&at).Error; err != nil {
		httperr.Internal(c, "atendimento_create_failed", "Erro ao salvar atendimento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "atendimento_created",
		Entity:   "atendimento",
		EntityID: at.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"atendimento":         at,
		"aniversariante_hoje": birthday.IsToday(at.DataNascimento, timezone.Now()),
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AtendimentoHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	var list []models.Atendimento
	if err := h.db.
		Where("user_id = ?", userID).
		Order("data_atendimento ASC, created_at ASC").
		Find(&list).Error; err != nil {

		httperr.Internal(c, "atendimento_list_failed", "Erro ao listar atendimentos.")
		return
	}

	httpresp.List(c, list)
}

func (h *AtendimentoHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	var at models.Atendimento
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&at).Error; err != nil {

		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, at)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AtendimentoHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	var at models.Atendimento
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&at).Error; err != nil {

		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	var req AtendimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	req.apply(&at)

	if err := h.db.Save(&at).Error; err != nil {
		httperr.Internal(c, "atendimento_update_failed", "Erro ao atualizar atendimento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "atendimento_updated",
		Entity:   "atendimento",
		EntityID: at.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"atendimento":         at,
		"aniversariante_hoje": birthday.IsToday(at.DataNascimento, timezone.Now()),
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *AtendimentoHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Atendimento{})

	if res.Error != nil {
		httperr.Internal(c, "atendimento_delete_failed", "Erro ao excluir atendimento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "atendimento_deleted",
		Entity:   "atendimento",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
