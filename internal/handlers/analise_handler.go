package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/audit"
	"github.com/liberta-studio/liberta-api/internal/httperr"
	"github.com/liberta-studio/liberta-api/internal/httpresp"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/zodiac"
)

// ======================================================
// HANDLER
// ======================================================

type AnaliseHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAnaliseHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AnaliseHandler {
	return &AnaliseHandler{
		db:    db,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LembreteRequest struct {
	Texto string `json:"texto"`
	Dias  int    `json:"dias"`
}

type AnaliseRequest struct {
	NomeCliente    string `json:"nomeCliente" binding:"required"`
	DataNascimento string `json:"dataNascimento"`
	Signo          string `json:"signo"`

	DataInicio string `json:"dataInicio"`
	Preco      string `json:"preco"`
	Finalizado bool   `json:"finalizado"`

	AnaliseAntes  string `json:"analiseAntes"`
	AnaliseDepois string `json:"analiseDepois"`

	Lembretes []LembreteRequest `json:"lembretes"`

	AtencaoFlag bool   `json:"atencaoFlag"`
	AtencaoNota string `json:"atencaoNota"`
}

func (req *AnaliseRequest) validate(c *gin.Context) bool {
	if !isValidDateField(req.DataNascimento) || !isValidDateField(req.DataInicio) {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use AAAA-MM-DD.")
		return false
	}
	for _, l := range req.Lembretes {
		if l.Dias < 0 {
			httperr.BadRequest(c, "invalid_reminder", "Prazo de lembrete não pode ser negativo.")
			return false
		}
	}
	return true
}

func (req *AnaliseRequest) apply(an *models.AnaliseFrequencial) {
	an.NomeCliente = req.NomeCliente
	an.DataNascimento = req.DataNascimento
	an.Signo = req.Signo
	if an.Signo == "" {
		an.Signo = zodiac.SignFromString(req.DataNascimento)
	}
	an.DataInicio = req.DataInicio
	an.Preco = req.Preco
	an.Finalizado = req.Finalizado
	an.AnaliseAntes = req.AnaliseAntes
	an.AnaliseDepois = req.AnaliseDepois

	an.Lembretes = an.Lembretes[:0]
	for _, l := range req.Lembretes {
		an.Lembretes = append(an.Lembretes, models.Lembrete{
			Texto: l.Texto,
			Dias:  l.Dias,
		})
	}

	an.AtencaoFlag = req.AtencaoFlag
	an.AtencaoNota = req.AtencaoNota
}

// ======================================================
// CREATE
// ======================================================

func (h *AnaliseHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req AnaliseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	an := models.AnaliseFrequencial{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	req.apply(&an)

	if err := h.db.Create(&an).Error; err != nil {
		httperr.Internal(c, "analise_create_failed", "Erro ao salvar análise.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "analise_created",
		Entity:   "analise",
		EntityID: an.ID,
	})

	c.JSON(http.StatusCreated, an)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AnaliseHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	var list []models.AnaliseFrequencial
	if err := h.db.
		Where("user_id = ?", userID).
		Order("data_inicio ASC, created_at ASC").
		Find(&list).Error; err != nil {

		httperr.Internal(c, "analise_list_failed", "Erro ao listar análises.")
		return
	}

	httpresp.List(c, list)
}

func (h *AnaliseHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	var an models.AnaliseFrequencial
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&an).Error; err != nil {

		httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
		return
	}

	c.JSON(http.StatusOK, an)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AnaliseHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	var an models.AnaliseFrequencial
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&an).Error; err != nil {

		httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
		return
	}

	var req AnaliseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	req.apply(&an)

	if err := h.db.Save(&an).Error; err != nil {
		httperr.Internal(c, "analise_update_failed", "Erro ao atualizar análise.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "analise_updated",
		Entity:   "analise",
		EntityID: an.ID,
	})

	c.JSON(http.StatusOK, an)
}

// ======================================================
// DELETE
// ======================================================

func (h *AnaliseHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.AnaliseFrequencial{})

	if res.Error != nil {
		httperr.Internal(c, "analise_delete_failed", "Erro ao excluir análise.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "analise_deleted",
		Entity:   "analise",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
