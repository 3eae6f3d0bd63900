package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/birthday"
	domain "github.com/liberta-studio/liberta-api/internal/domain/atendimento"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// ======================================================
// RESUMO (DASHBOARD)
// ======================================================

type ResumoHandler struct {
	db *gorm.DB
}

func NewResumoHandler(db *gorm.DB) *ResumoHandler {
	return &ResumoHandler{db: db}
}

// GET /api/me/resumo
//
// Totais do acervo do usuário: contagens, receita somada com os
// mesmos fallbacks dos relatórios e aniversariantes do dia.
func (h *ResumoHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	today := timezone.Now()

	var atendimentos []models.Atendimento
	if err := h.db.
		Where("user_id = ?", userID).
		Find(&atendimentos).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_summary"})
		return
	}

	var analises []models.AnaliseFrequencial
	if err := h.db.
		Where("user_id = ?", userID).
		Find(&analises).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_summary"})
		return
	}

	receitaAtendimentos := 0.0
	pendentes := 0
	for _, a := range atendimentos {
		receitaAtendimentos += report.ParseAmount(a.Valor, 0)
		status := domain.StatusPagamento(a.StatusPagamento)
		if status == domain.StatusPendente || status == domain.StatusParcelado {
			pendentes++
		}
	}

	receitaAnalises := 0.0
	emAndamento := 0
	for _, a := range analises {
		receitaAnalises += report.ParseAmount(a.Preco, 150)
		if !a.Finalizado {
			emAndamento++
		}
	}

	aniversariantes := len(birthday.Matches(atendimentos, today)) +
		len(birthday.MatchesAnalises(analises, today))

	clientes := report.GroupByClient(append(
		report.FromAtendimentos(atendimentos),
		report.FromAnalises(analises)...,
	))

	c.JSON(http.StatusOK, gin.H{
		"atendimentos": gin.H{
			"total":     len(atendimentos),
			"pendentes": pendentes,
			"receita":   receitaAtendimentos,
		},
		"analises": gin.H{
			"total":        len(analises),
			"em_andamento": emAndamento,
			"receita":      receitaAnalises,
		},
		"clientes":             len(clientes),
		"aniversariantes_hoje": aniversariantes,
	})
}
