package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/httpresp"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/report"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS
// ======================================================
//
// Agrupa o acervo por nome exato, na ordem de primeira aparição.
// ?tipo=tarot agrupa as análises frequenciais; o padrão são os
// atendimentos. ?query filtra os grupos por substring do nome,
// sem acento-folding.
func (h *ClientHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	tipo := c.DefaultQuery("tipo", "atendimento")

	var recs []report.Record

	if tipo == "tarot" {
		var list []models.AnaliseFrequencial
		if err := h.db.
			Where("user_id = ?", userID).
			Order("data_inicio ASC, created_at ASC").
			Find(&list).Error; err != nil {

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
			return
		}
		recs = report.FromAnalises(list)
	} else {
		var list []models.Atendimento
		if err := h.db.
			Where("user_id = ?", userID).
			Order("data_atendimento ASC, created_at ASC").
			Find(&list).Error; err != nil {

			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_clients"})
			return
		}
		recs = report.FromAtendimentos(list)
	}

	groups := report.GroupByClient(recs)

	if query != "" {
		filtered := make([]report.ClientGroup, 0, len(groups))
		for _, g := range groups {
			if strings.Contains(strings.ToLower(g.Nome), query) {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}

	httpresp.List(c, groups)
}
