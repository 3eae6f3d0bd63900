package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/birthday"
	"github.com/liberta-studio/liberta-api/internal/cache"
	"github.com/liberta-studio/liberta-api/internal/httpresp"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/timezone"
)

// ======================================================
// ANIVERSARIANTES DO DIA
// ======================================================

type BirthdayHandler struct {
	db        *gorm.DB
	birthdays *cache.Birthdays
}

func NewBirthdayHandler(db *gorm.DB, birthdays *cache.Birthdays) *BirthdayHandler {
	return &BirthdayHandler{
		db:        db,
		birthdays: birthdays,
	}
}

type birthdayItem struct {
	birthday.Match
	// Inedito marca a primeira consulta do dia para o registro;
	// o front usa para só exibir o aviso uma vez.
	Inedito bool `json:"inedito"`
}

func (h *BirthdayHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	today := timezone.Now()

	var atendimentos []models.Atendimento
	if err := h.db.
		Where("user_id = ?", userID).
		Find(&atendimentos).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_birthdays"})
		return
	}

	var analises []models.AnaliseFrequencial
	if err := h.db.
		Where("user_id = ?", userID).
		Find(&analises).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_birthdays"})
		return
	}

	matches := birthday.Matches(atendimentos, today)
	matches = append(matches, birthday.MatchesAnalises(analises, today)...)

	items := make([]birthdayItem, 0, len(matches))
	for _, m := range matches {
		first, err := h.birthdays.FirstToday(c.Request.Context(), userID, m.RegistroID, today)
		if err != nil {
			// dedupe indisponível não derruba a listagem
			log.Println("birthday cache error:", err)
		}
		items = append(items, birthdayItem{Match: m, Inedito: first})
	}

	httpresp.List(c, items)
}
