package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/audit"
	domain "github.com/liberta-studio/liberta-api/internal/domain/atendimento"
	"github.com/liberta-studio/liberta-api/internal/httperr"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/models"
	"github.com/liberta-studio/liberta-api/internal/payments"
	"github.com/liberta-studio/liberta-api/internal/report"
)

// ======================================================
// LINK DE PAGAMENTO
// ======================================================

type PaymentHandler struct {
	db      *gorm.DB
	gateway *payments.Gateway
	audit   *audit.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, gateway *payments.Gateway, dispatcher *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{
		db:      db,
		gateway: gateway,
		audit:   dispatcher,
	}
}

// POST /api/me/atendimentos/:id/link-pagamento
//
// Só atendimentos pendentes ou parcelados geram cobrança; um
// atendimento pago não tem o que cobrar.
func (h *PaymentHandler) CreateLink(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("id")

	if !h.gateway.Enabled() {
		httperr.BadRequest(c, "payments_disabled", "Pagamentos não configurados.")
		return
	}

	var at models.Atendimento
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&at).Error; err != nil {

		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	status := domain.StatusPagamento(at.StatusPagamento)
	if status != domain.StatusPendente && status != domain.StatusParcelado {
		httperr.BadRequest(c, "nothing_to_charge", "Atendimento não tem cobrança pendente.")
		return
	}

	valor := report.ParseAmount(at.Valor, 0)
	if valor <= 0 {
		httperr.BadRequest(c, "invalid_amount", "Atendimento sem valor para cobrar.")
		return
	}

	titulo := "Atendimento " + domain.FormatServico(at.TipoServico) + " - " + at.Nome

	link, err := h.gateway.CreateLink(c.Request.Context(), at.ID, titulo, valor)
	if err != nil {
		httperr.Internal(c, "payment_link_failed", "Erro ao criar link de pagamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "payment_link_created",
		Entity:   "atendimento",
		EntityID: at.ID,
		Metadata: map[string]string{"preference_id": link.PreferenceID},
	})

	c.JSON(http.StatusCreated, link)
}
