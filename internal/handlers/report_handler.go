package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liberta-studio/liberta-api/internal/httperr"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	ucreport "github.com/liberta-studio/liberta-api/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	individual   *ucreport.GenerateIndividual
	cliente      *ucreport.GenerateCliente
	tarotCliente *ucreport.GenerateTarotCliente
	geral        *ucreport.GenerateGeral
	todos        *ucreport.GenerateTodos
}

func NewReportHandler(
	individual *ucreport.GenerateIndividual,
	cliente *ucreport.GenerateCliente,
	tarotCliente *ucreport.GenerateTarotCliente,
	geral *ucreport.GenerateGeral,
	todos *ucreport.GenerateTodos,
) *ReportHandler {
	return &ReportHandler{
		individual:   individual,
		cliente:      cliente,
		tarotCliente: tarotCliente,
		geral:        geral,
		todos:        todos,
	}
}

// ======================================================
// HELPERS
// ======================================================

// writeReport entrega o PDF pronto ou traduz a falha. Qualquer erro
// não mapeado vira a mensagem genérica, nunca um stack trace.
func writeReport(c *gin.Context, res *ucreport.Result, err error) {
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "no_records"):
			httperr.BadRequest(c, "no_records", "Não há registros para gerar o relatório.")
		case httperr.IsBusiness(err, "record_not_found"):
			httperr.NotFound(c, "record_not_found", "Registro não encontrado.")
		default:
			httperr.Internal(c, "report_failed", "Erro ao gerar relatório.")
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

func variantFromQuery(c *gin.Context) domain.Variant {
	if c.Query("tipo") == "tarot" {
		return domain.VariantTarot
	}
	return domain.VariantHome
}

// ======================================================
// ENDPOINTS
// ======================================================

// GET /api/me/atendimentos/:id/relatorio
func (h *ReportHandler) Individual(c *gin.Context) {
	userID := middleware.UserID(c)

	res, err := h.individual.Execute(c.Request.Context(), userID, c.Param("id"))
	writeReport(c, res, err)
}

// GET /api/me/clientes/:nome/relatorio
func (h *ReportHandler) Cliente(c *gin.Context) {
	userID := middleware.UserID(c)

	res, err := h.cliente.Execute(c.Request.Context(), userID, c.Param("nome"))
	writeReport(c, res, err)
}

// GET /api/me/clientes/:nome/relatorio-tarot
func (h *ReportHandler) TarotCliente(c *gin.Context) {
	userID := middleware.UserID(c)

	res, err := h.tarotCliente.Execute(c.Request.Context(), userID, c.Param("nome"))
	writeReport(c, res, err)
}

// GET /api/me/relatorios/geral?tipo=tarot|atendimento
func (h *ReportHandler) Geral(c *gin.Context) {
	userID := middleware.UserID(c)

	res, err := h.geral.Execute(c.Request.Context(), userID, variantFromQuery(c))
	writeReport(c, res, err)
}

// POST /api/me/relatorios/todos?tipo=tarot|atendimento
//
// Gera um relatório por cliente, em lote. A resposta lista os arquivos
// gerados; os bytes vão para o arquivamento configurado, não para o
// corpo da resposta.
func (h *ReportHandler) Todos(c *gin.Context) {
	userID := middleware.UserID(c)

	results, err := h.todos.Execute(c.Request.Context(), userID, variantFromQuery(c))
	if err != nil {
		if httperr.IsBusiness(err, "no_records") {
			httperr.BadRequest(c, "no_records", "Não há registros para gerar o relatório.")
			return
		}
		httperr.Internal(c, "report_failed", "Erro ao gerar relatório.")
		return
	}

	files := make([]gin.H, 0, len(results))
	for _, res := range results {
		files = append(files, gin.H{
			"filename": res.Filename,
			"bytes":    len(res.PDF),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"files": files,
		"total": len(files),
	})
}
