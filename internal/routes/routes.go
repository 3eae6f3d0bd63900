package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/liberta-studio/liberta-api/internal/archive"
	"github.com/liberta-studio/liberta-api/internal/audit"
	"github.com/liberta-studio/liberta-api/internal/branding"
	"github.com/liberta-studio/liberta-api/internal/cache"
	"github.com/liberta-studio/liberta-api/internal/config"
	"github.com/liberta-studio/liberta-api/internal/handlers"
	infraRepo "github.com/liberta-studio/liberta-api/internal/infra/repository"
	"github.com/liberta-studio/liberta-api/internal/middleware"
	"github.com/liberta-studio/liberta-api/internal/payments"
	"github.com/liberta-studio/liberta-api/internal/pdf"
	domain "github.com/liberta-studio/liberta-api/internal/report"
	"github.com/liberta-studio/liberta-api/internal/timezone"
	ucReport "github.com/liberta-studio/liberta-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	registroRepo := infraRepo.NewRegistroGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	birthdayCache := cache.NewBirthdays(cfg.RedisAddr, cfg.RedisPassword)

	uploader := archive.NewUploader(archive.Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	gateway, err := payments.NewGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Printf("payments disabled: %v", err)
		gateway, _ = payments.NewGateway("")
	}

	logo, err := branding.LoadLogo(cfg.LogoPath, 128)
	if err != nil {
		log.Printf("logo disabled: %v", err)
	}

	docFactory := func() domain.Document {
		return pdf.New(pdf.Options{
			Brand:       cfg.ReportBrand,
			GeneratedOn: domain.FormatToday(timezone.Now()),
			Logo:        logo,
		})
	}

	// ======================================================
	// 🧠 USE CASES — RELATÓRIOS
	// ======================================================
	individualUC := ucReport.NewGenerateIndividual(
		registroRepo,
		auditDispatcher,
		docFactory,
	)

	clienteUC := ucReport.NewGenerateCliente(
		registroRepo,
		auditDispatcher,
		docFactory,
	)

	tarotClienteUC := ucReport.NewGenerateTarotCliente(
		registroRepo,
		auditDispatcher,
		docFactory,
	)

	geralUC := ucReport.NewGenerateGeral(
		registroRepo,
		auditDispatcher,
		docFactory,
	)

	todosUC := ucReport.NewGenerateTodos(
		registroRepo,
		auditDispatcher,
		docFactory,
		uploader,
		ucReport.DefaultStagger,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	atendimentoHandler := handlers.NewAtendimentoHandler(db, auditDispatcher)
	analiseHandler := handlers.NewAnaliseHandler(db, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db)
	birthdayHandler := handlers.NewBirthdayHandler(db, birthdayCache)
	resumoHandler := handlers.NewResumoHandler(db)

	reportHandler := handlers.NewReportHandler(
		individualUC,
		clienteUC,
		tarotClienteUC,
		geralUC,
		todosUC,
	)

	paymentHandler := handlers.NewPaymentHandler(db, gateway, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ATENDIMENTOS
			// ------------------------------
			secured.GET("/me/atendimentos", atendimentoHandler.List)
			secured.POST("/me/atendimentos", atendimentoHandler.Create)
			secured.GET("/me/atendimentos/:id", atendimentoHandler.Get)
			secured.PUT("/me/atendimentos/:id", atendimentoHandler.Update)
			secured.DELETE("/me/atendimentos/:id", atendimentoHandler.Delete)

			// ------------------------------
			// ANÁLISES FREQUENCIAIS
			// ------------------------------
			secured.GET("/me/analises", analiseHandler.List)
			secured.POST("/me/analises", analiseHandler.Create)
			secured.GET("/me/analises/:id", analiseHandler.Get)
			secured.PUT("/me/analises/:id", analiseHandler.Update)
			secured.DELETE("/me/analises/:id", analiseHandler.Delete)

			// ------------------------------
			// CLIENTES / ANIVERSARIANTES
			// ------------------------------
			secured.GET("/me/clientes", clientHandler.List)
			secured.GET("/me/aniversariantes", birthdayHandler.List)
			secured.GET("/me/resumo", resumoHandler.Get)

			// ------------------------------
			// RELATÓRIOS
			// ------------------------------
			secured.GET("/me/atendimentos/:id/relatorio", reportHandler.Individual)
			secured.GET("/me/clientes/:nome/relatorio", reportHandler.Cliente)
			secured.GET("/me/clientes/:nome/relatorio-tarot", reportHandler.TarotCliente)
			secured.GET("/me/relatorios/geral", reportHandler.Geral)
			secured.POST("/me/relatorios/todos", reportHandler.Todos)

			// ------------------------------
			// PAGAMENTOS
			// ------------------------------
			secured.POST("/me/atendimentos/:id/link-pagamento", paymentHandler.CreateLink)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
