package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "seguros_xpto/docs" // This will be auto-generated
	"seguros_xpto/internal/adapter/http/handlers"
	repository2 "seguros_xpto/internal/adapter/persistence/repository"
	"seguros_xpto/internal/infrastructure/database"
	"seguros_xpto/internal/infrastructure/events"
	"seguros_xpto/internal/infrastructure/llm"
	"seguros_xpto/internal/infrastructure/payments"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	if err := database.EnsureLocalTables(ctx, ddb); err != nil {
		log.Printf("[startup] local table bootstrap skipped: %v", err)
	}

	claimRepo := repository2.NewClaimDynamoRepository(ddb)
	investigatorRepo := repository2.NewInvestigatorDynamoRepository(ddb)

	if isSeedInvestigatorsEnabled() {
		if err := investigatorRepo.Seed(ctx, repository2.DefaultRoster()); err != nil {
			log.Printf("[startup] investigator seed failed: %v", err)
		}
	}

	var completion interfaces.ICompletionService
	completionSvc, err := llm.NewOpenAICompletionFromEnv()
	if err != nil {
		log.Printf("Completion service not configured: %v", err)
	} else {
		completion = completionSvc
	}

	var eventPublisher interfaces.IEventPublisher
	if publisher := events.NewKafkaPublisherFromEnv(); publisher != nil {
		eventPublisher = publisher
	}

	var payoutGateway interfaces.IPayoutGateway
	mpGateway, err := payments.NewMercadoPagoPayoutGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		payoutGateway = mpGateway
	}

	cfg := usecase.PipelineConfigFromEnv()
	pipelineUseCase := usecase.NewClaimPipelineUseCase(claimRepo, investigatorRepo, completion, eventPublisher, cfg)
	claimUseCase := usecase.NewClaimUseCase(claimRepo, investigatorRepo, payoutGateway)

	claimHandler := handlers.NewClaimHandler(claimUseCase, pipelineUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isSeedInvestigatorsEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SEED_INVESTIGATORS"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
