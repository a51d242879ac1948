package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "pactle_quotations/docs" // swag-generated swagger registration
	"pactle_quotations/internal/adapter/http/handlers"
	"pactle_quotations/internal/adapter/persistence/repository"
	"pactle_quotations/internal/infrastructure/database"
	"pactle_quotations/internal/infrastructure/faults"
	"pactle_quotations/internal/infrastructure/session"
	"pactle_quotations/internal/usecase"
	"pactle_quotations/internal/usecase/interfaces"

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
	quotationRepo := buildQuotationRepository()

	store := session.NewRedisStore(session.NewClient(getenvDefault("REDIS_ADDR", "localhost:6379")))

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo)
	workflowUseCase := usecase.NewStatusWorkflowUseCase(quotationRepo)
	commentUseCase := usecase.NewCommentUseCase(quotationRepo)
	draftUseCase := usecase.NewDraftUseCase(store)
	authUseCase := usecase.NewAuthUseCase(store, store, getenvDefault("JWT_SECRET", "dev-secret-change-me"))

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase, workflowUseCase)
	commentHandler := handlers.NewCommentHandler(commentUseCase, draftUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, commentHandler)
	addAuthRoutes(v1, authHandler)
}

// buildQuotationRepository selects the backing store. The default is the
// seeded in-memory store with simulated latency and flaky writes, which is
// what the dashboard demos against; DynamoDB serves real deployments.
func buildQuotationRepository() interfaces.IQuotationRepository {
	backend := getenvDefault("QUOTATIONS_BACKEND", "memory")
	if backend == "dynamodb" {
		return repository.NewQuotationDynamoRepository(database.ConnectDynamoDB())
	}

	mem := repository.NewQuotationMemoryRepository()
	repository.SeedDemoData(mem)
	if getenvDefault("SIMULATE_BACKEND", "true") == "true" {
		mem.WithWriteDelay(time.Second).
			WithFaults(faults.NewRandomInjector(faults.DefaultWriteFailureRate, time.Now().UnixNano()))
	} else {
		mem.WithFaults(faults.None{})
	}
	log.Printf("[routes] quotation repository backend=%s", backend)
	return mem
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
