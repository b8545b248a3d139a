package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Telli/betts-ctis-sub020/docs" // swagger docs
	"github.com/Telli/betts-ctis-sub020/internal/adapter/http/handlers"
	"github.com/Telli/betts-ctis-sub020/internal/adapter/persistence/repository"
	"github.com/Telli/betts-ctis-sub020/internal/infrastructure/database"
	"github.com/Telli/betts-ctis-sub020/internal/infrastructure/payments"
	"github.com/Telli/betts-ctis-sub020/internal/usecase"
	"github.com/Telli/betts-ctis-sub020/internal/usecase/interfaces"
	"github.com/Telli/betts-ctis-sub020/internal/worker"
)

var router = gin.Default()

const PORT = 8080

// Run wires the subsystem together, starts the reconciliation poller and
// serves HTTP until SIGINT/SIGTERM.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	poller := getRoutes()
	poller.Start()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(PORT),
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("[api] shutdown signal received")

	poller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[api] server shutdown error: %v", err)
	}
}

func getRoutes() *worker.Poller {
	ddb := database.ConnectDynamoDB()

	txRepo := repository.NewPaymentTransactionDynamoRepository(ddb)
	logRepo := repository.NewPaymentWebhookLogDynamoRepository(ddb)

	registry := payments.NewRegistry(buildGateways()...)

	paymentUseCase := usecase.NewPaymentUseCase(txRepo, registry)
	webhookProcessor := usecase.NewWebhookProcessorUseCase(txRepo, logRepo, registry)
	reconciliation := usecase.NewReconciliationUseCase(
		txRepo,
		registry,
		envInt("RECONCILE_BATCH_SIZE", usecase.DefaultReconcileBatchSize),
		envInt("RECONCILE_MAX_ATTEMPTS", usecase.DefaultReconcileMaxAttempts),
		0,
	)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookProcessor)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)

	interval := time.Duration(envInt("RECONCILE_INTERVAL_SECONDS", 120)) * time.Second
	return worker.NewPoller(reconciliation, registry, interval)
}

// buildGateways registers every provider whose configuration is present.
// The manual gateway needs none and is always available.
func buildGateways() []interfaces.IPaymentGateway {
	gateways := []interfaces.IPaymentGateway{payments.NewManualGateway()}

	slswitch, err := payments.NewSLSwitchGateway()
	if err != nil {
		log.Printf("SL switch gateway not configured: %v", err)
	} else {
		gateways = append(gateways, slswitch)
	}

	mp, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateways = append(gateways, mp)
	}

	return gateways
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
