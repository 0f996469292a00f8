package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gocadastro/config"
	"gocadastro/internal/pkg/cache"
	"gocadastro/internal/pkg/database"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/metrics"
	"gocadastro/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"gocadastro/internal/api/auth"
	"gocadastro/internal/api/empresa"
	"gocadastro/internal/api/router"
	"gocadastro/internal/api/socio"
	"gocadastro/internal/repository/empresarepo"
	"gocadastro/internal/repository/sociorepo"
	"gocadastro/internal/repository/userrepo"
	"gocadastro/internal/service/authservice"
	"gocadastro/internal/service/empresaservice"
	"gocadastro/internal/service/socioservice"
)

// @title GoCadastro API
// @version 1.0
// @description API de cadastro de empresas e sócios com autenticação JWT.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 0. Variáveis de ambiente (.env). Sem o arquivo, valem as do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado. Usando apenas o ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	if cfg.IsDevelopment() {
		appLog = logger.NewConsoleLogger(cfg.LogLevel)
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Infraestrutura
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// A. Banco de Dados (PostgreSQL) e schema
	db, err := database.NewPostgresDB(startupCtx, cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	appLog.Info("Conexão PostgreSQL estabelecida.", nil)

	if err := database.EnsureSchema(db); err != nil {
		appLog.Fatal("Falha ao aplicar o schema do banco.", err)
	}
	appLog.Info("Schema do banco atualizado.", nil)

	// B. Cache: Redis quando configurado, memória caso contrário
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(startupCtx, cfg.RedisAddr)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		cacheClient = redisClient
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		cacheClient = cache.NewMemoryClient(cfg.CacheTTL)
		appLog.Info("REDIS_ADDR vazio; usando cache em memória.", nil)
	}

	// C. Métricas
	appMetrics := metrics.New()
	if err := appMetrics.RegisterDB(db); err != nil {
		appLog.Warn("Falha ao registrar métricas do pool de conexões.", map[string]interface{}{"error": err.Error()})
	}

	// D. Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 3. Injeção de dependências: Repository -> Service -> Handler
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
	empresaRepo := empresarepo.NewEmpresaRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	socioRepo := sociorepo.NewSocioRepository(db, cfg.DBTimeout, appLog)

	authSvc := authservice.NewService(userRepo, tokenSvc, appLog)
	empresaSvc := empresaservice.NewService(empresaRepo, socioRepo, appLog)
	socioSvc := socioservice.NewService(socioRepo, empresaRepo, appLog)
	appLog.Debug("Serviços inicializados.", nil)

	handler := router.NewRouter(router.Deps{
		Auth:        auth.NewHandler(authSvc, appLog),
		Empresa:     empresa.NewHandler(empresaSvc, appLog),
		Socio:       socio.NewHandler(socioSvc, appLog),
		Tokens:      tokenSvc,
		Metrics:     appMetrics,
		Logger:      appLog,
		CORSOrigins: cfg.CORSOrigins,
	})

	// 4. Servidor HTTP
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info("Servidor GoCadastro ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
