package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gocadastro/docs" // Registra a especificação Swagger
	"gocadastro/internal/api/auth"
	"gocadastro/internal/api/empresa"
	"gocadastro/internal/api/response"
	"gocadastro/internal/api/socio"
	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/metrics"
	"gocadastro/internal/pkg/middleware"
)

// Deps reúne os handlers e a infraestrutura que o roteador monta.
type Deps struct {
	Auth        *auth.Handler
	Empresa     *empresa.Handler
	Socio       *socio.Handler
	Tokens      middleware.TokenValidator
	Metrics     *metrics.Metrics
	Logger      logger.Logger
	CORSOrigins []string
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.Recoverer(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rotas e métodos desconhecidos também respondem com o ErrorResponse.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, d.Logger, apperror.NewNotFoundError("Rota não encontrada"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, d.Logger, apperror.NewMethodNotAllowedError("Método não permitido"))
	})

	// --- 2. Rotas de infraestrutura ---
	r.Get("/ping", PingHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	authenticate := middleware.Authenticate(d.Tokens, d.Logger)

	// --- 3. Rotas da API ---
	r.Route("/api", func(r chi.Router) {
		// Autenticação
		r.Post("/register", d.Auth.RegisterUserHandler)
		r.Post("/login", d.Auth.LoginUserHandler)
		r.Post("/logout", d.Auth.LogoutHandler)

		r.With(authenticate).Get("/user/me", d.Auth.CurrentUserHandler)
		r.With(authenticate, middleware.RequireRole(domain.RoleAdmin, d.Logger)).Get("/users", d.Auth.ListUsersHandler)

		// Empresas
		r.Route("/empresas", func(r chi.Router) {
			r.Post("/", d.Empresa.CreateEmpresaHandler)
			r.Get("/", d.Empresa.ListEmpresasHandler)
			r.Get("/{id}", d.Empresa.GetEmpresaByIDHandler)
			r.Put("/{id}", d.Empresa.UpdateEmpresaHandler)
			r.Delete("/{id}", d.Empresa.DeleteEmpresaHandler)
			r.Get("/{id}/socios", d.Empresa.ListSociosDaEmpresaHandler)
		})

		// Sócios
		r.Route("/socios", func(r chi.Router) {
			r.Post("/", d.Socio.CreateSocioHandler)
			r.Get("/", d.Socio.ListSociosHandler)
			r.Put("/{id}", d.Socio.UpdateSocioHandler)
			r.Delete("/{id}", d.Socio.DeleteSocioHandler)
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
