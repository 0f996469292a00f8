package auth

import (
	"context"
	"net/http"

	"gocadastro/internal/api/response"
	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/middleware"
)

// AuthService define o contrato que o Handler espera da camada de Serviço.
type AuthService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context, userID int64) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Handler agrupa os handlers de autenticação e usuários.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// RegisterUserHandler lida com a requisição POST /api/register.
// @Summary Registra um novo usuário
// @Description Cria um usuário com a senha em hash. Sem role informada, o usuário recebe ROLE_USER.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body domain.UserRegistration true "Email, senha e role opcional"
// @Success 201 {object} domain.MessageResponse "Usuário registrado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Usuário já registrado"
// @Router /register [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var registration domain.UserRegistration
	if err := response.Decode(r, &registration); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	if _, err := h.Service.Register(r.Context(), registration); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusCreated, domain.MessageResponse{Message: "Usuário registrado com sucesso"})
}

// LoginUserHandler lida com a requisição POST /api/login.
// @Summary Autentica um usuário
// @Description Valida email e senha e retorna um JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Credenciais"
// @Success 200 {object} domain.TokenResponse "Token JWT"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := response.Decode(r, &req); err != nil {
		// Corpo ilegível é tratado como credencial inválida.
		response.Error(w, r, h.Logger, apperror.NewUnauthorizedError("Credenciais inválidas"))
		return
	}

	tokenString, err := h.Service.Login(r.Context(), req.Email, req.Password)
	response.Handle(w, r, h.Logger, domain.TokenResponse{Token: tokenString}, err, http.StatusOK)
}

// LogoutHandler lida com a requisição POST /api/logout.
// O token não é revogado; continua válido até expirar.
// @Summary Encerra a sessão
// @Tags auth
// @Produce json
// @Success 200 {object} domain.MessageResponse "Usuário deslogado com sucesso"
// @Router /logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Logout(r.Context())
	response.Handle(w, r, h.Logger, domain.MessageResponse{Message: "Usuário deslogado com sucesso"}, err, http.StatusOK)
}

// CurrentUserHandler lida com a requisição GET /api/user/me.
// @Summary Retorna o usuário autenticado
// @Tags users
// @Produce json
// @Success 200 {object} domain.UserView "Usuário atual"
// @Failure 401 {object} domain.ErrorResponse "Usuário não autenticado"
// @Security ApiKeyAuth
// @Router /user/me [get]
func (h *Handler) CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, h.Logger, apperror.NewUnauthorizedError("Usuário não autenticado"))
		return
	}

	user, err := h.Service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, toView(user))
}

// ListUsersHandler lida com a requisição GET /api/users (somente ROLE_ADMIN).
// @Summary Lista todos os usuários
// @Tags users
// @Produce json
// @Success 200 {array} domain.UserView "Lista de usuários"
// @Failure 401 {object} domain.ErrorResponse "Usuário não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security ApiKeyAuth
// @Router /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	views := make([]domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toView(u))
	}
	response.JSON(w, h.Logger, http.StatusOK, views)
}

func toView(u domain.User) domain.UserView {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return domain.UserView{ID: u.ID, Email: u.Email, Roles: roles}
}
