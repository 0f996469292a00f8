package authservice

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// UserRepository é o contrato de persistência que o serviço de autenticação espera.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// TokenIssuer é o contrato da camada de token (internal/pkg/token) usado no login.
type TokenIssuer interface {
	GenerateToken(userID int64, email string, roles []string) (string, error)
}

// Service implementa registro, login, logout, usuário atual e listagem de usuários.
type Service struct {
	repo      UserRepository
	tokens    TokenIssuer
	logger    logger.Logger
	hashCost  int
	dummyHash []byte
}

// NewService cria uma nova instância do serviço de autenticação.
func NewService(repo UserRepository, tokens TokenIssuer, logger logger.Logger) *Service {
	return NewServiceWithCost(repo, tokens, logger, bcrypt.DefaultCost)
}

// NewServiceWithCost permite escolher o custo do bcrypt (os testes usam bcrypt.MinCost).
func NewServiceWithCost(repo UserRepository, tokens TokenIssuer, logger logger.Logger, cost int) *Service {
	// Hash usado para gastar o mesmo tempo de bcrypt quando o email não existe.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("senha-inexistente"), cost)
	return &Service{
		repo:      repo,
		tokens:    tokens,
		logger:    logger,
		hashCost:  cost,
		dummyHash: dummy,
	}
}

// Register registra um novo usuário com a senha em hash bcrypt.
// Role vazia vira ROLE_USER. Email já registrado retorna ConflictError.
func (s *Service) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	s.logger.Debug("Iniciando registro de usuário.", map[string]interface{}{"email": registration.Email})

	// Apenas presença; o formato do email não é validado.
	if registration.Email == "" || registration.Password == "" {
		return domain.User{}, apperror.NewValidationError("Email e senha são obrigatórios.")
	}

	_, err := s.repo.FindByEmail(ctx, registration.Email)
	if err == nil {
		s.logger.Warn("Tentativa de registro com email existente.", map[string]interface{}{"email": registration.Email})
		return domain.User{}, apperror.NewConflictError("Usuário já registrado")
	}
	var notFound *apperror.NotFoundError
	if !errors.As(err, &notFound) {
		return domain.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), s.hashCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	role := strings.TrimSpace(registration.Role)
	if role == "" {
		role = domain.RoleUser
	}

	// Save também devolve ConflictError se outro registro vencer a corrida pela UNIQUE.
	user, err := s.repo.Save(ctx, domain.User{
		Email:        registration.Email,
		PasswordHash: string(hashedPassword),
		Roles:        []string{role},
	})
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"user_id": user.ID, "roles": user.Roles})
	return user, nil
}

// Login autentica um usuário e emite um JWT com id, email e roles.
// Email inexistente e senha errada retornam o mesmo UnauthorizedError.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {
	invalid := apperror.NewUnauthorizedError("Credenciais inválidas")

	if email == "" || password == "" {
		return "", invalid
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			// Compara contra um hash fixo para não revelar pelo tempo se o email existe.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.logger.Info("Login recusado: email não encontrado.", map[string]interface{}{"email": email})
			return "", invalid
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("Login recusado: senha incorreta.", map[string]interface{}{"user_id": user.ID})
		return "", invalid
	}

	tokenString, err := s.tokens.GenerateToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID})
	return tokenString, nil
}

// Logout não invalida o token no servidor: ele continua válido até expirar.
func (s *Service) Logout(ctx context.Context) error {
	return nil
}

// CurrentUser carrega o usuário da identidade autenticada.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (domain.User, error) {
	if userID <= 0 {
		return domain.User{}, apperror.NewUnauthorizedError("Usuário não autenticado")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			// Token válido para um usuário que não existe mais.
			return domain.User{}, apperror.NewUnauthorizedError("Usuário não autenticado")
		}
		return domain.User{}, err
	}
	return user, nil
}

// ListUsers lista todos os usuários. A exigência de ROLE_ADMIN fica no middleware da rota.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Usuários listados.", map[string]interface{}{"count": len(users)})
	return users, nil
}
