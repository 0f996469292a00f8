package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
// Context Keys devem ser não-exportadas e de um tipo único para evitar colisões.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
	RequestIDKey
)

// UserClaims representa a identidade extraída do token JWT e anexada ao contexto.
type UserClaims struct {
	UserID int64
	Email  string
	Roles  []string
}

// HasRole indica se a identidade possui a role informada.
func (c UserClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// Authenticate valida o JWT do header Authorization: Bearer <token> e anexa
// as claims ao contexto. Sem token válido responde 401.
func Authenticate(tokens TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extrair o token do header
			authHeader := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				writeError(w, log, apperror.NewUnauthorizedError("Usuário não autenticado"))
				return
			}

			// 2. Validar o token
			claims, err := tokens.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				writeError(w, log, apperror.NewUnauthorizedError("Usuário não autenticado"))
				return
			}

			// 3. Anexar claims ao contexto
			ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{
				UserID: claims.UserID,
				Email:  claims.Email,
				Roles:  claims.Roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole permite a requisição somente se a identidade autenticada possuir role.
// Deve ser encadeado depois de Authenticate.
func RequireRole(role string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				writeError(w, log, apperror.NewUnauthorizedError("Usuário não autenticado"))
				return
			}

			if !claims.HasRole(role) {
				log.Info("Acesso negado por falta de role.", map[string]interface{}{"user_id": claims.UserID, "required_role": role})
				writeError(w, log, apperror.NewForbiddenError("Acesso negado"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(domain.ErrorResponse{Code: status, Category: category, Message: message}); encErr != nil {
		log.Error("Falha ao codificar JSON de erro", encErr)
	}
}
