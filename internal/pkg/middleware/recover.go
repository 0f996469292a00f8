package middleware

import (
	"fmt"
	"net/http"

	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// Recoverer captura panics dos handlers e responde 500 com o corpo de erro padrão.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				log.Error("Panic durante a requisição.", err)
				writeError(w, log, apperror.NewInternalError("panic no handler", err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
