// Package response concentra a escrita de respostas JSON dos handlers,
// traduzindo erros de serviço para o corpo de erro padronizado.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// Handle envia data com successStatus quando err é nil; caso contrário,
// converte err no ErrorResponse com o status HTTP correspondente.
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		JSON(w, log, successStatus, data)
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Errors:   apperror.FieldMessages(err),
	})
}

// Error é um atalho para Handle sem payload de sucesso.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	Handle(w, r, log, nil, err, http.StatusOK)
}

// JSON escreve data codificado em JSON com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Decode lê o corpo JSON da requisição em dst.
func Decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

// PathID lê o parâmetro de rota name como ID numérico.
// Um ID malformado não pode existir, então vira NotFound com notFoundMsg.
func PathID(r *http.Request, name, notFoundMsg string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewNotFoundError(notFoundMsg)
	}
	return id, nil
}
