package empresa

import (
	"context"
	"net/http"

	"gocadastro/internal/api/response"
	"gocadastro/internal/domain"
	"gocadastro/internal/pkg/logger"
)

const notFoundMsg = "Empresa não encontrada"

// EmpresaService define o contrato que o Handler espera da camada de Serviço.
type EmpresaService interface {
	Create(ctx context.Context, input domain.EmpresaInput) (domain.Empresa, error)
	List(ctx context.Context) ([]domain.Empresa, error)
	Get(ctx context.Context, id int64) (domain.Empresa, error)
	Update(ctx context.Context, id int64, patch domain.EmpresaPatch) (domain.Empresa, error)
	Delete(ctx context.Context, id int64) error
	ListPartners(ctx context.Context, id int64) ([]domain.SocioResumo, error)
}

// Handler agrupa todos os métodos de Handler de empresas.
type Handler struct {
	Service EmpresaService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc EmpresaService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateEmpresaHandler lida com a requisição POST /api/empresas.
// @Summary Cria uma nova empresa
// @Description Todos os campos são obrigatórios e não podem ser vazios.
// @Tags empresas
// @Accept json
// @Produce json
// @Param empresa body domain.EmpresaInput true "Dados da empresa"
// @Success 201 {object} domain.EmpresaResponse "Empresa criada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /empresas [post]
func (h *Handler) CreateEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.EmpresaInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusCreated, domain.EmpresaResponse{Status: "Empresa criada com sucesso", Empresa: created})
}

// ListEmpresasHandler lida com a requisição GET /api/empresas.
// @Summary Lista todas as empresas
// @Tags empresas
// @Produce json
// @Success 200 {array} domain.Empresa "Lista de empresas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /empresas [get]
func (h *Handler) ListEmpresasHandler(w http.ResponseWriter, r *http.Request) {
	empresas, err := h.Service.List(r.Context())
	response.Handle(w, r, h.Logger, empresas, err, http.StatusOK)
}

// GetEmpresaByIDHandler lida com a requisição GET /api/empresas/{id}.
// @Summary Obtém uma empresa por ID
// @Tags empresas
// @Produce json
// @Param id path int true "ID da empresa"
// @Success 200 {object} domain.Empresa "Empresa encontrada"
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresas/{id} [get]
func (h *Handler) GetEmpresaByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	empresa, err := h.Service.Get(r.Context(), id)
	response.Handle(w, r, h.Logger, empresa, err, http.StatusOK)
}

// UpdateEmpresaHandler lida com a requisição PUT /api/empresas/{id}.
// @Summary Atualiza uma empresa
// @Description Campos omitidos mantêm o valor atual; o resultado é validado antes de gravar.
// @Tags empresas
// @Accept json
// @Produce json
// @Param id path int true "ID da empresa"
// @Param empresa body domain.EmpresaPatch true "Campos a alterar"
// @Success 200 {object} domain.EmpresaResponse "Empresa atualizada com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos"
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresas/{id} [put]
func (h *Handler) UpdateEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var patch domain.EmpresaPatch
	if err := response.Decode(r, &patch); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, domain.EmpresaResponse{Status: "Empresa atualizada com sucesso", Empresa: updated})
}

// DeleteEmpresaHandler lida com a requisição DELETE /api/empresas/{id}.
// @Summary Exclui uma empresa
// @Description A exclusão é recusada enquanto houver sócios associados.
// @Tags empresas
// @Produce json
// @Param id path int true "ID da empresa"
// @Success 200 {object} domain.StatusResponse "Empresa excluída com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Existem sócios associados"
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresas/{id} [delete]
func (h *Handler) DeleteEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	response.Handle(w, r, h.Logger, domain.StatusResponse{Status: "Empresa excluída com sucesso"}, err, http.StatusOK)
}

// ListSociosDaEmpresaHandler lida com a requisição GET /api/empresas/{id}/socios.
// @Summary Lista os sócios de uma empresa
// @Tags empresas
// @Produce json
// @Param id path int true "ID da empresa"
// @Success 200 {array} domain.SocioResumo "Sócios da empresa"
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /empresas/{id}/socios [get]
func (h *Handler) ListSociosDaEmpresaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	socios, err := h.Service.ListPartners(r.Context(), id)
	response.Handle(w, r, h.Logger, socios, err, http.StatusOK)
}
