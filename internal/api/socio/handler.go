package socio

import (
	"context"
	"net/http"

	"gocadastro/internal/api/response"
	"gocadastro/internal/domain"
	"gocadastro/internal/pkg/logger"
)

const notFoundMsg = "Sócio não encontrado"

// SocioService define o contrato que o Handler espera da camada de Serviço.
type SocioService interface {
	Create(ctx context.Context, input domain.SocioInput) (domain.Socio, error)
	List(ctx context.Context) ([]domain.Socio, error)
	Update(ctx context.Context, id int64, patch domain.SocioPatch) (domain.Socio, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa todos os métodos de Handler de sócios.
type Handler struct {
	Service SocioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc SocioService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateSocioHandler lida com a requisição POST /api/socios.
// @Summary Cria um novo sócio
// @Tags socios
// @Accept json
// @Produce json
// @Param socio body domain.SocioInput true "Dados do sócio"
// @Success 201 {object} domain.SocioResponse "Sócio criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Dados incompletos"
// @Failure 404 {object} domain.ErrorResponse "Empresa não encontrada"
// @Router /socios [post]
func (h *Handler) CreateSocioHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.SocioInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusCreated, domain.SocioResponse{Status: "Sócio criado com sucesso", Socio: created})
}

// ListSociosHandler lida com a requisição GET /api/socios.
// @Summary Lista todos os sócios
// @Description Cada sócio traz o resumo (id, nome) da empresa.
// @Tags socios
// @Produce json
// @Success 200 {array} domain.Socio "Lista de sócios"
// @Router /socios [get]
func (h *Handler) ListSociosHandler(w http.ResponseWriter, r *http.Request) {
	socios, err := h.Service.List(r.Context())
	response.Handle(w, r, h.Logger, socios, err, http.StatusOK)
}

// UpdateSocioHandler lida com a requisição PUT /api/socios/{id}.
// @Summary Atualiza um sócio
// @Description Apenas os campos enviados são alterados.
// @Tags socios
// @Accept json
// @Produce json
// @Param id path int true "ID do sócio"
// @Param socio body domain.SocioPatch true "Campos a alterar"
// @Success 200 {object} domain.SocioResponse "Sócio atualizado com sucesso"
// @Failure 404 {object} domain.ErrorResponse "Sócio ou empresa não encontrados"
// @Router /socios/{id} [put]
func (h *Handler) UpdateSocioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var patch domain.SocioPatch
	if err := response.Decode(r, &patch); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.JSON(w, h.Logger, http.StatusOK, domain.SocioResponse{Status: "Sócio atualizado com sucesso", Socio: updated})
}

// DeleteSocioHandler lida com a requisição DELETE /api/socios/{id}.
// @Summary Exclui um sócio
// @Tags socios
// @Produce json
// @Param id path int true "ID do sócio"
// @Success 200 {object} domain.StatusResponse "Sócio excluído com sucesso"
// @Failure 404 {object} domain.ErrorResponse "Sócio não encontrado"
// @Router /socios/{id} [delete]
func (h *Handler) DeleteSocioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r, "id", notFoundMsg)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	response.Handle(w, r, h.Logger, domain.StatusResponse{Status: "Sócio excluído com sucesso"}, err, http.StatusOK)
}
