package socioservice

import (
	"context"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// SocioRepository define o contrato de persistência de sócios.
type SocioRepository interface {
	Create(ctx context.Context, socio domain.Socio) (domain.Socio, error)
	FindByID(ctx context.Context, id int64) (domain.Socio, error)
	FindAll(ctx context.Context) ([]domain.Socio, error)
	Update(ctx context.Context, socio domain.Socio) (domain.Socio, error)
	Delete(ctx context.Context, id int64) error
}

// EmpresaFinder resolve a empresa referenciada por um sócio.
type EmpresaFinder interface {
	FindByID(ctx context.Context, id int64) (domain.Empresa, error)
}

// Service contém a lógica de negócio de sócios.
type Service struct {
	repo     SocioRepository
	empresas EmpresaFinder
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de sócios.
func NewService(repo SocioRepository, empresas EmpresaFinder, logger logger.Logger) *Service {
	return &Service{
		repo:     repo,
		empresas: empresas,
		logger:   logger,
	}
}

// Create cria um sócio vinculado a uma empresa existente.
func (s *Service) Create(ctx context.Context, input domain.SocioInput) (domain.Socio, error) {
	s.logger.Debug("Iniciando criação de sócio.", map[string]interface{}{"nome": input.Nome, "empresa_id": input.EmpresaID})

	if input.Nome == "" || input.CPF == "" || input.EmpresaID == 0 {
		s.logger.Warn("Criação de sócio com dados incompletos.", nil)
		return domain.Socio{}, apperror.NewValidationError("Dados incompletos")
	}

	if _, err := s.empresas.FindByID(ctx, input.EmpresaID); err != nil {
		return domain.Socio{}, err
	}

	return s.repo.Create(ctx, domain.Socio{
		Nome:      input.Nome,
		CPF:       input.CPF,
		Endereco:  input.Endereco,
		Telefone:  input.Telefone,
		EmpresaID: input.EmpresaID,
	})
}

// List lista todos os sócios com o resumo da empresa.
func (s *Service) List(ctx context.Context) ([]domain.Socio, error) {
	return s.repo.FindAll(ctx)
}

// Update aplica apenas os campos presentes no patch.
// Um empresaId informado precisa apontar para uma empresa existente.
func (s *Service) Update(ctx context.Context, id int64, patch domain.SocioPatch) (domain.Socio, error) {
	s.logger.Debug("Iniciando atualização de sócio.", map[string]interface{}{"id": id})

	socio, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Socio{}, err
	}

	if patch.Nome != nil {
		socio.Nome = *patch.Nome
	}
	if patch.CPF != nil {
		socio.CPF = *patch.CPF
	}
	if patch.Endereco != nil {
		socio.Endereco = patch.Endereco
	}
	if patch.Telefone != nil {
		socio.Telefone = patch.Telefone
	}
	if patch.EmpresaID != nil {
		if _, err := s.empresas.FindByID(ctx, *patch.EmpresaID); err != nil {
			return domain.Socio{}, err
		}
		socio.EmpresaID = *patch.EmpresaID
	}

	return s.repo.Update(ctx, socio)
}

// Delete exclui um sócio.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
