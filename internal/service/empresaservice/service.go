package empresaservice

import (
	"context"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
	"gocadastro/internal/pkg/validation"
)

// EmpresaRepository define o contrato de persistência de empresas.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa domain.Empresa) (domain.Empresa, error)
	FindByID(ctx context.Context, id int64) (domain.Empresa, error)
	FindAll(ctx context.Context) ([]domain.Empresa, error)
	Update(ctx context.Context, empresa domain.Empresa) (domain.Empresa, error)
	Delete(ctx context.Context, id int64) error
}

// SocioLister é a parte do repositório de sócios que o serviço de empresas consulta.
type SocioLister interface {
	FindByEmpresaID(ctx context.Context, empresaID int64) ([]domain.Socio, error)
	CountByEmpresaID(ctx context.Context, empresaID int64) (int, error)
}

var empresaMessages = map[string]string{
	"Empresa.Nome":     "Nome da empresa é obrigatório.",
	"Empresa.CNPJ":     "CNPJ da empresa é obrigatório.",
	"Empresa.Endereco": "Endereço da empresa é obrigatório.",
	"Empresa.Telefone": "Telefone da empresa é obrigatório.",
	"Empresa.Email":    "Email da empresa é obrigatório.",
}

// Service contém a lógica de negócio de empresas.
type Service struct {
	repo      EmpresaRepository
	socios    SocioLister
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de empresas.
func NewService(repo EmpresaRepository, socios SocioLister, logger logger.Logger) *Service {
	return &Service{
		repo:      repo,
		socios:    socios,
		validator: validation.New(empresaMessages),
		logger:    logger,
	}
}

// Create valida e persiste uma nova empresa.
func (s *Service) Create(ctx context.Context, input domain.EmpresaInput) (domain.Empresa, error) {
	s.logger.Debug("Iniciando criação de empresa.", map[string]interface{}{"nome": input.Nome})

	empresa := domain.Empresa{
		Nome:     input.Nome,
		CNPJ:     input.CNPJ,
		Endereco: input.Endereco,
		Telefone: input.Telefone,
		Email:    input.Email,
	}
	if err := s.validator.Struct(empresa); err != nil {
		s.logger.Warn("Validação de empresa falhou.", map[string]interface{}{"error": err.Error()})
		return domain.Empresa{}, err
	}

	return s.repo.Create(ctx, empresa)
}

// List lista todas as empresas.
func (s *Service) List(ctx context.Context) ([]domain.Empresa, error) {
	return s.repo.FindAll(ctx)
}

// Get busca uma empresa por ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Empresa, error) {
	return s.repo.FindByID(ctx, id)
}

// Update aplica o patch sobre a empresa atual e valida o resultado antes de gravar.
// Campos ausentes mantêm o valor atual; um campo enviado vazio falha na validação.
func (s *Service) Update(ctx context.Context, id int64, patch domain.EmpresaPatch) (domain.Empresa, error) {
	s.logger.Debug("Iniciando atualização de empresa.", map[string]interface{}{"id": id})

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Empresa{}, err
	}

	merged := patch.Apply(current)
	if err := s.validator.Struct(merged); err != nil {
		s.logger.Warn("Validação de empresa falhou na atualização.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Empresa{}, err
	}

	return s.repo.Update(ctx, merged)
}

// Delete exclui a empresa se nenhum sócio a referenciar.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("Iniciando exclusão de empresa.", map[string]interface{}{"id": id})

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	total, err := s.socios.CountByEmpresaID(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		s.logger.Warn("Exclusão de empresa recusada: existem sócios associados.", map[string]interface{}{"id": id, "socios": total})
		return apperror.NewIntegrityError("Empresa não pode ser excluída. Existem sócios associados.")
	}

	// A FK ainda recusa a exclusão se um sócio for criado entre a contagem e o DELETE.
	return s.repo.Delete(ctx, id)
}

// ListPartners lista os sócios de uma empresa no formato resumido.
func (s *Service) ListPartners(ctx context.Context, id int64) ([]domain.SocioResumo, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	socios, err := s.socios.FindByEmpresaID(ctx, id)
	if err != nil {
		return nil, err
	}

	resumos := make([]domain.SocioResumo, 0, len(socios))
	for _, socio := range socios {
		resumos = append(resumos, socio.Resumo())
	}
	return resumos, nil
}
