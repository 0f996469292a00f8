package sociorepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/database"
	"gocadastro/internal/pkg/logger"
)

const socioColumns = `s.id, s.nome, s.cpf, s.endereco, s.telefone, s.empresa_id, s.created_at, s.updated_at`

// SocioRepository implementa o acesso à tabela socios.
type SocioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewSocioRepository cria e retorna uma nova instância do Repositório de Sócios.
func NewSocioRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *SocioRepository {
	return &SocioRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere um novo sócio. Uma empresa inexistente (FK violada) vira NotFoundError.
func (r *SocioRepository) Create(ctx context.Context, socio domain.Socio) (domain.Socio, error) {
	r.logger.Debug("Iniciando Create de sócio no repositório.", map[string]interface{}{"nome": socio.Nome, "empresa_id": socio.EmpresaID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := `
        INSERT INTO socios AS s (nome, cpf, endereco, telefone, empresa_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6)
        RETURNING ` + socioColumns

	created, err := scanSocio(r.DB.QueryRowContext(ctxTimeout, query,
		socio.Nome, socio.CPF, socio.Endereco, socio.Telefone, socio.EmpresaID, now,
	))
	if err != nil {
		return domain.Socio{}, r.translateWriteError("Falha ao criar sócio", err)
	}

	r.logger.Info("Sócio criado com sucesso.", map[string]interface{}{"id": created.ID, "empresa_id": created.EmpresaID})
	return created, nil
}

// FindByID busca um sócio pelo ID.
func (r *SocioRepository) FindByID(ctx context.Context, id int64) (domain.Socio, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + socioColumns + ` FROM socios s WHERE s.id = $1`

	socio, err := scanSocio(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Sócio não encontrado.", map[string]interface{}{"id": id})
		return domain.Socio{}, apperror.NewNotFoundError("Sócio não encontrado")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar sócio no DB.", err)
		return domain.Socio{}, apperror.NewDBError("Falha ao buscar sócio", err)
	}
	return socio, nil
}

// FindAll lista todos os sócios com o resumo (id, nome) da empresa dona.
func (r *SocioRepository) FindAll(ctx context.Context) ([]domain.Socio, error) {
	r.logger.Debug("Iniciando FindAll de sócios no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT ` + socioColumns + `, e.id, e.nome
        FROM socios s
        JOIN empresas e ON e.id = s.empresa_id
        ORDER BY s.id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de sócios.", err)
		return nil, apperror.NewDBError("Falha ao listar sócios", err)
	}
	defer rows.Close()

	socios := make([]domain.Socio, 0)
	for rows.Next() {
		var s domain.Socio
		var ref domain.EmpresaRef
		err := rows.Scan(
			&s.ID, &s.Nome, &s.CPF, &s.Endereco, &s.Telefone, &s.EmpresaID, &s.CreatedAt, &s.UpdatedAt,
			&ref.ID, &ref.Nome,
		)
		if err != nil {
			r.logger.Error("Falha ao mapear sócio na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao mapear sócios do DB", err)
		}
		s.Empresa = &ref
		socios = append(socios, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de sócios.", err)
		return nil, apperror.NewDBError("Erro após iteração de sócios", err)
	}

	r.logger.Info("FindAll de sócios concluído.", map[string]interface{}{"total_socios": len(socios)})
	return socios, nil
}

// FindByEmpresaID lista os sócios de uma empresa.
func (r *SocioRepository) FindByEmpresaID(ctx context.Context, empresaID int64) ([]domain.Socio, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + socioColumns + ` FROM socios s WHERE s.empresa_id = $1 ORDER BY s.id`

	rows, err := r.DB.QueryContext(ctxTimeout, query, empresaID)
	if err != nil {
		r.logger.Error("Falha ao listar sócios da empresa.", err)
		return nil, apperror.NewDBError("Falha ao listar sócios da empresa", err)
	}
	defer rows.Close()

	socios := make([]domain.Socio, 0)
	for rows.Next() {
		s, err := scanSocio(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear sócio da empresa.", err)
			return nil, apperror.NewDBError("Falha ao mapear sócios do DB", err)
		}
		socios = append(socios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Erro após iteração de sócios", err)
	}
	return socios, nil
}

// CountByEmpresaID conta quantos sócios referenciam a empresa.
func (r *SocioRepository) CountByEmpresaID(ctx context.Context, empresaID int64) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM socios WHERE empresa_id = $1`, empresaID).Scan(&total)
	if err != nil {
		r.logger.Error("Falha ao contar sócios da empresa.", err)
		return 0, apperror.NewDBError("Falha ao contar sócios", err)
	}
	return total, nil
}

// Update grava todos os campos do sócio, inclusive a empresa dona.
func (r *SocioRepository) Update(ctx context.Context, socio domain.Socio) (domain.Socio, error) {
	r.logger.Debug("Iniciando Update de sócio no repositório.", map[string]interface{}{"id": socio.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE socios AS s
        SET nome = $1, cpf = $2, endereco = $3, telefone = $4, empresa_id = $5, updated_at = $6
        WHERE s.id = $7
        RETURNING ` + socioColumns

	updated, err := scanSocio(r.DB.QueryRowContext(ctxTimeout, query,
		socio.Nome, socio.CPF, socio.Endereco, socio.Telefone, socio.EmpresaID, time.Now().UTC(), socio.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Sócio não encontrado para atualização.", map[string]interface{}{"id": socio.ID})
		return domain.Socio{}, apperror.NewNotFoundError("Sócio não encontrado")
	}
	if err != nil {
		return domain.Socio{}, r.translateWriteError("Falha ao atualizar sócio", err)
	}

	r.logger.Info("Sócio atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove um sócio pelo ID.
func (r *SocioRepository) Delete(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando Delete de sócio no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM socios WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar sócio do DB.", err)
		return apperror.NewDBError("Falha ao deletar sócio", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Sócio não encontrado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError("Sócio não encontrado")
	}

	r.logger.Info("Sócio deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// translateWriteError converte a violação da FK empresa_id em NotFound.
func (r *SocioRepository) translateWriteError(msg string, err error) error {
	if database.IsPQError(err, database.ForeignKeyViolation) {
		r.logger.Info("Empresa referenciada pelo sócio não existe.", nil)
		return apperror.NewNotFoundError("Empresa não encontrada")
	}
	r.logger.Error(msg+" no DB.", err)
	return apperror.NewDBError(msg, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSocio(row rowScanner) (domain.Socio, error) {
	var s domain.Socio
	err := row.Scan(&s.ID, &s.Nome, &s.CPF, &s.Endereco, &s.Telefone, &s.EmpresaID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
