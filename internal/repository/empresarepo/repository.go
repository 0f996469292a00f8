package empresarepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/cache"
	"gocadastro/internal/pkg/database"
	"gocadastro/internal/pkg/logger"
)

// Chave de cache de uma empresa por ID.
const empresaCacheKey = "empresa:%d"

const empresaColumns = `id, nome, cnpj, endereco, telefone, email, created_at, updated_at`

// EmpresaRepository implementa o acesso à tabela empresas, com cache-aside na busca por ID.
type EmpresaRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger

	// loads junta buscas concorrentes da mesma empresa em uma única consulta ao DB.
	loads singleflight.Group
	// writes avança a cada Update/Delete confirmado. Uma carga que começou antes
	// de uma escrita não grava o resultado no cache.
	writes atomic.Uint64
}

// NewEmpresaRepository cria e retorna uma nova instância do Repositório de Empresas.
func NewEmpresaRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *EmpresaRepository {
	return &EmpresaRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Create insere uma nova empresa e devolve o registro com ID e timestamps gerados.
func (r *EmpresaRepository) Create(ctx context.Context, empresa domain.Empresa) (domain.Empresa, error) {
	r.logger.Debug("Iniciando Create de empresa no repositório.", map[string]interface{}{"nome": empresa.Nome})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	now := time.Now().UTC()
	query := `
        INSERT INTO empresas (nome, cnpj, endereco, telefone, email, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6)
        RETURNING ` + empresaColumns

	created, err := scanEmpresa(r.DB.QueryRowContext(ctxTimeout, query,
		empresa.Nome, empresa.CNPJ, empresa.Endereco, empresa.Telefone, empresa.Email, now,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir empresa no DB.", err)
		return domain.Empresa{}, apperror.NewDBError("Falha ao criar empresa", err)
	}

	r.logger.Info("Empresa criada com sucesso.", map[string]interface{}{"id": created.ID, "nome": created.Nome})
	return created, nil
}

// FindByID busca uma empresa pelo ID, utilizando a estratégia Cache-Aside.
func (r *EmpresaRepository) FindByID(ctx context.Context, id int64) (domain.Empresa, error) {
	// Capturado antes da leitura do cache: qualquer escrita posterior invalida a carga.
	gen := r.writes.Load()

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(empresaCacheKey, id)
	var empresa domain.Empresa

	// 1. Cache (READ)
	cached, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		if json.Unmarshal([]byte(cached), &empresa) == nil {
			r.logger.Debug("Empresa encontrada no cache.", map[string]interface{}{"id": id})
			return empresa, nil
		}
		r.logger.Warn("Entrada de cache corrompida; buscando no DB.", map[string]interface{}{"key": key})
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		// Falha real de cache (ex: Redis fora): segue para o DB.
		r.logger.Warn("Falha ao ler do cache.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// 2. Banco de Dados (uma consulta por chave, mesmo com misses concorrentes).
	// A carga é compartilhada, então não herda o cancelamento de quem a iniciou.
	ch := r.loads.DoChan(key, func() (interface{}, error) {
		loadCtx, loadCancel := context.WithTimeout(context.WithoutCancel(ctx), r.DBTimeout)
		defer loadCancel()
		return r.loadAndCache(loadCtx, key, id, gen)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Empresa{}, res.Err
		}
		return res.Val.(domain.Empresa), nil
	case <-ctx.Done():
		return domain.Empresa{}, apperror.NewDBError("Falha ao buscar empresa", ctx.Err())
	}
}

// loadAndCache lê a empresa do DB e grava o resultado no cache, desde que
// nenhuma escrita tenha sido confirmada depois de gen.
func (r *EmpresaRepository) loadAndCache(ctx context.Context, key string, id int64, gen uint64) (domain.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	empresa, err := scanEmpresa(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Empresa não encontrada.", map[string]interface{}{"id": id})
		return domain.Empresa{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar empresa no DB.", err)
		return domain.Empresa{}, apperror.NewDBError("Falha ao buscar empresa", err)
	}

	// 3. Cache (WRITE)
	if r.writes.Load() != gen {
		r.logger.Debug("Escrita concorrente; resultado não vai para o cache.", map[string]interface{}{"id": id})
		return empresa, nil
	}
	payload, err := json.Marshal(empresa)
	if err != nil {
		return empresa, nil
	}
	if err := r.Cache.Set(ctx, key, payload, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar empresa no cache.", map[string]interface{}{"key": key, "error": err.Error()})
		return empresa, nil
	}
	// Uma escrita entre a checagem e o Set pode ter invalidado antes do Set.
	if r.writes.Load() != gen {
		r.dropCached(ctx, key)
	}

	return empresa, nil
}

// FindAll lista todas as empresas em ordem de inserção.
func (r *EmpresaRepository) FindAll(ctx context.Context) ([]domain.Empresa, error) {
	r.logger.Debug("Iniciando FindAll de empresas no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+empresaColumns+` FROM empresas ORDER BY id`)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de empresas.", err)
		return nil, apperror.NewDBError("Falha ao listar empresas", err)
	}
	defer rows.Close()

	empresas := make([]domain.Empresa, 0)
	for rows.Next() {
		empresa, err := scanEmpresa(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear empresa na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao mapear empresas do DB", err)
		}
		empresas = append(empresas, empresa)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de empresas.", err)
		return nil, apperror.NewDBError("Erro após iteração de empresas", err)
	}

	r.logger.Info("FindAll de empresas concluído.", map[string]interface{}{"total_empresas": len(empresas)})
	return empresas, nil
}

// Update grava todos os campos da empresa e invalida o cache.
func (r *EmpresaRepository) Update(ctx context.Context, empresa domain.Empresa) (domain.Empresa, error) {
	r.logger.Debug("Iniciando Update de empresa no repositório.", map[string]interface{}{"id": empresa.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE empresas
        SET nome = $1, cnpj = $2, endereco = $3, telefone = $4, email = $5, updated_at = $6
        WHERE id = $7
        RETURNING ` + empresaColumns

	updated, err := scanEmpresa(r.DB.QueryRowContext(ctxTimeout, query,
		empresa.Nome, empresa.CNPJ, empresa.Endereco, empresa.Telefone, empresa.Email, time.Now().UTC(), empresa.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Empresa não encontrada para atualização.", map[string]interface{}{"id": empresa.ID})
		return domain.Empresa{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar empresa no DB.", err)
		return domain.Empresa{}, apperror.NewDBError("Falha ao atualizar empresa", err)
	}

	r.invalidate(ctxTimeout, empresa.ID)
	r.logger.Info("Empresa atualizada com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove a empresa. Se ainda houver sócios apontando para ela, a FK
// (ON DELETE RESTRICT) recusa a operação e um IntegrityError é retornado.
func (r *EmpresaRepository) Delete(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando Delete de empresa no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		if database.IsPQError(err, database.ForeignKeyViolation) {
			r.logger.Warn("Exclusão recusada pela FK de sócios.", map[string]interface{}{"id": id})
			return apperror.NewIntegrityError("Empresa não pode ser excluída. Existem sócios associados.")
		}
		r.logger.Error("Falha ao deletar empresa do DB.", err)
		return apperror.NewDBError("Falha ao deletar empresa", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Delete de empresa.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Empresa não encontrada para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError("Empresa não encontrada")
	}

	r.invalidate(ctxTimeout, id)
	r.logger.Info("Empresa deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// invalidate deve ser chamado depois que a escrita foi confirmada no DB.
func (r *EmpresaRepository) invalidate(ctx context.Context, id int64) {
	key := fmt.Sprintf(empresaCacheKey, id)
	r.writes.Add(1)
	r.loads.Forget(key)
	r.dropCached(ctx, key)
}

func (r *EmpresaRepository) dropCached(ctx context.Context, key string) {
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("Falha ao invalidar cache da empresa.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmpresa(row rowScanner) (domain.Empresa, error) {
	var e domain.Empresa
	err := row.Scan(&e.ID, &e.Nome, &e.CNPJ, &e.Endereco, &e.Telefone, &e.Email, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}
