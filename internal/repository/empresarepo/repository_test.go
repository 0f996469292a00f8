package empresarepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/cache"
	"gocadastro/internal/pkg/logger"
)

const (
	selectByID  = `SELECT .+ FROM empresas WHERE id = \$1`
	updateQuery = `UPDATE empresas`
	deleteQuery = `DELETE FROM empresas WHERE id = \$1`
)

func empresaRows(id int64, nome string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "nome", "cnpj", "endereco", "telefone", "email", "created_at", "updated_at"}).
		AddRow(id, nome, "12345678901234", "Rua A", "111", "a@acme.com", now, now)
}

func newMockRepo(t *testing.T, c cache.Client) (*EmpresaRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEmpresaRepository(db, c, time.Second, time.Minute, logger.Nop()), mock
}

// missSignal avisa (uma vez) quando uma leitura cai no DB.
type missSignal struct {
	cache.Client
	missed chan struct{}
}

func (c *missSignal) Get(ctx context.Context, key string) (string, error) {
	v, err := c.Client.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		select {
		case c.missed <- struct{}{}:
		default:
		}
	}
	return v, err
}

// Com a empresa no cache, FindByID não chega a tocar o banco (DB nil).
func TestFindByID_CacheHit(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryClient(time.Minute)
	repo := NewEmpresaRepository(nil, mem, time.Second, time.Minute, logger.Nop())

	expected := domain.Empresa{ID: 3, Nome: "Acme", CNPJ: "1", Endereco: "Rua A", Telefone: "1", Email: "a@acme.com"}
	payload, err := json.Marshal(expected)
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, "empresa:3", payload, time.Minute))

	got, err := repo.FindByID(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected.Nome, got.Nome)
	assert.Equal(t, expected.Email, got.Email)
}

func TestFindByID_MissLoadsAndCaches(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryClient(time.Minute)
	repo, mock := newMockRepo(t, mem)

	mock.ExpectQuery(selectByID).WithArgs(int64(1)).WillReturnRows(empresaRows(1, "Acme"))

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Nome)

	// Segunda leitura vem do cache: nenhuma query nova é esperada.
	got, err = repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t, cache.NewMemoryClient(time.Minute))
	mock.ExpectQuery(selectByID).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 9)

	var notFound *apperror.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Empresa não encontrada", notFound.Msg)
}

// Uma leitura que começou antes do Update não pode repor a linha antiga no cache.
func TestFindByID_ConcurrentUpdateDoesNotCacheStaleRow(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryClient(time.Minute)
	signal := &missSignal{Client: mem, missed: make(chan struct{}, 1)}
	repo, mock := newMockRepo(t, signal)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(selectByID).WithArgs(int64(1)).WillDelayFor(150 * time.Millisecond).WillReturnRows(empresaRows(1, "Antiga"))
	mock.ExpectQuery(updateQuery).WillReturnRows(empresaRows(1, "Nova"))
	mock.ExpectQuery(selectByID).WithArgs(int64(1)).WillReturnRows(empresaRows(1, "Nova"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := repo.FindByID(ctx, 1)
		assert.NoError(t, err)
	}()

	<-signal.missed
	_, err := repo.Update(ctx, domain.Empresa{ID: 1, Nome: "Nova", CNPJ: "12345678901234", Endereco: "Rua A", Telefone: "111", Email: "a@acme.com"})
	require.NoError(t, err)
	wg.Wait()

	_, err = mem.Get(ctx, "empresa:1")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nova", got.Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Quem iniciou a carga compartilhada desiste; quem entrou depois ainda recebe a empresa.
func TestFindByID_SharedLoadSurvivesLeaderCancel(t *testing.T) {
	repo, mock := newMockRepo(t, cache.NewMemoryClient(time.Minute))
	mock.ExpectQuery(selectByID).WithArgs(int64(1)).WillDelayFor(150 * time.Millisecond).WillReturnRows(empresaRows(1, "Acme"))

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := repo.FindByID(leaderCtx, 1)
		leaderDone <- err
	}()

	time.Sleep(30 * time.Millisecond)
	followerDone := make(chan domain.Empresa, 1)
	go func() {
		e, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		followerDone <- e
	}()

	time.Sleep(30 * time.Millisecond)
	cancelLeader()

	assert.Error(t, <-leaderDone)
	assert.Equal(t, "Acme", (<-followerDone).Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t, cache.NewMemoryClient(time.Minute))
	mock.ExpectQuery(updateQuery).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), domain.Empresa{ID: 7, Nome: "X"})

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDelete_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryClient(time.Minute)
	repo, mock := newMockRepo(t, mem)
	require.NoError(t, mem.Set(ctx, "empresa:3", "{}", time.Minute))

	mock.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(ctx, 3))

	_, err := mem.Get(ctx, "empresa:3")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ForeignKeyBecomesIntegrityError(t *testing.T) {
	repo, mock := newMockRepo(t, cache.NewMemoryClient(time.Minute))
	mock.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 3)

	var integrity *apperror.IntegrityError
	require.ErrorAs(t, err, &integrity)
	status, _, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, 400, status)
}

func TestDelete_NoRowsBecomesNotFound(t *testing.T) {
	repo, mock := newMockRepo(t, cache.NewMemoryClient(time.Minute))
	mock.ExpectExec(deleteQuery).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3)

	var notFound *apperror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
