package router_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
)

// memStore é um armazenamento em memória com as mesmas regras de integridade
// do schema Postgres (email único, FK de sócio para empresa com RESTRICT).
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]domain.User
	empresas map[int64]domain.Empresa
	socios   map[int64]domain.Socio
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]domain.User{},
		empresas: map[int64]domain.Empresa{},
		socios:   map[int64]domain.Socio{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// --- users ---

type userRepo struct{ s *memStore }

func (r userRepo) Save(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.User{}, apperror.NewConflictError("Usuário já registrado")
		}
	}
	u.ID = r.s.id()
	r.s.users[u.ID] = u
	return u, nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado")
}

func (r userRepo) FindByID(_ context.Context, id int64) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado")
	}
	return u, nil
}

func (r userRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]domain.User, 0, len(r.s.users))
	for _, k := range sortedKeys(r.s.users) {
		users = append(users, r.s.users[k])
	}
	return users, nil
}

// --- empresas ---

type empresaRepo struct{ s *memStore }

func (r empresaRepo) Create(_ context.Context, e domain.Empresa) (domain.Empresa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = r.s.id()
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	r.s.empresas[e.ID] = e
	return e, nil
}

func (r empresaRepo) FindByID(_ context.Context, id int64) (domain.Empresa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.empresas[id]
	if !ok {
		return domain.Empresa{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	return e, nil
}

func (r empresaRepo) FindAll(_ context.Context) ([]domain.Empresa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Empresa, 0, len(r.s.empresas))
	for _, k := range sortedKeys(r.s.empresas) {
		out = append(out, r.s.empresas[k])
	}
	return out, nil
}

func (r empresaRepo) Update(_ context.Context, e domain.Empresa) (domain.Empresa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.empresas[e.ID]; !ok {
		return domain.Empresa{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	e.UpdatedAt = time.Now().UTC()
	r.s.empresas[e.ID] = e
	return e, nil
}

func (r empresaRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.empresas[id]; !ok {
		return apperror.NewNotFoundError("Empresa não encontrada")
	}
	for _, socio := range r.s.socios {
		if socio.EmpresaID == id {
			return apperror.NewIntegrityError("Empresa não pode ser excluída. Existem sócios associados.")
		}
	}
	delete(r.s.empresas, id)
	return nil
}

// --- sócios ---

type socioRepo struct{ s *memStore }

func (r socioRepo) Create(_ context.Context, socio domain.Socio) (domain.Socio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.empresas[socio.EmpresaID]; !ok {
		return domain.Socio{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	socio.ID = r.s.id()
	r.s.socios[socio.ID] = socio
	return socio, nil
}

func (r socioRepo) FindByID(_ context.Context, id int64) (domain.Socio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	socio, ok := r.s.socios[id]
	if !ok {
		return domain.Socio{}, apperror.NewNotFoundError("Sócio não encontrado")
	}
	return socio, nil
}

func (r socioRepo) FindAll(_ context.Context) ([]domain.Socio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Socio, 0, len(r.s.socios))
	for _, k := range sortedKeys(r.s.socios) {
		socio := r.s.socios[k]
		e := r.s.empresas[socio.EmpresaID]
		socio.Empresa = &domain.EmpresaRef{ID: e.ID, Nome: e.Nome}
		out = append(out, socio)
	}
	return out, nil
}

func (r socioRepo) FindByEmpresaID(_ context.Context, empresaID int64) ([]domain.Socio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Socio, 0)
	for _, k := range sortedKeys(r.s.socios) {
		if r.s.socios[k].EmpresaID == empresaID {
			out = append(out, r.s.socios[k])
		}
	}
	return out, nil
}

func (r socioRepo) CountByEmpresaID(ctx context.Context, empresaID int64) (int, error) {
	socios, err := r.FindByEmpresaID(ctx, empresaID)
	return len(socios), err
}

func (r socioRepo) Update(_ context.Context, socio domain.Socio) (domain.Socio, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.socios[socio.ID]; !ok {
		return domain.Socio{}, apperror.NewNotFoundError("Sócio não encontrado")
	}
	if _, ok := r.s.empresas[socio.EmpresaID]; !ok {
		return domain.Socio{}, apperror.NewNotFoundError("Empresa não encontrada")
	}
	r.s.socios[socio.ID] = socio
	return socio, nil
}

func (r socioRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.socios[id]; !ok {
		return apperror.NewNotFoundError("Sócio não encontrado")
	}
	delete(r.s.socios, id)
	return nil
}
