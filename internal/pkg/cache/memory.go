package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryClient implementa Client em memória, usado quando não há Redis configurado.
type MemoryClient struct {
	c *gocache.Cache
}

// NewMemoryClient cria um cache em memória com o TTL padrão informado.
func NewMemoryClient(defaultTTL time.Duration) *MemoryClient {
	return &MemoryClient{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *MemoryClient) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	s, _ := v.(string)
	return s, nil
}

// Set armazena o valor como string, como o Redis faria.
func (m *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}
	if expiration <= 0 {
		expiration = gocache.DefaultExpiration
	}
	m.c.Set(key, s, expiration)
	return nil
}

func (m *MemoryClient) Delete(_ context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
