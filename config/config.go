package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações do cadastro de empresas e sócios.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis). Vazio usa o cache em memória.
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// HTTP
	CORSOrigins []string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env, quando existir, já foi carregado pelo main via godotenv.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	// Variáveis obrigatórias: a aplicação não sobe sem banco e sem chave JWT.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET_KEY"} {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, fmt.Errorf("erro de configuração: a variável de ambiente %s deve ser definida", key)
		}
	}

	cfg := &Config{
		// 1. Geral
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		// 2. Banco de Dados
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		// 3. Cache
		RedisAddr: v.GetString("REDIS_ADDR"),
		CacheTTL:  time.Duration(v.GetInt("CACHE_TTL_SEC")) * time.Second,

		// 4. Segurança
		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),
		TokenExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute,

		// 5. HTTP
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}

	if cfg.DBTimeout <= 0 {
		return nil, fmt.Errorf("erro de configuração: DB_TIMEOUT_SEC deve ser positivo")
	}
	if cfg.TokenExpiry <= 0 {
		return nil, fmt.Errorf("erro de configuração: JWT_EXPIRY_MIN deve ser positivo")
	}

	return cfg, nil
}

// IsDevelopment informa se a aplicação roda em ambiente de desenvolvimento.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TTL_SEC", 300)
	v.SetDefault("JWT_EXPIRY_MIN", 60)
	v.SetDefault("CORS_ORIGINS", "*")
}

// splitList separa uma lista por vírgulas, descartando itens vazios.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if item := strings.TrimRight(strings.TrimSpace(p), "/"); item != "" {
			out = append(out, item)
		}
	}
	return out
}
