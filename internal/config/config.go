package config

import "github.com/caarlos0/env/v10"

// Store backends soportados por el cliente de chat.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config centraliza la configuración del servidor y del cliente de terminal.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	// OpenAIAPIKey no es obligatoria al arrancar: si falta, el error aparece en la primera llamada al proveedor.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	LLMBaseURL   string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel     string `env:"LLM_MODEL" envDefault:"gpt-3.5-turbo"`

	ChatAPIURL    string `env:"CHAT_API_URL" envDefault:"http://localhost:8080"`
	ChatStore     string `env:"CHAT_STORE" envDefault:"file"`
	ChatStoreDir  string `env:"CHAT_STORE_DIR" envDefault:".nutrition-coach"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
