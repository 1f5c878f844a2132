package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Gemini         Gemini         `mapstructure:",squash"`
	Sales          Sales          `mapstructure:",squash"`
	InsightRefresh InsightRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Storage define onde o slot de vendas é persistido. O driver "file" grava
// um snapshot JSON local; o driver "postgres" grava o mesmo payload em uma
// tabela de slot único.
type Storage struct {
	Driver string `mapstructure:"storage_driver"`
	Path   string `mapstructure:"storage_path"`
	Slot   string `mapstructure:"storage_slot"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Gemini struct {
	BaseURL string `mapstructure:"gemini_base_url"`
	Model   string `mapstructure:"gemini_model"`
	APIKey  string `mapstructure:"gemini_api_key"`
}

// Sales controla a semeadura do conjunto inicial e o atraso simulado das
// mutações, que mantém o comportamento observável da UI (estado "enviando").
type Sales struct {
	SeedCount       int           `mapstructure:"sales_seed_count"`
	MutationDelayMS int           `mapstructure:"sales_mutation_delay_ms"`
	MutationDelay   time.Duration `mapstructure:"-"`
}

type InsightRefresh struct {
	CronSchedule string `mapstructure:"insight_refresh_cron"`
	Enabled      bool   `mapstructure:"insight_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_PATH", "data/sales.json")
	viper.SetDefault("STORAGE_SLOT", "salesData")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/atheer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GEMINI_API_KEY", "") // ONLY LOCAL

	viper.SetDefault("SALES_SEED_COUNT", 200)
	viper.SetDefault("SALES_MUTATION_DELAY_MS", 500)

	viper.SetDefault("INSIGHT_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("INSIGHT_REFRESH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Sales.MutationDelay = time.Duration(config.Sales.MutationDelayMS) * time.Millisecond

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
