package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

// maxAdAccounts limita a quantidade de contas configuráveis via variáveis
// indexadas (AD_ACCOUNT_ID_1, AD_ACCOUNT_ID_2, ...)
const maxAdAccounts = 20

type Config struct {
	App          App                `mapstructure:",squash"`
	Server       Server             `mapstructure:",squash"`
	Database     Database           `mapstructure:",squash"`
	Meta         Meta               `mapstructure:",squash"`
	Export       Export             `mapstructure:",squash"`
	PipelineSync PipelineSync       `mapstructure:",squash"`
	AdAccounts   []domain.AdAccount `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
}

type Export struct {
	Folder string `mapstructure:"export_folder"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	LookbackDays int    `mapstructure:"pipeline_sync_lookback_days"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/facebook_ads_db")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("EXPORT_FOLDER", "exports")

	// Defaults para a execução diária do pipeline
	viper.SetDefault("PIPELINE_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PIPELINE_SYNC_LOOKBACK_DAYS", 7)  // 7 dias para buscar dados
	viper.SetDefault("PIPELINE_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	config.AdAccounts = loadAdAccounts()

	return config, nil
}

// loadAdAccounts monta a lista de contas de anúncio a partir das variáveis
// indexadas. A sequência termina na primeira AD_ACCOUNT_ID_n ausente.
func loadAdAccounts() []domain.AdAccount {
	accounts := make([]domain.AdAccount, 0)

	for i := 1; i <= maxAdAccounts; i++ {
		id := viper.GetString(fmt.Sprintf("AD_ACCOUNT_ID_%d", i))
		if id == "" {
			break
		}

		name := viper.GetString(fmt.Sprintf("AD_ACCOUNT_NAME_%d", i))
		if name == "" {
			name = fmt.Sprintf("Account%d", i)
		}

		tableName := viper.GetString(fmt.Sprintf("AD_ACCOUNT_TABLE_%d", i))
		if tableName == "" {
			tableName = fmt.Sprintf("facebook_ads_account_%d", i)
		}

		exportFilename := viper.GetString(fmt.Sprintf("AD_ACCOUNT_EXPORT_FILE_%d", i))
		if exportFilename == "" {
			exportFilename = fmt.Sprintf("%s.xlsx", tableName)
		}

		accounts = append(accounts, domain.AdAccount{
			ID:             id,
			Name:           name,
			TableName:      tableName,
			ExportFilename: exportFilename,
		})
	}

	return accounts
}

// Validate verifica as configurações obrigatórias antes de iniciar o pipeline
func (c *Config) Validate() error {
	missing := make([]string, 0)

	if c.Meta.AccessToken == "" {
		missing = append(missing, "META_ACCESS_TOKEN")
	}

	if c.Database.Password == "" {
		missing = append(missing, "DATABASE_PASSWORD")
	}

	if len(c.AdAccounts) == 0 {
		missing = append(missing, "AD_ACCOUNT_ID_1")
	}

	if len(missing) > 0 {
		return fmt.Errorf("configurações obrigatórias ausentes: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
