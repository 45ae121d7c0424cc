package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

func TestLoadAdAccounts(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, accounts []domain.AdAccount)
	}{
		{
			name:  "Sem variáveis configuradas deve retornar lista vazia",
			setup: func() {},
			validate: func(t *testing.T, accounts []domain.AdAccount) {
				assert.Empty(t, accounts)
			},
		},
		{
			name: "Conta com todas as variáveis deve usar os valores informados",
			setup: func() {
				viper.Set("AD_ACCOUNT_ID_1", "act_123")
				viper.Set("AD_ACCOUNT_NAME_1", "Loja A")
				viper.Set("AD_ACCOUNT_TABLE_1", "facebook_ads_loja_a")
				viper.Set("AD_ACCOUNT_EXPORT_FILE_1", "loja_a.xlsx")
			},
			validate: func(t *testing.T, accounts []domain.AdAccount) {
				assert.Len(t, accounts, 1)
				assert.Equal(t, "act_123", accounts[0].ID)
				assert.Equal(t, "Loja A", accounts[0].Name)
				assert.Equal(t, "facebook_ads_loja_a", accounts[0].TableName)
				assert.Equal(t, "loja_a.xlsx", accounts[0].ExportFilename)
			},
		},
		{
			name: "Conta apenas com o ID deve assumir os valores padrão por posição",
			setup: func() {
				viper.Set("AD_ACCOUNT_ID_1", "act_123")
			},
			validate: func(t *testing.T, accounts []domain.AdAccount) {
				assert.Len(t, accounts, 1)
				assert.Equal(t, "Account1", accounts[0].Name)
				assert.Equal(t, "facebook_ads_account_1", accounts[0].TableName)
				assert.Equal(t, "facebook_ads_account_1.xlsx", accounts[0].ExportFilename)
			},
		},
		{
			name: "Arquivo de exportação padrão deve seguir o nome da tabela informada",
			setup: func() {
				viper.Set("AD_ACCOUNT_ID_1", "act_123")
				viper.Set("AD_ACCOUNT_TABLE_1", "facebook_ads_loja_a")
			},
			validate: func(t *testing.T, accounts []domain.AdAccount) {
				assert.Len(t, accounts, 1)
				assert.Equal(t, "facebook_ads_loja_a.xlsx", accounts[0].ExportFilename)
			},
		},
		{
			name: "A sequência deve parar na primeira posição sem ID",
			setup: func() {
				viper.Set("AD_ACCOUNT_ID_1", "act_1")
				viper.Set("AD_ACCOUNT_ID_2", "act_2")
				// posição 3 ausente: a conta 4 não deve ser descoberta
				viper.Set("AD_ACCOUNT_ID_4", "act_4")
			},
			validate: func(t *testing.T, accounts []domain.AdAccount) {
				assert.Len(t, accounts, 2)
				assert.Equal(t, "act_1", accounts[0].ID)
				assert.Equal(t, "act_2", accounts[1].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			tt.setup()

			tt.validate(t, loadAdAccounts())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	account := domain.AdAccount{ID: "act_123", Name: "Loja A", TableName: "facebook_ads_loja_a"}

	tests := []struct {
		name     string
		config   *Config
		hasError bool
	}{
		{
			name: "Configuração completa deve ser válida",
			config: &Config{
				Meta:       Meta{AccessToken: "token"},
				Database:   Database{Password: "secret"},
				AdAccounts: []domain.AdAccount{account},
			},
			hasError: false,
		},
		{
			name: "Sem token de acesso deve ser inválida",
			config: &Config{
				Database:   Database{Password: "secret"},
				AdAccounts: []domain.AdAccount{account},
			},
			hasError: true,
		},
		{
			name: "Sem senha do banco deve ser inválida",
			config: &Config{
				Meta:       Meta{AccessToken: "token"},
				AdAccounts: []domain.AdAccount{account},
			},
			hasError: true,
		},
		{
			name: "Sem contas configuradas deve ser inválida",
			config: &Config{
				Meta:     Meta{AccessToken: "token"},
				Database: Database{Password: "secret"},
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.hasError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
