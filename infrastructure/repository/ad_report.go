package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
)

// insertBatchSize limita o número de linhas por INSERT para não estourar o
// limite de parâmetros do Postgres (33 colunas por linha)
const insertBatchSize = 500

// reportColumns são as colunas de dados das tabelas por conta, na ordem usada
// por INSERT e SELECT
var reportColumns = []string{
	"account_id",
	"account_name",
	"campaign_name",
	"adset_name",
	"ad_id",
	"ad_name",
	"day",
	"amount_spent",
	"impressions",
	"reach",
	"frequency",
	"cpc_all",
	"cpc_link_click",
	"ctr_all",
	"ctr_link_click",
	"cpm",
	"link_clicks",
	"cost_per_result",
	"landing_page_views",
	"cost_per_landing_page_view",
	"leads",
	"leads_conversion_value",
	"messaging_conversations_started",
	"adds_to_cart",
	"website_adds_to_cart",
	"adds_to_cart_conversion_value",
	"checkouts_initiated",
	"checkouts_initiated_conversion_value",
	"purchases",
	"website_purchases",
	"purchases_conversion_value",
	"website_purchases_conversion_value",
	"post_comments",
	"fetched_at",
}

// AdReportRepository é a fronteira de armazenamento das tabelas por conta.
// Replace troca todo o conteúdo da tabela pelo lote informado em uma única
// transação: ou a tabela termina com o conjunto novo completo, ou permanece
// com o conteúdo anterior.
type AdReportRepository interface {
	EnsureTable(tableName string) error
	Replace(tableName string, rows []*domain.AdReportRow) (int, error)
	GetAll(tableName string) ([]*domain.AdReportRow, error)
}

type adReportRepository struct {
	conn *postgres.Connection
}

func NewAdReportRepository(conn *postgres.Connection) AdReportRepository {
	return &adReportRepository{
		conn: conn,
	}
}

// EnsureTable cria a tabela da conta se ainda não existir. O esquema é
// estático; só o nome da tabela é parametrizado pela configuração.
func (r *adReportRepository) EnsureTable(tableName string) error {
	table := pq.QuoteIdentifier(tableName)

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			account_id VARCHAR(50),
			account_name VARCHAR(500),
			campaign_name VARCHAR(500),
			adset_name VARCHAR(500),
			ad_id VARCHAR(50),
			ad_name VARCHAR(500),
			day DATE,
			amount_spent DOUBLE PRECISION DEFAULT 0,
			impressions BIGINT DEFAULT 0,
			reach BIGINT DEFAULT 0,
			frequency DOUBLE PRECISION DEFAULT 0,
			cpc_all DOUBLE PRECISION DEFAULT 0,
			cpc_link_click DOUBLE PRECISION DEFAULT 0,
			ctr_all DOUBLE PRECISION DEFAULT 0,
			ctr_link_click DOUBLE PRECISION DEFAULT 0,
			cpm DOUBLE PRECISION DEFAULT 0,
			link_clicks BIGINT DEFAULT 0,
			cost_per_result DOUBLE PRECISION DEFAULT 0,
			landing_page_views BIGINT DEFAULT 0,
			cost_per_landing_page_view DOUBLE PRECISION DEFAULT 0,
			leads BIGINT DEFAULT 0,
			leads_conversion_value DOUBLE PRECISION DEFAULT 0,
			messaging_conversations_started BIGINT DEFAULT 0,
			adds_to_cart BIGINT DEFAULT 0,
			website_adds_to_cart BIGINT DEFAULT 0,
			adds_to_cart_conversion_value DOUBLE PRECISION DEFAULT 0,
			checkouts_initiated BIGINT DEFAULT 0,
			checkouts_initiated_conversion_value DOUBLE PRECISION DEFAULT 0,
			purchases BIGINT DEFAULT 0,
			website_purchases BIGINT DEFAULT 0,
			purchases_conversion_value DOUBLE PRECISION DEFAULT 0,
			website_purchases_conversion_value DOUBLE PRECISION DEFAULT 0,
			post_comments BIGINT DEFAULT 0,
			fetched_at TIMESTAMP DEFAULT NOW()
		)`, table)

	if _, err := r.conn.Exec(ddl); err != nil {
		return fmt.Errorf("erro ao criar a tabela %s: %w", tableName, err)
	}

	indexes := []string{
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (ad_id)",
			pq.QuoteIdentifier(fmt.Sprintf("idx_%s_ad_id", tableName)), table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (day)",
			pq.QuoteIdentifier(fmt.Sprintf("idx_%s_day", tableName)), table),
	}

	for _, index := range indexes {
		if _, err := r.conn.Exec(index); err != nil {
			return fmt.Errorf("erro ao criar índice da tabela %s: %w", tableName, err)
		}
	}

	return nil
}

// Replace apaga todas as linhas da tabela e insere o lote informado, tudo na
// mesma transação (full refresh)
func (r *adReportRepository) Replace(tableName string, rows []*domain.AdReportRow) (int, error) {
	inserted := 0

	err := r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		deleteQuery, args, err := squirrel.
			Delete(pq.QuoteIdentifier(tableName)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteQuery, args...); err != nil {
			return fmt.Errorf("erro ao limpar a tabela %s: %w", tableName, err)
		}

		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}

			count, err := r.insertBatch(tx, tableName, rows[start:end])
			if err != nil {
				return err
			}
			inserted += count
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *adReportRepository) insertBatch(tx *sql.Tx, tableName string, rows []*domain.AdReportRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(pq.QuoteIdentifier(tableName)).
		Columns(reportColumns...).
		PlaceholderFormat(squirrel.Dollar)

	now := time.Now().UTC()
	for _, row := range rows {
		builder = builder.Values(
			row.AccountID,
			row.AccountName,
			row.CampaignName,
			row.AdsetName,
			row.AdID,
			row.AdName,
			row.Day.Format("2006-01-02"),
			row.AmountSpent,
			row.Impressions,
			row.Reach,
			row.Frequency,
			row.CPCAll,
			row.CPCLinkClick,
			row.CTRAll,
			row.CTRLinkClick,
			row.CPM,
			row.LinkClicks,
			row.CostPerResult,
			row.LandingPageViews,
			row.CostPerLandingPageView,
			row.Leads,
			row.LeadsConversionValue,
			row.MessagingConversationsStarted,
			row.AddsToCart,
			row.WebsiteAddsToCart,
			row.AddsToCartConversionValue,
			row.CheckoutsInitiated,
			row.CheckoutsInitiatedConversionValue,
			row.Purchases,
			row.WebsitePurchases,
			row.PurchasesConversionValue,
			row.WebsitePurchasesConversionValue,
			row.PostComments,
			now,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := tx.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return int(rowsAffected), nil
}

// GetAll retorna todas as linhas da tabela ordenadas por dia decrescente
func (r *adReportRepository) GetAll(tableName string) ([]*domain.AdReportRow, error) {
	columns := make([]string, len(reportColumns))
	copy(columns, reportColumns)

	query, args, err := squirrel.
		Select(columns...).
		From(pq.QuoteIdentifier(tableName)).
		OrderBy("day DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sqlRows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer sqlRows.Close()

	reports := make([]*domain.AdReportRow, 0)
	for sqlRows.Next() {
		report, err := r.scanReportRow(sqlRows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do relatório: %w", err)
		}
		reports = append(reports, report)
	}

	if err = sqlRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *adReportRepository) scanReportRow(rows *sql.Rows) (*domain.AdReportRow, error) {
	report := &domain.AdReportRow{}

	err := rows.Scan(
		&report.AccountID,
		&report.AccountName,
		&report.CampaignName,
		&report.AdsetName,
		&report.AdID,
		&report.AdName,
		&report.Day,
		&report.AmountSpent,
		&report.Impressions,
		&report.Reach,
		&report.Frequency,
		&report.CPCAll,
		&report.CPCLinkClick,
		&report.CTRAll,
		&report.CTRLinkClick,
		&report.CPM,
		&report.LinkClicks,
		&report.CostPerResult,
		&report.LandingPageViews,
		&report.CostPerLandingPageView,
		&report.Leads,
		&report.LeadsConversionValue,
		&report.MessagingConversationsStarted,
		&report.AddsToCart,
		&report.WebsiteAddsToCart,
		&report.AddsToCartConversionValue,
		&report.CheckoutsInitiated,
		&report.CheckoutsInitiatedConversionValue,
		&report.Purchases,
		&report.WebsitePurchases,
		&report.PurchasesConversionValue,
		&report.WebsitePurchasesConversionValue,
		&report.PostComments,
		&report.FetchedAt,
	)
	if err != nil {
		return nil, err
	}

	return report, nil
}
