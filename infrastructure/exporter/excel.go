package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Facebook Ads Data"

// reportColumn liga o cabeçalho legível da planilha ao campo correspondente
// da linha do relatório
type reportColumn struct {
	Header string
	Value  func(row *domain.AdReportRow) any
}

// reportLayout define a ordem fixa das colunas da planilha: métricas
// principais primeiro, colunas de identificação por último
var reportLayout = []reportColumn{
	{"ADS ID", func(r *domain.AdReportRow) any { return r.AdID }},
	{"Day", func(r *domain.AdReportRow) any { return r.Day.Format(time.DateOnly) }},
	{"Campaign name", func(r *domain.AdReportRow) any { return r.CampaignName }},
	{"Amount spent", func(r *domain.AdReportRow) any { return r.AmountSpent }},
	{"CPC (all)", func(r *domain.AdReportRow) any { return r.CPCAll }},
	{"CPC (cost per link click)", func(r *domain.AdReportRow) any { return r.CPCLinkClick }},
	{"CTR (all)", func(r *domain.AdReportRow) any { return r.CTRAll }},
	{"CPM (cost per 1,000 impressions)", func(r *domain.AdReportRow) any { return r.CPM }},
	{"Post comments", func(r *domain.AdReportRow) any { return r.PostComments }},
	{"Link clicks", func(r *domain.AdReportRow) any { return r.LinkClicks }},
	{"Messaging conversations started", func(r *domain.AdReportRow) any { return r.MessagingConversationsStarted }},
	{"Landing page views", func(r *domain.AdReportRow) any { return r.LandingPageViews }},
	{"Cost per landing page view", func(r *domain.AdReportRow) any { return r.CostPerLandingPageView }},
	{"Website adds to cart", func(r *domain.AdReportRow) any { return r.WebsiteAddsToCart }},
	{"Checkouts Initiated", func(r *domain.AdReportRow) any { return r.CheckoutsInitiated }},
	{"Website purchases conversion value", func(r *domain.AdReportRow) any { return r.WebsitePurchasesConversionValue }},
	{"Impressions", func(r *domain.AdReportRow) any { return r.Impressions }},
	{"Website purchases", func(r *domain.AdReportRow) any { return r.WebsitePurchases }},
	{"Leads", func(r *domain.AdReportRow) any { return r.Leads }},
	{"Leads Conversion Value", func(r *domain.AdReportRow) any { return r.LeadsConversionValue }},
	{"Reach", func(r *domain.AdReportRow) any { return r.Reach }},
	{"Purchases conversion value", func(r *domain.AdReportRow) any { return r.PurchasesConversionValue }},
	{"Cost Per Result", func(r *domain.AdReportRow) any { return r.CostPerResult }},
	{"Purchases", func(r *domain.AdReportRow) any { return r.Purchases }},
	{"Adds to cart conversion value", func(r *domain.AdReportRow) any { return r.AddsToCartConversionValue }},
	{"Checkouts initiated conversion value", func(r *domain.AdReportRow) any { return r.CheckoutsInitiatedConversionValue }},
	{"Adds to cart", func(r *domain.AdReportRow) any { return r.AddsToCart }},
	{"Frequency", func(r *domain.AdReportRow) any { return r.Frequency }},
	{"CTR (link click-through rate)", func(r *domain.AdReportRow) any { return r.CTRLinkClick }},
	{"Account ID", func(r *domain.AdReportRow) any { return r.AccountID }},
	{"Account name", func(r *domain.AdReportRow) any { return r.AccountName }},
	{"Adset Name", func(r *domain.AdReportRow) any { return r.AdsetName }},
	{"Ad Name", func(r *domain.AdReportRow) any { return r.AdName }},
}

// ReportExporter é a fronteira de exportação do relatório por conta
type ReportExporter interface {
	Export(rows []*domain.AdReportRow, filename string) (string, error)
}

type ExcelExporter struct {
	folder string
}

func NewExcelExporter(folder string) (*ExcelExporter, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar a pasta de exportação %s: %w", folder, err)
	}

	logrus.WithField("folder", folder).Info("Exportador Excel inicializado")

	return &ExcelExporter{folder: folder}, nil
}

// Export grava as linhas no arquivo informado, substituindo qualquer
// exportação anterior no mesmo caminho. As linhas saem ordenadas por dia
// decrescente, independentemente da ordem recebida.
func (e *ExcelExporter) Export(rows []*domain.AdReportRow, filename string) (string, error) {
	path := filepath.Join(e.folder, filename)

	if err := e.deleteExistingFile(path); err != nil {
		return "", err
	}

	ordered := make([]*domain.AdReportRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Day.After(ordered[j].Day)
	})

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar o arquivo Excel")
		}
	}()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("erro ao nomear a planilha: %w", err)
	}

	for colIndex, column := range reportLayout {
		cell, err := excelize.CoordinatesToCellName(colIndex+1, 1)
		if err != nil {
			return "", err
		}
		if err := file.SetCellValue(sheetName, cell, column.Header); err != nil {
			return "", fmt.Errorf("erro ao escrever cabeçalho: %w", err)
		}
	}

	for rowIndex, row := range ordered {
		for colIndex, column := range reportLayout {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err != nil {
				return "", err
			}
			if err := file.SetCellValue(sheetName, cell, column.Value(row)); err != nil {
				return "", fmt.Errorf("erro ao escrever linha %d: %w", rowIndex+1, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("erro ao salvar o arquivo %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(ordered),
	}).Info("Relatório exportado para Excel")

	return path, nil
}

// deleteExistingFile remove a exportação anterior, quando existir, para que o
// arquivo final nunca misture dados antigos
func (e *ExcelExporter) deleteExistingFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("erro ao remover exportação anterior %s: %w", path, err)
	}

	logrus.WithField("path", path).Info("Exportação anterior removida")
	return nil
}
