package meta

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

func testFilters() *domain.InsigthFilters {
	start := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return &domain.InsigthFilters{StartDate: &start, EndDate: &end}
}

func TestMetaIntegrator_GetAdReports(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, rows []*domain.AdReportRow, dropped int, err error)
	}{
		{
			name: "Deve normalizar todos os registros válidos",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdInsightsByAccountID("act_123", gomock.Any()).
					Return([]metadomain.AdInsight{
						{AdID: "ad_1", DateStart: "2024-03-14", Spend: "10.0"},
						{AdID: "ad_2", DateStart: "2024-03-15", Spend: "20.0"},
					}, nil)
			},
			validate: func(t *testing.T, rows []*domain.AdReportRow, dropped int, err error) {
				assert.NoError(t, err)
				assert.Len(t, rows, 2)
				assert.Equal(t, 0, dropped)
				assert.Equal(t, "ad_1", rows[0].AdID)
				assert.Equal(t, 10.0, rows[0].AmountSpent)
			},
		},
		{
			name: "Registros inválidos devem ser descartados e contados sem derrubar o lote",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdInsightsByAccountID("act_123", gomock.Any()).
					Return([]metadomain.AdInsight{
						{AdID: "ad_1", DateStart: "2024-03-14"},
						{AdID: "", DateStart: "2024-03-14"},
						{AdID: "ad_3", DateStart: "data-invalida"},
						{AdID: "ad_4", DateStart: "2024-03-15", Spend: "abc"},
					}, nil)
			},
			validate: func(t *testing.T, rows []*domain.AdReportRow, dropped int, err error) {
				assert.NoError(t, err)
				assert.Len(t, rows, 1)
				assert.Equal(t, 3, dropped)
				assert.Equal(t, "ad_1", rows[0].AdID)
			},
		},
		{
			name: "Resposta vazia deve retornar lista vazia sem erro",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdInsightsByAccountID("act_123", gomock.Any()).
					Return([]metadomain.AdInsight{}, nil)
			},
			validate: func(t *testing.T, rows []*domain.AdReportRow, dropped int, err error) {
				assert.NoError(t, err)
				assert.Empty(t, rows)
				assert.Equal(t, 0, dropped)
			},
		},
		{
			name: "Falha na API deve ser propagada",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetAdInsightsByAccountID("act_123", gomock.Any()).
					Return(nil, errors.New("token expirado"))
			},
			validate: func(t *testing.T, rows []*domain.AdReportRow, dropped int, err error) {
				assert.Error(t, err)
				assert.Nil(t, rows)
				assert.Equal(t, 0, dropped)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			service := New(&config.Config{}, mockClient)
			rows, dropped, err := service.GetAdReports("act_123", testFilters())

			tt.validate(t, rows, dropped, err)
		})
	}
}
