package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/exporter"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/meta-ads-pipeline/internal/api"
	"github.com/vfg2006/meta-ads-pipeline/internal/config"
	"github.com/vfg2006/meta-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/meta-ads-pipeline/internal/scheduler"
)

func main() {
	setup := flag.Bool("setup", false, "Cria as tabelas de todas as contas configuradas")
	runNow := flag.Bool("run-now", false, "Executa o pipeline imediatamente")
	serve := flag.Bool("serve", false, "Inicia o agendador diário e a API de status")
	days := flag.Int("days", 0, "Quantidade de dias para buscar (padrão: valor da configuração)")
	flag.Parse()

	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Erros de configuração são fatais: nada é processado sem credenciais e
	// pelo menos uma conta configurada
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	reportRepo := repository.NewAdReportRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	excelExporter, err := exporter.NewExcelExporter(cfg.Export.Folder)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o exportador Excel")
	}

	runner := pipeline.NewRunner(cfg, metaIntegrator, reportRepo, excelExporter)

	lookbackDays := *days
	if lookbackDays <= 0 {
		lookbackDays = cfg.PipelineSync.LookbackDays
	}

	switch {
	case *setup:
		if err := runner.SetupTables(); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar as tabelas das contas")
		}
		logrus.Info("Tabelas criadas com sucesso")

	case *runNow:
		summary, err := runner.Run(lookbackDays)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao executar o pipeline")
		}
		if summary.CountByStatus(pipeline.OutcomeFailure) > 0 {
			os.Exit(1)
		}

	case *serve:
		pipelineSyncService := scheduler.NewPipelineSyncService(runner, cfg)
		if err := pipelineSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao iniciar o agendador do pipeline")
		}
		logrus.Info("Agendador do pipeline iniciado com sucesso")

		server, err := api.New(cfg, pipelineSyncService)
		if err != nil {
			logrus.Fatal(err)
		}

		if err := server.Run(ctx); err != nil {
			logrus.Error(err)
		}

	default:
		fmt.Println("Uso:")
		fmt.Println("  pipeline -setup              # Cria as tabelas no banco")
		fmt.Println("  pipeline -run-now            # Executa o pipeline imediatamente")
		fmt.Println("  pipeline -run-now -days 30   # Executa com 30 dias de dados")
		fmt.Println("  pipeline -serve              # Inicia o agendador diário e a API de status")
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
