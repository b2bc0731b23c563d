package analyzer

import (
	"github.com/gokulr94/gcp-performance-analyzer/api"
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/gokulr94/gcp-performance-analyzer/config"
	"github.com/gokulr94/gcp-performance-analyzer/db/connector"
	"github.com/gokulr94/gcp-performance-analyzer/db/repo"
	"github.com/gokulr94/gcp-performance-analyzer/ingestion"
	"github.com/gokulr94/gcp-performance-analyzer/performance"
	"github.com/gokulr94/gcp-performance-analyzer/pkg/httpserver"
	"github.com/gokulr94/gcp-performance-analyzer/pkg/koanf"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func Command() *cobra.Command {
	cnf := koanf.Provide("analyzer", config.AnalyzerConfig{})

	cmd := &cobra.Command{
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}

			logger = logger.Named("analyzer")

			cmd.SilenceUsage = true

			if cnf.Http.Address == "" {
				cnf.Http.Address = "localhost:8000"
			}

			db, err := connector.New(cnf.Postgres, logger, gormlogger.Warn)
			if err != nil {
				return err
			}
			machineFamilyRepo := repo.NewMachineFamilyRepo(db)
			machineTypeRepo := repo.NewMachineTypeRepo(db)
			diskTypeRepo := repo.NewDiskTypeRepo(db)

			ingestionSvc := ingestion.New(logger, machineFamilyRepo, machineTypeRepo, diskTypeRepo)
			if err := ingestionSvc.IngestIfEmpty(cmd.Context()); err != nil {
				return err
			}

			store, err := catalog.Load(machineFamilyRepo, machineTypeRepo, diskTypeRepo)
			if err != nil {
				return err
			}
			logger.Info("catalog loaded",
				zap.Int("machineTypes", len(store.MachineTypes())),
				zap.Int("diskTypes", len(store.DiskTypes())))

			var openaiClient *openai.Client
			if cnf.OpenAI.Token != "" {
				openaiCnf := openai.DefaultConfig(cnf.OpenAI.Token)
				if cnf.OpenAI.BaseURL != "" {
					openaiCnf.BaseURL = cnf.OpenAI.BaseURL
				}
				openaiClient = openai.NewClientWithConfig(openaiCnf)
			} else {
				logger.Warn("no openai token configured, descriptions are disabled")
			}

			perfSvc := performance.New(logger, store, openaiClient, cnf.OpenAI.Model)

			return httpserver.RegisterAndStart(
				cmd.Context(),
				logger,
				cnf.Http.Address,
				api.New(logger, store, perfSvc, ingestionSvc),
			)
		},
	}

	return cmd
}
