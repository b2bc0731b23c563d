package api

import (
	catalogapi "github.com/gokulr94/gcp-performance-analyzer/api/catalog"
	ingestionapi "github.com/gokulr94/gcp-performance-analyzer/api/ingestion"
	performanceapi "github.com/gokulr94/gcp-performance-analyzer/api/performance"
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/gokulr94/gcp-performance-analyzer/ingestion"
	"github.com/gokulr94/gcp-performance-analyzer/performance"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type API struct {
	logger       *zap.Logger
	store        *catalog.Store
	perfSvc      *performance.Service
	ingestionSvc *ingestion.Service
}

func New(logger *zap.Logger, store *catalog.Store, perfSvc *performance.Service, ingestionSvc *ingestion.Service) *API {
	return &API{
		logger:       logger.Named("api"),
		store:        store,
		perfSvc:      perfSvc,
		ingestionSvc: ingestionSvc,
	}
}

func (api *API) Register(e *echo.Echo) {
	performanceapi.New(api.logger, api.perfSvc).Register(e.Group("/api/v1/performance"))
	catalogapi.New(api.logger, api.store, api.perfSvc).Register(e.Group("/api/v1/catalog"))
	ingestionapi.New(api.logger, api.ingestionSvc).Register(e.Group("/api/v1/catalog-ingestion"))
}
