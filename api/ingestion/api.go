package ingestion

import (
	"net/http"

	"github.com/gokulr94/gcp-performance-analyzer/ingestion"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type API struct {
	logger       *zap.Logger
	ingestionSvc *ingestion.Service
}

func New(logger *zap.Logger, ingestionSvc *ingestion.Service) API {
	return API{
		logger:       logger.Named("api"),
		ingestionSvc: ingestionSvc,
	}
}

func (s API) Register(g *echo.Group) {
	g.PUT("/ingest", s.TriggerIngest)
}

// TriggerIngest rebuilds the catalog tables from the embedded dataset. The
// in-memory snapshot is loaded once at startup, so a rebuild becomes visible
// to calculations on the next service restart.
func (s API) TriggerIngest(c echo.Context) error {
	if err := s.ingestionSvc.Ingest(c.Request().Context()); err != nil {
		s.logger.Error("catalog ingestion failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "catalog tables rebuilt, snapshot refreshes on restart",
	})
}
