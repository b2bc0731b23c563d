package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gokulr94/gcp-performance-analyzer/api/entity"
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/gokulr94/gcp-performance-analyzer/performance"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const explainTimeout = 30 * time.Second

type API struct {
	logger  *zap.Logger
	store   *catalog.Store
	perfSvc *performance.Service
	tracer  trace.Tracer
}

func New(logger *zap.Logger, store *catalog.Store, perfSvc *performance.Service) API {
	return API{
		logger:  logger.Named("api"),
		store:   store,
		perfSvc: perfSvc,
		tracer:  otel.GetTracerProvider().Tracer("analyzer.api.catalog"),
	}
}

func (s API) Register(g *echo.Group) {
	g.GET("/machine-families", s.ListMachineFamilies)
	g.GET("/machine-families/:family/machine-types", s.ListMachineTypesByFamily)
	g.GET("/machine-types", s.ListMachineTypes)
	g.GET("/machine-types/:machineType", s.GetMachineType)
	g.GET("/machine-types/:machineType/explain", s.ExplainMachineType)
	g.GET("/disk-types", s.ListDiskTypes)
	g.GET("/disk-types/:diskType", s.GetDiskType)
}

func (s API) ListMachineFamilies(c echo.Context) error {
	families := s.store.Families()
	out := make([]entity.MachineFamily, 0, len(families))
	for _, f := range families {
		out = append(out, entity.MachineFamily{Name: f.Name, Description: f.Description})
	}
	return c.JSON(http.StatusOK, out)
}

func (s API) ListMachineTypesByFamily(c echo.Context) error {
	machines, err := s.store.MachineTypesByFamily(c.Param("family"))
	if err != nil {
		return notFound(err)
	}
	return c.JSON(http.StatusOK, toMachineLimits(machines))
}

func (s API) ListMachineTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, toMachineLimits(s.store.MachineTypes()))
}

func (s API) GetMachineType(c echo.Context) error {
	m, err := s.store.MachineType(c.Param("machineType"))
	if err != nil {
		return notFound(err)
	}
	return c.JSON(http.StatusOK, entity.MachineLimitsFromCatalog(m))
}

func (s API) ExplainMachineType(c echo.Context) error {
	ctx, span := s.tracer.Start(c.Request().Context(), "explain")
	defer span.End()

	m, err := s.store.MachineType(c.Param("machineType"))
	if err != nil {
		return notFound(err)
	}

	ectx, cancel := context.WithTimeout(ctx, explainTimeout)
	defer cancel()
	explanation, err := s.perfSvc.ExplainMachineType(ectx, m)
	if err != nil {
		if errors.Is(err, performance.ErrDescriptionNotConfigured) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		s.logger.Warn("machine type explanation failed",
			zap.String("machineType", m.Name),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusBadGateway, "explanation unavailable: "+err.Error())
	}
	return c.JSON(http.StatusOK, entity.ExplainResponse{
		MachineType: m.Name,
		Explanation: explanation,
	})
}

func (s API) ListDiskTypes(c echo.Context) error {
	disks := s.store.DiskTypes()
	out := make([]entity.DiskType, 0, len(disks))
	for _, d := range disks {
		out = append(out, entity.DiskTypeFromCatalog(d))
	}
	return c.JSON(http.StatusOK, out)
}

func (s API) GetDiskType(c echo.Context) error {
	d, err := s.store.DiskType(c.Param("diskType"))
	if err != nil {
		return notFound(err)
	}
	return c.JSON(http.StatusOK, entity.DiskTypeFromCatalog(d))
}

func toMachineLimits(machines []catalog.MachineLimits) []entity.MachineLimits {
	out := make([]entity.MachineLimits, 0, len(machines))
	for _, m := range machines {
		out = append(out, entity.MachineLimitsFromCatalog(m))
	}
	return out
}

func notFound(err error) error {
	return echo.NewHTTPError(http.StatusNotFound, err.Error())
}
