package performance

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gokulr94/gcp-performance-analyzer/api/entity"
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/gokulr94/gcp-performance-analyzer/performance"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// descriptionTimeout bounds the completion call; a slow or failing model
// must not hold the calculation response hostage.
const descriptionTimeout = 30 * time.Second

type API struct {
	logger  *zap.Logger
	perfSvc *performance.Service
	tracer  trace.Tracer
}

func New(logger *zap.Logger, perfSvc *performance.Service) API {
	return API{
		logger:  logger.Named("api"),
		perfSvc: perfSvc,
		tracer:  otel.GetTracerProvider().Tracer("analyzer.api.performance"),
	}
}

func (s API) Register(g *echo.Group) {
	g.POST("/calculate", s.Calculate)
	g.GET("/optimal-size", s.OptimalSize)
}

// Calculate godoc
//
//	@Summary	Effective storage performance for a machine and its disks
//	@Tags		performance
//	@Accept		json
//	@Produce	json
//	@Param		request	body		entity.CalculateRequest	true	"Request"
//	@Success	200		{object}	entity.CalculateResponse
//	@Router		/api/v1/performance/calculate [post]
func (s API) Calculate(c echo.Context) error {
	ctx, span := s.tracer.Start(c.Request().Context(), "calculate")
	defer span.End()

	var req entity.CalculateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RequestId == nil {
		id := uuid.New().String()
		req.RequestId = &id
	}

	disks := make([]performance.DiskSpec, 0, len(req.Disks))
	for _, d := range req.Disks {
		disks = append(disks, performance.DiskSpec{DiskType: d.DiskType, SizeGb: d.SizeGb})
	}

	assessment, err := s.perfSvc.Calculate(req.MachineType, disks)
	if err != nil {
		s.logger.Warn("calculation failed",
			zap.Stringp("requestId", req.RequestId),
			zap.String("machineType", req.MachineType),
			zap.Error(err))
		return httpError(err)
	}

	resp := entity.NewCalculateResponse(req.RequestId, assessment)
	if req.WithDescription {
		dctx, cancel := context.WithTimeout(ctx, descriptionTimeout)
		defer cancel()
		description, err := s.perfSvc.DescribeAssessment(dctx, assessment)
		if err != nil {
			s.logger.Warn("description generation failed",
				zap.Stringp("requestId", req.RequestId),
				zap.Error(err))
			resp.DescriptionWarning = "description unavailable: " + err.Error()
		} else {
			resp.Description = description
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// OptimalSize godoc
//
//	@Summary	Smallest disk size that saturates the machine's read IOPS limit
//	@Tags		performance
//	@Produce	json
//	@Param		machine_type	query		string	true	"Machine type name"
//	@Param		disk_type		query		string	true	"Disk type name"
//	@Success	200				{object}	entity.OptimalSizeResponse
//	@Router		/api/v1/performance/optimal-size [get]
func (s API) OptimalSize(c echo.Context) error {
	_, span := s.tracer.Start(c.Request().Context(), "optimal-size")
	defer span.End()

	machineType := c.QueryParam("machine_type")
	diskType := c.QueryParam("disk_type")
	if machineType == "" || diskType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "machine_type and disk_type are required")
	}

	res, err := s.perfSvc.OptimalSize(machineType, diskType)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entity.OptimalSizeResponse{
		MachineType:    machineType,
		DiskType:       diskType,
		OptimalSizeGb:  res.SizeGb,
		MachineMaxIops: res.MachineMaxIops,
	})
}

func httpError(err error) error {
	var (
		machineErr catalog.UnknownMachineTypeError
		diskErr    catalog.UnknownDiskTypeError
		sizeErr    performance.InvalidDiskSizeError
		emptyErr   performance.EmptyDiskListError
	)
	switch {
	case errors.As(err, &machineErr), errors.As(err, &diskErr):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &sizeErr), errors.As(err, &emptyErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
