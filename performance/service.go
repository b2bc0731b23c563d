package performance

import (
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Assessment is the full result of one calculation: the machine's limits,
// per-disk and aggregate disk capability, and the resolved effective
// performance.
type Assessment struct {
	Machine   catalog.MachineLimits
	Disks     []DiskResult
	Aggregate DiskPerformance
	Effective EffectivePerformance
}

type Service struct {
	logger  *zap.Logger
	catalog *catalog.Store

	openaiClient *openai.Client
	openaiModel  string
}

func New(logger *zap.Logger, store *catalog.Store, openaiClient *openai.Client, openaiModel string) *Service {
	if openaiModel == "" {
		openaiModel = openai.GPT4TurboPreview
	}
	return &Service{
		logger:  logger.Named("performance"),
		catalog: store,

		openaiClient: openaiClient,
		openaiModel:  openaiModel,
	}
}

// ComputeDisk evaluates a single disk against the catalog.
func (s *Service) ComputeDisk(diskType string, sizeGb int64) (DiskPerformance, error) {
	spec, err := s.catalog.DiskType(diskType)
	if err != nil {
		return DiskPerformance{}, err
	}
	return Compute(spec, sizeGb)
}

// Aggregate sums the capability of every disk in the list. Provisioned
// envelopes are summed bound by bound, so the result for a mixed list is
// itself an envelope.
func (s *Service) Aggregate(disks []DiskSpec) (DiskPerformance, []DiskResult, error) {
	if len(disks) == 0 {
		return DiskPerformance{}, nil, EmptyDiskListError{}
	}

	var total DiskPerformance
	results := make([]DiskResult, 0, len(disks))
	for _, d := range disks {
		perf, err := s.ComputeDisk(d.DiskType, d.SizeGb)
		if err != nil {
			return DiskPerformance{}, nil, err
		}
		results = append(results, DiskResult{
			DiskType:    d.DiskType,
			SizeGb:      d.SizeGb,
			Performance: perf,
		})
		total = total.add(perf)
	}
	return total, results, nil
}

// Calculate runs the whole pipeline for one machine and its disks.
func (s *Service) Calculate(machineType string, disks []DiskSpec) (*Assessment, error) {
	m, err := s.catalog.MachineType(machineType)
	if err != nil {
		return nil, err
	}
	total, results, err := s.Aggregate(disks)
	if err != nil {
		return nil, err
	}
	return &Assessment{
		Machine:   m,
		Disks:     results,
		Aggregate: total,
		Effective: Resolve(m, total),
	}, nil
}

// OptimalSize answers the smallest size of the given disk type that
// saturates the machine's read IOPS limit.
func (s *Service) OptimalSize(machineType, diskType string) (OptimalSize, error) {
	m, err := s.catalog.MachineType(machineType)
	if err != nil {
		return OptimalSize{}, err
	}
	spec, err := s.catalog.DiskType(diskType)
	if err != nil {
		return OptimalSize{}, err
	}
	return optimalSize(m, spec), nil
}
