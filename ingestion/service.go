package ingestion

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gokulr94/gcp-performance-analyzer/db/model"
	"github.com/gokulr94/gcp-performance-analyzer/db/repo"
	"go.uber.org/zap"
)

//go:embed data/machine_types.json data/disk_types.json
var dataFS embed.FS

type machineTypeEntry struct {
	Name                     string  `json:"name"`
	Vcpu                     int64   `json:"vcpu"`
	MemoryGb                 float64 `json:"memory_gb"`
	CpuPlatform              string  `json:"cpu_platform"`
	ReadIopsLimit            float64 `json:"read_iops_limit"`
	WriteIopsLimit           float64 `json:"write_iops_limit"`
	ReadThroughputLimitMbps  float64 `json:"read_throughput_limit_mbps"`
	WriteThroughputLimitMbps float64 `json:"write_throughput_limit_mbps"`
	NetworkBandwidthGbps     float64 `json:"network_bandwidth_gbps"`
}

type machineFamilyEntry struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	MachineTypes []machineTypeEntry `json:"machine_types"`
}

type machineTypesFile struct {
	Families []machineFamilyEntry `json:"families"`
}

type diskTypeEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	MinSizeGb   int64  `json:"min_size_gb"`
	MaxSizeGb   int64  `json:"max_size_gb"`
	Description string `json:"description"`

	BaselineReadIops       float64 `json:"baseline_read_iops"`
	BaselineWriteIops      float64 `json:"baseline_write_iops"`
	ReadIopsPerGb          float64 `json:"read_iops_per_gb"`
	WriteIopsPerGb         float64 `json:"write_iops_per_gb"`
	MaxReadIops            float64 `json:"max_read_iops"`
	MaxWriteIops           float64 `json:"max_write_iops"`
	ReadThroughputPerGb    float64 `json:"read_throughput_per_gb"`
	WriteThroughputPerGb   float64 `json:"write_throughput_per_gb"`
	MaxReadThroughputMbps  float64 `json:"max_read_throughput_mbps"`
	MaxWriteThroughputMbps float64 `json:"max_write_throughput_mbps"`

	DeviceSizeGb              int64   `json:"device_size_gb"`
	DeviceReadIops            float64 `json:"device_read_iops"`
	DeviceWriteIops           float64 `json:"device_write_iops"`
	DeviceReadThroughputMbps  float64 `json:"device_read_throughput_mbps"`
	DeviceWriteThroughputMbps float64 `json:"device_write_throughput_mbps"`

	ProvisionedIopsMin           float64 `json:"provisioned_iops_min"`
	ProvisionedIopsMax           float64 `json:"provisioned_iops_max"`
	ProvisionedThroughputMinMbps float64 `json:"provisioned_throughput_min_mbps"`
	ProvisionedThroughputMaxMbps float64 `json:"provisioned_throughput_max_mbps"`
}

type diskTypesFile struct {
	DiskTypes []diskTypeEntry `json:"disk_types"`
}

type Service struct {
	logger *zap.Logger

	machineFamilyRepo repo.MachineFamilyRepo
	machineTypeRepo   repo.MachineTypeRepo
	diskTypeRepo      repo.DiskTypeRepo
}

func New(logger *zap.Logger, machineFamilyRepo repo.MachineFamilyRepo, machineTypeRepo repo.MachineTypeRepo, diskTypeRepo repo.DiskTypeRepo) *Service {
	return &Service{
		logger: logger.Named("ingestion"),

		machineFamilyRepo: machineFamilyRepo,
		machineTypeRepo:   machineTypeRepo,
		diskTypeRepo:      diskTypeRepo,
	}
}

// IngestIfEmpty seeds the catalog tables on first startup. A missing view is
// indistinguishable from a query error here, so any List failure also
// triggers a full ingest.
func (s *Service) IngestIfEmpty(ctx context.Context) error {
	machines, err := s.machineTypeRepo.List()
	if err == nil && len(machines) > 0 {
		s.logger.Info("catalog already ingested", zap.Int("machineTypes", len(machines)))
		return nil
	}
	if err != nil {
		s.logger.Info("catalog views not readable, ingesting", zap.Error(err))
	}
	return s.Ingest(ctx)
}

// Ingest rebuilds the catalog from the embedded dataset. Each table is
// written under a fresh versioned name and the serving view is swapped over
// only after the load completes, so readers never observe a partial catalog.
func (s *Service) Ingest(ctx context.Context) error {
	var machineFile machineTypesFile
	if err := readDataFile("data/machine_types.json", &machineFile); err != nil {
		return err
	}
	var diskFile diskTypesFile
	if err := readDataFile("data/disk_types.json", &diskFile); err != nil {
		return err
	}

	if err := s.ingestMachineFamilies(ctx, machineFile.Families); err != nil {
		return err
	}
	if err := s.ingestMachineTypes(ctx, machineFile.Families); err != nil {
		return err
	}
	if err := s.ingestDiskTypes(ctx, diskFile.DiskTypes); err != nil {
		return err
	}
	s.logger.Info("catalog ingestion done",
		zap.Int("families", len(machineFile.Families)),
		zap.Int("diskTypes", len(diskFile.DiskTypes)))
	return nil
}

func (s *Service) ingestMachineFamilies(ctx context.Context, families []machineFamilyEntry) error {
	table, err := s.machineFamilyRepo.CreateNewTable()
	if err != nil {
		return err
	}
	for _, f := range families {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = s.machineFamilyRepo.Create(table, nil, &model.MachineFamily{
			Name:        f.Name,
			Description: f.Description,
		})
		if err != nil {
			return err
		}
	}
	if err = s.machineFamilyRepo.MoveViewTransaction(table); err != nil {
		return err
	}
	return s.machineFamilyRepo.RemoveOldTables(table)
}

func (s *Service) ingestMachineTypes(ctx context.Context, families []machineFamilyEntry) error {
	table, err := s.machineTypeRepo.CreateNewTable()
	if err != nil {
		return err
	}
	for _, f := range families {
		for _, mt := range f.MachineTypes {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m := model.MachineType{
				Name:        mt.Name,
				GuestCpus:   mt.Vcpu,
				MemoryMb:    int64(mt.MemoryGb * 1024),
				CpuPlatform: mt.CpuPlatform,
				Description: machineTypeDescription(mt),

				ReadIopsLimit:            mt.ReadIopsLimit,
				WriteIopsLimit:           mt.WriteIopsLimit,
				ReadThroughputLimitMbps:  mt.ReadThroughputLimitMbps,
				WriteThroughputLimitMbps: mt.WriteThroughputLimitMbps,

				NetworkBandwidthGbps: mt.NetworkBandwidthGbps,
			}
			m.PopulateFamily()
			if m.MachineFamily != f.Name {
				return fmt.Errorf("machine type %s listed under family %s", mt.Name, f.Name)
			}
			if err = s.machineTypeRepo.Create(table, nil, &m); err != nil {
				return err
			}
		}
	}
	if err = s.machineTypeRepo.MoveViewTransaction(table); err != nil {
		return err
	}
	return s.machineTypeRepo.RemoveOldTables(table)
}

func (s *Service) ingestDiskTypes(ctx context.Context, diskTypes []diskTypeEntry) error {
	table, err := s.diskTypeRepo.CreateNewTable()
	if err != nil {
		return err
	}
	for _, dt := range diskTypes {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = s.diskTypeRepo.Create(table, nil, &model.DiskType{
			Name:        dt.Name,
			Category:    model.DiskCategory(dt.Category),
			MinSizeGb:   dt.MinSizeGb,
			MaxSizeGb:   dt.MaxSizeGb,
			Description: dt.Description,

			BaselineReadIops:       dt.BaselineReadIops,
			BaselineWriteIops:      dt.BaselineWriteIops,
			ReadIopsPerGb:          dt.ReadIopsPerGb,
			WriteIopsPerGb:         dt.WriteIopsPerGb,
			MaxReadIops:            dt.MaxReadIops,
			MaxWriteIops:           dt.MaxWriteIops,
			ReadThroughputPerGb:    dt.ReadThroughputPerGb,
			WriteThroughputPerGb:   dt.WriteThroughputPerGb,
			MaxReadThroughputMbps:  dt.MaxReadThroughputMbps,
			MaxWriteThroughputMbps: dt.MaxWriteThroughputMbps,

			DeviceSizeGb:              dt.DeviceSizeGb,
			DeviceReadIops:            dt.DeviceReadIops,
			DeviceWriteIops:           dt.DeviceWriteIops,
			DeviceReadThroughputMbps:  dt.DeviceReadThroughputMbps,
			DeviceWriteThroughputMbps: dt.DeviceWriteThroughputMbps,

			ProvisionedIopsMin:           dt.ProvisionedIopsMin,
			ProvisionedIopsMax:           dt.ProvisionedIopsMax,
			ProvisionedThroughputMinMbps: dt.ProvisionedThroughputMinMbps,
			ProvisionedThroughputMaxMbps: dt.ProvisionedThroughputMaxMbps,
		})
		if err != nil {
			return err
		}
	}
	if err = s.diskTypeRepo.MoveViewTransaction(table); err != nil {
		return err
	}
	return s.diskTypeRepo.RemoveOldTables(table)
}

func machineTypeDescription(mt machineTypeEntry) string {
	return fmt.Sprintf("%d vCPUs, %.0f GB memory on %s", mt.Vcpu, mt.MemoryGb, mt.CpuPlatform)
}

func readDataFile(name string, out any) error {
	content, err := dataFS.ReadFile(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("parse %s: %w", strings.TrimPrefix(name, "data/"), err)
	}
	return nil
}
