package catalog

import (
	"github.com/gokulr94/gcp-performance-analyzer/db/model"
	"github.com/gokulr94/gcp-performance-analyzer/db/repo"
)

// gbpsToMbps converts a network bandwidth figure to the MB/s unit used by
// the disk throughput limits (1 Gbps = 1000 Mbit/s = 125 MB/s).
const gbpsToMbps = 1000.0 / 8.0

// Store is an immutable snapshot of the machine type and disk type catalog.
// It is built once at startup and shared across requests without locking.
type Store struct {
	families     []MachineFamily
	machines     map[string]MachineLimits
	machineNames []string
	byFamily     map[string][]string
	disks        map[string]DiskTypeSpec
	diskNames    []string
}

// New builds a store from already materialized catalog entries. The derived
// network throughput is filled in here so callers never have to.
func New(families []MachineFamily, machines []MachineLimits, disks []DiskTypeSpec) *Store {
	s := &Store{
		families: families,
		machines: make(map[string]MachineLimits, len(machines)),
		byFamily: make(map[string][]string),
		disks:    make(map[string]DiskTypeSpec, len(disks)),
	}
	for _, m := range machines {
		m.NetworkThroughputMbps = m.NetworkBandwidthGbps * gbpsToMbps
		s.machines[m.Name] = m
		s.machineNames = append(s.machineNames, m.Name)
		s.byFamily[m.MachineFamily] = append(s.byFamily[m.MachineFamily], m.Name)
	}
	for _, d := range disks {
		s.disks[d.Name] = d
		s.diskNames = append(s.diskNames, d.Name)
	}
	return s
}

// Load reads the catalog views once and materializes them into a Store.
func Load(familyRepo repo.MachineFamilyRepo, machineTypeRepo repo.MachineTypeRepo, diskTypeRepo repo.DiskTypeRepo) (*Store, error) {
	dbFamilies, err := familyRepo.List()
	if err != nil {
		return nil, err
	}
	dbMachines, err := machineTypeRepo.List()
	if err != nil {
		return nil, err
	}
	dbDisks, err := diskTypeRepo.List()
	if err != nil {
		return nil, err
	}

	families := make([]MachineFamily, 0, len(dbFamilies))
	for _, f := range dbFamilies {
		families = append(families, MachineFamily{
			Name:        f.Name,
			Description: f.Description,
		})
	}
	machines := make([]MachineLimits, 0, len(dbMachines))
	for _, m := range dbMachines {
		machines = append(machines, machineLimitsFromModel(m))
	}
	disks := make([]DiskTypeSpec, 0, len(dbDisks))
	for _, d := range dbDisks {
		disks = append(disks, diskTypeSpecFromModel(d))
	}
	return New(families, machines, disks), nil
}

func machineLimitsFromModel(m model.MachineType) MachineLimits {
	return MachineLimits{
		Name:          m.Name,
		MachineFamily: m.MachineFamily,
		GuestCpus:     m.GuestCpus,
		MemoryMb:      m.MemoryMb,
		CpuPlatform:   m.CpuPlatform,
		Description:   m.Description,

		ReadIopsLimit:            m.ReadIopsLimit,
		WriteIopsLimit:           m.WriteIopsLimit,
		ReadThroughputLimitMbps:  m.ReadThroughputLimitMbps,
		WriteThroughputLimitMbps: m.WriteThroughputLimitMbps,

		NetworkBandwidthGbps: m.NetworkBandwidthGbps,
	}
}

func diskTypeSpecFromModel(d model.DiskType) DiskTypeSpec {
	return DiskTypeSpec{
		Name:        d.Name,
		Category:    DiskCategory(d.Category),
		MinSizeGb:   d.MinSizeGb,
		MaxSizeGb:   d.MaxSizeGb,
		Description: d.Description,

		BaselineReadIops:       d.BaselineReadIops,
		BaselineWriteIops:      d.BaselineWriteIops,
		ReadIopsPerGb:          d.ReadIopsPerGb,
		WriteIopsPerGb:         d.WriteIopsPerGb,
		MaxReadIops:            d.MaxReadIops,
		MaxWriteIops:           d.MaxWriteIops,
		ReadThroughputPerGb:    d.ReadThroughputPerGb,
		WriteThroughputPerGb:   d.WriteThroughputPerGb,
		MaxReadThroughputMbps:  d.MaxReadThroughputMbps,
		MaxWriteThroughputMbps: d.MaxWriteThroughputMbps,

		DeviceSizeGb:              d.DeviceSizeGb,
		DeviceReadIops:            d.DeviceReadIops,
		DeviceWriteIops:           d.DeviceWriteIops,
		DeviceReadThroughputMbps:  d.DeviceReadThroughputMbps,
		DeviceWriteThroughputMbps: d.DeviceWriteThroughputMbps,

		ProvisionedIopsMin:           d.ProvisionedIopsMin,
		ProvisionedIopsMax:           d.ProvisionedIopsMax,
		ProvisionedThroughputMinMbps: d.ProvisionedThroughputMinMbps,
		ProvisionedThroughputMaxMbps: d.ProvisionedThroughputMaxMbps,
	}
}

func (s *Store) MachineType(name string) (MachineLimits, error) {
	m, ok := s.machines[name]
	if !ok {
		return MachineLimits{}, UnknownMachineTypeError{MachineType: name}
	}
	return m, nil
}

func (s *Store) DiskType(name string) (DiskTypeSpec, error) {
	d, ok := s.disks[name]
	if !ok {
		return DiskTypeSpec{}, UnknownDiskTypeError{DiskType: name}
	}
	return d, nil
}

func (s *Store) Families() []MachineFamily {
	return s.families
}

func (s *Store) MachineTypes() []MachineLimits {
	out := make([]MachineLimits, 0, len(s.machineNames))
	for _, name := range s.machineNames {
		out = append(out, s.machines[name])
	}
	return out
}

func (s *Store) MachineTypesByFamily(family string) ([]MachineLimits, error) {
	names, ok := s.byFamily[family]
	if !ok {
		return nil, UnknownMachineFamilyError{MachineFamily: family}
	}
	out := make([]MachineLimits, 0, len(names))
	for _, name := range names {
		out = append(out, s.machines[name])
	}
	return out, nil
}

func (s *Store) DiskTypes() []DiskTypeSpec {
	out := make([]DiskTypeSpec, 0, len(s.diskNames))
	for _, name := range s.diskNames {
		out = append(out, s.disks[name])
	}
	return out
}

// Empty reports whether the snapshot holds no machine types at all, which is
// how startup decides to seed the catalog tables.
func (s *Store) Empty() bool {
	return len(s.machines) == 0
}
