package catalog

// DiskCategory selects which performance formula applies to a disk type.
type DiskCategory string

const (
	DiskCategoryLinear      DiskCategory = "linear"
	DiskCategoryLocalSSD    DiskCategory = "local-ssd"
	DiskCategoryProvisioned DiskCategory = "provisioned"
)

type MachineFamily struct {
	Name        string
	Description string
}

type MachineLimits struct {
	Name          string
	MachineFamily string
	GuestCpus     int64
	MemoryMb      int64
	CpuPlatform   string
	Description   string

	ReadIopsLimit            float64
	WriteIopsLimit           float64
	ReadThroughputLimitMbps  float64
	WriteThroughputLimitMbps float64

	NetworkBandwidthGbps float64
	// NetworkThroughputMbps is derived from NetworkBandwidthGbps at load time
	// so the limit resolver compares throughput in a single unit.
	NetworkThroughputMbps float64
}

type DiskTypeSpec struct {
	Name        string
	Category    DiskCategory
	MinSizeGb   int64
	MaxSizeGb   int64
	Description string

	BaselineReadIops       float64
	BaselineWriteIops      float64
	ReadIopsPerGb          float64
	WriteIopsPerGb         float64
	MaxReadIops            float64
	MaxWriteIops           float64
	ReadThroughputPerGb    float64
	WriteThroughputPerGb   float64
	MaxReadThroughputMbps  float64
	MaxWriteThroughputMbps float64

	DeviceSizeGb              int64
	DeviceReadIops            float64
	DeviceWriteIops           float64
	DeviceReadThroughputMbps  float64
	DeviceWriteThroughputMbps float64

	ProvisionedIopsMin           float64
	ProvisionedIopsMax           float64
	ProvisionedThroughputMinMbps float64
	ProvisionedThroughputMaxMbps float64
}
