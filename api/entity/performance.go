package entity

import (
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/gokulr94/gcp-performance-analyzer/performance"
)

type Disk struct {
	DiskType string `json:"diskType" validate:"required"`
	SizeGb   int64  `json:"sizeGb" validate:"required"`
}

type CalculateRequest struct {
	RequestId       *string `json:"requestId"`
	MachineType     string  `json:"machineType" validate:"required"`
	Disks           []Disk  `json:"disks" validate:"dive"`
	WithDescription bool    `json:"withDescription"`
}

type MachineLimits struct {
	Name          string `json:"name"`
	MachineFamily string `json:"machineFamily"`
	GuestCpus     int64  `json:"guestCpus"`
	MemoryMb      int64  `json:"memoryMb"`
	CpuPlatform   string `json:"cpuPlatform,omitempty"`
	Description   string `json:"description,omitempty"`

	ReadIopsLimit            float64 `json:"readIopsLimit"`
	WriteIopsLimit           float64 `json:"writeIopsLimit"`
	ReadThroughputLimitMbps  float64 `json:"readThroughputLimitMbps"`
	WriteThroughputLimitMbps float64 `json:"writeThroughputLimitMbps"`
	NetworkBandwidthGbps     float64 `json:"networkBandwidthGbps"`
	NetworkThroughputMbps    float64 `json:"networkThroughputMbps"`
}

func MachineLimitsFromCatalog(m catalog.MachineLimits) MachineLimits {
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
		NetworkBandwidthGbps:     m.NetworkBandwidthGbps,
		NetworkThroughputMbps:    m.NetworkThroughputMbps,
	}
}

type CalculateResponse struct {
	RequestId *string `json:"requestId,omitempty"`

	Machine              MachineLimits                    `json:"machineLimits"`
	DiskPerformance      performance.DiskPerformance      `json:"diskPerformance"`
	IndividualDisks      []performance.DiskResult         `json:"individualDisks"`
	EffectivePerformance performance.EffectivePerformance `json:"effectivePerformance"`
	AdditiveEnvelope     bool                             `json:"additiveEnvelope"`
	NumDisks             int                              `json:"numDisks"`

	Description        string `json:"description,omitempty"`
	DescriptionWarning string `json:"descriptionWarning,omitempty"`
}

func NewCalculateResponse(requestId *string, a *performance.Assessment) CalculateResponse {
	return CalculateResponse{
		RequestId: requestId,

		Machine:              MachineLimitsFromCatalog(a.Machine),
		DiskPerformance:      a.Aggregate,
		IndividualDisks:      a.Disks,
		EffectivePerformance: a.Effective,
		AdditiveEnvelope:     a.Aggregate.Provisioned,
		NumDisks:             len(a.Disks),
	}
}

type OptimalSizeResponse struct {
	MachineType    string  `json:"machineType"`
	DiskType       string  `json:"diskType"`
	OptimalSizeGb  int64   `json:"optimalSizeGb"`
	MachineMaxIops float64 `json:"machineMaxIops"`
}
