package performance

import (
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
)

// Compute evaluates the performance formula for a single disk.
func Compute(spec catalog.DiskTypeSpec, sizeGb int64) (DiskPerformance, error) {
	if sizeGb < spec.MinSizeGb || sizeGb > spec.MaxSizeGb {
		return DiskPerformance{}, InvalidDiskSizeError{
			DiskType:  spec.Name,
			SizeGb:    sizeGb,
			MinSizeGb: spec.MinSizeGb,
			MaxSizeGb: spec.MaxSizeGb,
		}
	}

	switch spec.Category {
	case catalog.DiskCategoryLinear:
		return computeLinear(spec, sizeGb), nil
	case catalog.DiskCategoryLocalSSD:
		return computeLocalSSD(spec, sizeGb), nil
	case catalog.DiskCategoryProvisioned:
		return computeProvisioned(spec), nil
	default:
		return DiskPerformance{}, catalog.UnknownDiskTypeError{DiskType: spec.Name}
	}
}

// computeLinear applies the baseline-plus-per-GB formula, capped at the disk
// type's ceiling. Throughput has no baseline component.
func computeLinear(spec catalog.DiskTypeSpec, sizeGb int64) DiskPerformance {
	size := float64(sizeGb)
	return DiskPerformance{
		ReadIops:            fixed(min(spec.BaselineReadIops+size*spec.ReadIopsPerGb, spec.MaxReadIops)),
		WriteIops:           fixed(min(spec.BaselineWriteIops+size*spec.WriteIopsPerGb, spec.MaxWriteIops)),
		ReadThroughputMbps:  fixed(min(size*spec.ReadThroughputPerGb, spec.MaxReadThroughputMbps)),
		WriteThroughputMbps: fixed(min(size*spec.WriteThroughputPerGb, spec.MaxWriteThroughputMbps)),
	}
}

// computeLocalSSD scales performance by whole attached devices. Sizes below
// one device still count as a single device.
func computeLocalSSD(spec catalog.DiskTypeSpec, sizeGb int64) DiskPerformance {
	devices := sizeGb / spec.DeviceSizeGb
	if devices < 1 {
		devices = 1
	}
	n := float64(devices)
	return DiskPerformance{
		ReadIops:            fixed(n * spec.DeviceReadIops),
		WriteIops:           fixed(n * spec.DeviceWriteIops),
		ReadThroughputMbps:  fixed(n * spec.DeviceReadThroughputMbps),
		WriteThroughputMbps: fixed(n * spec.DeviceWriteThroughputMbps),
	}
}

// computeProvisioned reports the provisionable envelope rather than a fixed
// figure. The actual delivered performance depends on what the customer
// provisions within these bounds.
func computeProvisioned(spec catalog.DiskTypeSpec) DiskPerformance {
	iops := Metric{Min: spec.ProvisionedIopsMin, Max: spec.ProvisionedIopsMax}
	tp := Metric{Min: spec.ProvisionedThroughputMinMbps, Max: spec.ProvisionedThroughputMaxMbps}
	return DiskPerformance{
		ReadIops:            iops,
		WriteIops:           iops,
		ReadThroughputMbps:  tp,
		WriteThroughputMbps: tp,
		Provisioned:         true,
	}
}
