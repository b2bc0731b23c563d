package performance

import (
	"math"

	"github.com/gokulr94/gcp-performance-analyzer/catalog"
)

// OptimalSize is the smallest disk size whose read IOPS saturates the
// machine's read IOPS limit, clamped to the disk type's supported range.
type OptimalSize struct {
	SizeGb         int64
	MachineMaxIops float64
}

// optimalSize inverts the read IOPS formula. It never fails: when the target
// is unreachable within the supported range it answers with the boundary
// size, which is the best the disk type can do for that machine.
func optimalSize(m catalog.MachineLimits, spec catalog.DiskTypeSpec) OptimalSize {
	target := m.ReadIopsLimit

	var size int64
	switch spec.Category {
	case catalog.DiskCategoryLocalSSD:
		devices := int64(math.Ceil(target / spec.DeviceReadIops))
		if devices < 1 {
			devices = 1
		}
		size = devices * spec.DeviceSizeGb
	case catalog.DiskCategoryProvisioned:
		// Size does not drive IOPS here; the smallest disk already admits
		// the full provisionable range.
		size = spec.MinSizeGb
	default:
		if spec.ReadIopsPerGb <= 0 || target <= spec.BaselineReadIops {
			size = spec.MinSizeGb
		} else {
			size = int64(math.Ceil((target - spec.BaselineReadIops) / spec.ReadIopsPerGb))
		}
	}

	if size < spec.MinSizeGb {
		size = spec.MinSizeGb
	}
	if size > spec.MaxSizeGb {
		size = spec.MaxSizeGb
	}
	return OptimalSize{SizeGb: size, MachineMaxIops: target}
}
