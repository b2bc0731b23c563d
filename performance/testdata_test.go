package performance

import (
	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"go.uber.org/zap"
)

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func pdStandardSpec() catalog.DiskTypeSpec {
	return catalog.DiskTypeSpec{
		Name:      "pd-standard",
		Category:  catalog.DiskCategoryLinear,
		MinSizeGb: 10,
		MaxSizeGb: 65536,

		ReadIopsPerGb:          0.75,
		WriteIopsPerGb:         1.5,
		MaxReadIops:            7500,
		MaxWriteIops:           15000,
		ReadThroughputPerGb:    0.12,
		WriteThroughputPerGb:   0.12,
		MaxReadThroughputMbps:  1200,
		MaxWriteThroughputMbps: 400,
	}
}

func pdBalancedSpec() catalog.DiskTypeSpec {
	return catalog.DiskTypeSpec{
		Name:      "pd-balanced",
		Category:  catalog.DiskCategoryLinear,
		MinSizeGb: 4,
		MaxSizeGb: 65536,

		BaselineReadIops:       3000,
		BaselineWriteIops:      3000,
		ReadIopsPerGb:          6,
		WriteIopsPerGb:         6,
		MaxReadIops:            80000,
		MaxWriteIops:           80000,
		ReadThroughputPerGb:    0.28,
		WriteThroughputPerGb:   0.28,
		MaxReadThroughputMbps:  1200,
		MaxWriteThroughputMbps: 1200,
	}
}

func pdSSDSpec() catalog.DiskTypeSpec {
	return catalog.DiskTypeSpec{
		Name:      "pd-ssd",
		Category:  catalog.DiskCategoryLinear,
		MinSizeGb: 10,
		MaxSizeGb: 65536,

		BaselineReadIops:       6000,
		BaselineWriteIops:      6000,
		ReadIopsPerGb:          30,
		WriteIopsPerGb:         30,
		MaxReadIops:            100000,
		MaxWriteIops:           100000,
		ReadThroughputPerGb:    0.48,
		WriteThroughputPerGb:   0.48,
		MaxReadThroughputMbps:  1200,
		MaxWriteThroughputMbps: 1200,
	}
}

func localSSDSpec() catalog.DiskTypeSpec {
	return catalog.DiskTypeSpec{
		Name:      "local-ssd",
		Category:  catalog.DiskCategoryLocalSSD,
		MinSizeGb: 1,
		MaxSizeGb: 9000,

		DeviceSizeGb:              375,
		DeviceReadIops:            375000,
		DeviceWriteIops:           360000,
		DeviceReadThroughputMbps:  660,
		DeviceWriteThroughputMbps: 350,
	}
}

func hyperdiskBalancedSpec() catalog.DiskTypeSpec {
	return catalog.DiskTypeSpec{
		Name:      "hyperdisk-balanced",
		Category:  catalog.DiskCategoryProvisioned,
		MinSizeGb: 4,
		MaxSizeGb: 65536,

		ProvisionedIopsMin:           3000,
		ProvisionedIopsMax:           160000,
		ProvisionedThroughputMinMbps: 140,
		ProvisionedThroughputMaxMbps: 2400,
	}
}

func testMachines() []catalog.MachineLimits {
	return []catalog.MachineLimits{
		{
			Name:                     "n2-standard-4",
			MachineFamily:            "n2",
			GuestCpus:                4,
			MemoryMb:                 16384,
			ReadIopsLimit:            15000,
			WriteIopsLimit:           15000,
			ReadThroughputLimitMbps:  240,
			WriteThroughputLimitMbps: 240,
			NetworkBandwidthGbps:     10,
		},
		{
			Name:                     "n2-standard-16",
			MachineFamily:            "n2",
			GuestCpus:                16,
			MemoryMb:                 65536,
			ReadIopsLimit:            20000,
			WriteIopsLimit:           20000,
			ReadThroughputLimitMbps:  1200,
			WriteThroughputLimitMbps: 1200,
			NetworkBandwidthGbps:     32,
		},
		{
			Name:                     "e2-medium",
			MachineFamily:            "e2",
			GuestCpus:                2,
			MemoryMb:                 4096,
			ReadIopsLimit:            12000,
			WriteIopsLimit:           10000,
			ReadThroughputLimitMbps:  200,
			WriteThroughputLimitMbps: 200,
			NetworkBandwidthGbps:     4,
		},
		{
			Name:                     "m3-megamem-128",
			MachineFamily:            "m3",
			GuestCpus:                128,
			MemoryMb:                 1998848,
			ReadIopsLimit:            80000,
			WriteIopsLimit:           80000,
			ReadThroughputLimitMbps:  1200,
			WriteThroughputLimitMbps: 1200,
			NetworkBandwidthGbps:     32,
		},
	}
}

func newTestService() *Service {
	store := catalog.New(
		[]catalog.MachineFamily{
			{Name: "n2", Description: "second generation general purpose"},
			{Name: "e2", Description: "cost optimized"},
			{Name: "m3", Description: "memory optimized"},
		},
		testMachines(),
		[]catalog.DiskTypeSpec{
			pdStandardSpec(),
			pdBalancedSpec(),
			pdSSDSpec(),
			localSSDSpec(),
			hyperdiskBalancedSpec(),
		},
	)
	return New(newTestLogger(), store, nil, "")
}
