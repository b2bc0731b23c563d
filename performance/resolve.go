package performance

import "github.com/gokulr94/gcp-performance-analyzer/catalog"

// Resolve intersects aggregate disk capability with the machine's per-VM
// limits and, for throughput, the machine's network bandwidth. Provisioned
// envelopes are resolved at their upper bound.
//
// IOPS never crosses the network path, so only machine and disk compete; a
// disk exactly at the machine limit counts as machine-bound. For throughput
// ties the blame order is disk, then network, then machine. OverProvisioned
// compares disk capability against the machine limit only, so a disk can be
// flagged even when the network is the delivered bottleneck.
func Resolve(m catalog.MachineLimits, d DiskPerformance) EffectivePerformance {
	return EffectivePerformance{
		ReadIops:            resolveIops(m.ReadIopsLimit, d.ReadIops.Max),
		WriteIops:           resolveIops(m.WriteIopsLimit, d.WriteIops.Max),
		ReadThroughputMbps:  resolveThroughput(m.ReadThroughputLimitMbps, d.ReadThroughputMbps.Max, m.NetworkThroughputMbps),
		WriteThroughputMbps: resolveThroughput(m.WriteThroughputLimitMbps, d.WriteThroughputMbps.Max, m.NetworkThroughputMbps),
	}
}

func resolveIops(machineLimit, disk float64) EffectiveMetric {
	if disk < machineLimit {
		return EffectiveMetric{Value: disk, Bottleneck: BottleneckDisk}
	}
	return EffectiveMetric{
		Value:           machineLimit,
		Bottleneck:      BottleneckMachine,
		OverProvisioned: disk > machineLimit,
	}
}

func resolveThroughput(machineLimit, disk, network float64) EffectiveMetric {
	value := min(machineLimit, disk, network)

	var bottleneck BottleneckSource
	switch {
	case disk == value:
		bottleneck = BottleneckDisk
	case network == value:
		bottleneck = BottleneckNetwork
	default:
		bottleneck = BottleneckMachine
	}
	return EffectiveMetric{
		Value:           value,
		Bottleneck:      bottleneck,
		OverProvisioned: disk > machineLimit,
	}
}
