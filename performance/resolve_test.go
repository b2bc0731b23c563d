package performance

import (
	"testing"

	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func machineByName(t *testing.T, svc *Service, name string) catalog.MachineLimits {
	t.Helper()
	m, err := svc.catalog.MachineType(name)
	require.NoError(t, err)
	return m
}

func TestResolveIopsDiskBound(t *testing.T) {
	m := catalog.MachineLimits{ReadIopsLimit: 15000, WriteIopsLimit: 15000,
		ReadThroughputLimitMbps: 240, WriteThroughputLimitMbps: 240, NetworkThroughputMbps: 1250}
	d := DiskPerformance{
		ReadIops:  fixed(3600),
		WriteIops: fixed(3600),
	}

	eff := Resolve(m, d)
	assert.Equal(t, 3600.0, eff.ReadIops.Value)
	assert.Equal(t, BottleneckDisk, eff.ReadIops.Bottleneck)
	assert.False(t, eff.ReadIops.OverProvisioned)
}

func TestResolveIopsTieIsMachineBound(t *testing.T) {
	m := catalog.MachineLimits{ReadIopsLimit: 15000, NetworkThroughputMbps: 1250}
	d := DiskPerformance{ReadIops: fixed(15000)}

	eff := Resolve(m, d)
	assert.Equal(t, 15000.0, eff.ReadIops.Value)
	assert.Equal(t, BottleneckMachine, eff.ReadIops.Bottleneck)
	assert.False(t, eff.ReadIops.OverProvisioned)

	d.ReadIops = fixed(15001)
	eff = Resolve(m, d)
	assert.Equal(t, BottleneckMachine, eff.ReadIops.Bottleneck)
	assert.True(t, eff.ReadIops.OverProvisioned)
}

func TestResolveIopsNeverNetworkBound(t *testing.T) {
	// network far below everything else must not influence IOPS
	m := catalog.MachineLimits{ReadIopsLimit: 80000, NetworkThroughputMbps: 1}
	d := DiskPerformance{ReadIops: fixed(100000)}

	eff := Resolve(m, d)
	assert.Equal(t, 80000.0, eff.ReadIops.Value)
	assert.Equal(t, BottleneckMachine, eff.ReadIops.Bottleneck)
}

func TestResolveThroughputNetworkBound(t *testing.T) {
	m := catalog.MachineLimits{
		ReadThroughputLimitMbps:  1200,
		WriteThroughputLimitMbps: 1200,
		NetworkThroughputMbps:    500,
	}
	d := DiskPerformance{ReadThroughputMbps: fixed(1200), WriteThroughputMbps: fixed(800)}

	eff := Resolve(m, d)
	assert.Equal(t, 500.0, eff.ReadThroughputMbps.Value)
	assert.Equal(t, BottleneckNetwork, eff.ReadThroughputMbps.Bottleneck)
	assert.Equal(t, 500.0, eff.WriteThroughputMbps.Value)
	assert.Equal(t, BottleneckNetwork, eff.WriteThroughputMbps.Bottleneck)
}

func TestResolveThroughputTiePriority(t *testing.T) {
	// disk wins a three-way tie
	m := catalog.MachineLimits{ReadThroughputLimitMbps: 800, NetworkThroughputMbps: 800}
	d := DiskPerformance{ReadThroughputMbps: fixed(800)}
	eff := Resolve(m, d)
	assert.Equal(t, BottleneckDisk, eff.ReadThroughputMbps.Bottleneck)

	// network beats machine when the disk is above both
	m = catalog.MachineLimits{ReadThroughputLimitMbps: 800, NetworkThroughputMbps: 800}
	d = DiskPerformance{ReadThroughputMbps: fixed(1000)}
	eff = Resolve(m, d)
	assert.Equal(t, BottleneckNetwork, eff.ReadThroughputMbps.Bottleneck)

	// machine is blamed only when strictly the lowest
	m = catalog.MachineLimits{ReadThroughputLimitMbps: 700, NetworkThroughputMbps: 800}
	eff = Resolve(m, d)
	assert.Equal(t, BottleneckMachine, eff.ReadThroughputMbps.Bottleneck)
}

func TestResolveOverProvisionedIgnoresNetwork(t *testing.T) {
	// disk exceeds the machine limit while the network is the delivered
	// bottleneck: the flag still fires
	m := catalog.MachineLimits{ReadThroughputLimitMbps: 1000, NetworkThroughputMbps: 500}
	d := DiskPerformance{ReadThroughputMbps: fixed(1200)}

	eff := Resolve(m, d)
	assert.Equal(t, BottleneckNetwork, eff.ReadThroughputMbps.Bottleneck)
	assert.True(t, eff.ReadThroughputMbps.OverProvisioned)

	// disk below the machine limit never flags, whatever the network does
	d = DiskPerformance{ReadThroughputMbps: fixed(900)}
	eff = Resolve(m, d)
	assert.False(t, eff.ReadThroughputMbps.OverProvisioned)
}

func TestCalculateEndToEnd(t *testing.T) {
	svc := newTestService()

	a, err := svc.Calculate("n2-standard-4", []DiskSpec{
		{DiskType: "pd-balanced", SizeGb: 100},
	})
	require.NoError(t, err)

	// 3600 IOPS is below the 15000 machine limit
	assert.Equal(t, 3600.0, a.Effective.ReadIops.Value)
	assert.Equal(t, BottleneckDisk, a.Effective.ReadIops.Bottleneck)

	// scaling the disk up flips the bottleneck to the machine
	a, err = svc.Calculate("n2-standard-4", []DiskSpec{
		{DiskType: "pd-balanced", SizeGb: 5000},
	})
	require.NoError(t, err)
	assert.Equal(t, 15000.0, a.Effective.ReadIops.Value)
	assert.Equal(t, BottleneckMachine, a.Effective.ReadIops.Bottleneck)
	assert.True(t, a.Effective.ReadIops.OverProvisioned)
}

func TestCalculateUnknownMachineType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Calculate("n2-standard-512", []DiskSpec{{DiskType: "pd-ssd", SizeGb: 100}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "n2-standard-512")
}

func TestCalculateResolvesEnvelopeAtUpperBound(t *testing.T) {
	svc := newTestService()
	m := machineByName(t, svc, "m3-megamem-128")

	a, err := svc.Calculate(m.Name, []DiskSpec{
		{DiskType: "hyperdisk-balanced", SizeGb: 1000},
	})
	require.NoError(t, err)

	// envelope max 160000 exceeds the 80000 machine limit
	assert.Equal(t, 80000.0, a.Effective.ReadIops.Value)
	assert.Equal(t, BottleneckMachine, a.Effective.ReadIops.Bottleneck)
	assert.True(t, a.Effective.ReadIops.OverProvisioned)
	assert.True(t, a.Aggregate.Provisioned)
}
