package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(
		[]MachineFamily{
			{Name: "n2", Description: "second generation general purpose"},
			{Name: "c2", Description: "compute optimized"},
		},
		[]MachineLimits{
			{Name: "n2-standard-4", MachineFamily: "n2", GuestCpus: 4, NetworkBandwidthGbps: 10},
			{Name: "n2-standard-16", MachineFamily: "n2", GuestCpus: 16, NetworkBandwidthGbps: 32},
			{Name: "c2-standard-16", MachineFamily: "c2", GuestCpus: 16, NetworkBandwidthGbps: 32},
		},
		[]DiskTypeSpec{
			{Name: "pd-balanced", Category: DiskCategoryLinear, MinSizeGb: 4, MaxSizeGb: 65536},
			{Name: "local-ssd", Category: DiskCategoryLocalSSD, MinSizeGb: 1, MaxSizeGb: 9000},
		},
	)
}

func TestStoreDerivesNetworkThroughput(t *testing.T) {
	s := newTestStore()

	m, err := s.MachineType("n2-standard-4")
	require.NoError(t, err)
	assert.Equal(t, 1250.0, m.NetworkThroughputMbps)

	m, err = s.MachineType("n2-standard-16")
	require.NoError(t, err)
	assert.Equal(t, 4000.0, m.NetworkThroughputMbps)
}

func TestStoreLookupErrors(t *testing.T) {
	s := newTestStore()

	_, err := s.MachineType("a2-highgpu-1g")
	var mtErr UnknownMachineTypeError
	require.True(t, errors.As(err, &mtErr))
	assert.Equal(t, "a2-highgpu-1g", mtErr.MachineType)

	_, err = s.DiskType("pd-imaginary")
	var dtErr UnknownDiskTypeError
	require.True(t, errors.As(err, &dtErr))
	assert.Equal(t, "pd-imaginary", dtErr.DiskType)

	_, err = s.MachineTypesByFamily("t2a")
	var famErr UnknownMachineFamilyError
	require.True(t, errors.As(err, &famErr))
}

func TestStoreListingsKeepOrder(t *testing.T) {
	s := newTestStore()

	machines := s.MachineTypes()
	require.Len(t, machines, 3)
	assert.Equal(t, "n2-standard-4", machines[0].Name)
	assert.Equal(t, "c2-standard-16", machines[2].Name)

	byFamily, err := s.MachineTypesByFamily("n2")
	require.NoError(t, err)
	require.Len(t, byFamily, 2)
	assert.Equal(t, "n2-standard-4", byFamily[0].Name)

	disks := s.DiskTypes()
	require.Len(t, disks, 2)
	assert.Equal(t, "pd-balanced", disks[0].Name)

	families := s.Families()
	require.Len(t, families, 2)
	assert.Equal(t, "n2", families[0].Name)
}

func TestStoreEmpty(t *testing.T) {
	assert.True(t, New(nil, nil, nil).Empty())
	assert.False(t, newTestStore().Empty())
}
