package performance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSumsDisks(t *testing.T) {
	svc := newTestService()

	total, results, err := svc.Aggregate([]DiskSpec{
		{DiskType: "pd-balanced", SizeGb: 500},
		{DiskType: "pd-ssd", SizeGb: 100},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// pd-balanced 500: 3000+6*500=6000, pd-ssd 100: 6000+30*100=9000
	assert.Equal(t, 15000.0, total.ReadIops.Max)
	assert.Equal(t, 15000.0, total.WriteIops.Max)
	assert.False(t, total.Provisioned)

	assert.Equal(t, 6000.0, results[0].Performance.ReadIops.Max)
	assert.Equal(t, 9000.0, results[1].Performance.ReadIops.Max)
}

func TestAggregateOrderIndependent(t *testing.T) {
	svc := newTestService()

	disks := []DiskSpec{
		{DiskType: "pd-standard", SizeGb: 2000},
		{DiskType: "pd-ssd", SizeGb: 300},
		{DiskType: "hyperdisk-balanced", SizeGb: 1000},
	}
	reversed := []DiskSpec{disks[2], disks[1], disks[0]}

	a, _, err := svc.Aggregate(disks)
	require.NoError(t, err)
	b, _, err := svc.Aggregate(reversed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestAggregateEmptyList(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Aggregate(nil)
	var emptyErr EmptyDiskListError
	require.True(t, errors.As(err, &emptyErr))

	_, _, err = svc.Aggregate([]DiskSpec{})
	require.True(t, errors.As(err, &emptyErr))
}

func TestAggregateProvisionedEnvelope(t *testing.T) {
	svc := newTestService()

	total, _, err := svc.Aggregate([]DiskSpec{
		{DiskType: "hyperdisk-balanced", SizeGb: 100},
		{DiskType: "pd-balanced", SizeGb: 500},
	})
	require.NoError(t, err)

	// bounds sum independently: fixed disks contribute the same value to
	// both ends of the envelope
	assert.True(t, total.Provisioned)
	assert.Equal(t, 3000.0+6000.0, total.ReadIops.Min)
	assert.Equal(t, 160000.0+6000.0, total.ReadIops.Max)
}

func TestAggregateStopsOnBadDisk(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Aggregate([]DiskSpec{
		{DiskType: "pd-balanced", SizeGb: 500},
		{DiskType: "pd-ssd", SizeGb: 2},
	})
	var sizeErr InvalidDiskSizeError
	require.True(t, errors.As(err, &sizeErr))
	assert.Equal(t, "pd-ssd", sizeErr.DiskType)
}
