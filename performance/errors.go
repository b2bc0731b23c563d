package performance

import "fmt"

type InvalidDiskSizeError struct {
	DiskType  string
	SizeGb    int64
	MinSizeGb int64
	MaxSizeGb int64
}

func (e InvalidDiskSizeError) Error() string {
	return fmt.Sprintf("invalid size %d GB for disk type %s: supported range is [%d, %d] GB",
		e.SizeGb, e.DiskType, e.MinSizeGb, e.MaxSizeGb)
}

type EmptyDiskListError struct{}

func (e EmptyDiskListError) Error() string {
	return "at least one disk is required"
}
