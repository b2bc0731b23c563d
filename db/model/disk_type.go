package model

import (
	"gorm.io/gorm"
)

type DiskCategory string

const (
	DiskCategoryLinear      DiskCategory = "linear"
	DiskCategoryLocalSSD    DiskCategory = "local-ssd"
	DiskCategoryProvisioned DiskCategory = "provisioned"
)

type DiskType struct {
	gorm.Model

	// Basic fields
	Name     string       `gorm:"index"`
	Category DiskCategory `gorm:"index"`

	MinSizeGb int64
	MaxSizeGb int64

	// Linear-capped formula parameters. Throughput has no baseline term.
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

	// Local SSD device model.
	DeviceSizeGb              int64
	DeviceReadIops            float64
	DeviceWriteIops           float64
	DeviceReadThroughputMbps  float64
	DeviceWriteThroughputMbps float64

	// Provisioned (hyperdisk) envelope.
	ProvisionedIopsMin           float64
	ProvisionedIopsMax           float64
	ProvisionedThroughputMinMbps float64
	ProvisionedThroughputMaxMbps float64

	Description string
}
