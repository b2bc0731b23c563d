package model

import (
	"strings"

	"gorm.io/gorm"
)

type MachineType struct {
	gorm.Model

	// Basic fields
	Name          string `gorm:"index"`
	MachineFamily string `gorm:"index"`

	GuestCpus   int64
	MemoryMb    int64
	CpuPlatform string
	Description string

	// Per-VM disk I/O ceilings.
	ReadIopsLimit            float64
	WriteIopsLimit           float64
	ReadThroughputLimitMbps  float64
	WriteThroughputLimitMbps float64

	NetworkBandwidthGbps float64
}

func (m *MachineType) PopulateFamily() {
	m.MachineFamily = strings.ToLower(strings.Split(m.Name, "-")[0])
}
