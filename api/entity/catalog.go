package entity

import "github.com/gokulr94/gcp-performance-analyzer/catalog"

type MachineFamily struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DiskType struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	MinSizeGb   int64  `json:"minSizeGb"`
	MaxSizeGb   int64  `json:"maxSizeGb"`
	Description string `json:"description,omitempty"`

	ProvisionedIopsMin           float64 `json:"provisionedIopsMin,omitempty"`
	ProvisionedIopsMax           float64 `json:"provisionedIopsMax,omitempty"`
	ProvisionedThroughputMinMbps float64 `json:"provisionedThroughputMinMbps,omitempty"`
	ProvisionedThroughputMaxMbps float64 `json:"provisionedThroughputMaxMbps,omitempty"`
}

func DiskTypeFromCatalog(d catalog.DiskTypeSpec) DiskType {
	return DiskType{
		Name:        d.Name,
		Category:    string(d.Category),
		MinSizeGb:   d.MinSizeGb,
		MaxSizeGb:   d.MaxSizeGb,
		Description: d.Description,

		ProvisionedIopsMin:           d.ProvisionedIopsMin,
		ProvisionedIopsMax:           d.ProvisionedIopsMax,
		ProvisionedThroughputMinMbps: d.ProvisionedThroughputMinMbps,
		ProvisionedThroughputMaxMbps: d.ProvisionedThroughputMaxMbps,
	}
}

type ExplainResponse struct {
	MachineType string `json:"machineType"`
	Explanation string `json:"explanation"`
}
