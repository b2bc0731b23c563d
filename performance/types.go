package performance

// Metric is a closed interval over a single performance figure. Size-derived
// disks collapse to a point (Min == Max); provisioned disks keep the full
// envelope between their minimum and maximum provisionable values.
type Metric struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func fixed(v float64) Metric {
	return Metric{Min: v, Max: v}
}

func (m Metric) add(o Metric) Metric {
	return Metric{Min: m.Min + o.Min, Max: m.Max + o.Max}
}

// DiskPerformance is what a disk (or a set of disks summed together) can
// deliver before any machine or network limit is applied.
type DiskPerformance struct {
	ReadIops            Metric `json:"readIops"`
	WriteIops           Metric `json:"writeIops"`
	ReadThroughputMbps  Metric `json:"readThroughputMbps"`
	WriteThroughputMbps Metric `json:"writeThroughputMbps"`

	// Provisioned marks figures that depend on a purchase decision rather
	// than on disk size alone.
	Provisioned bool `json:"provisioned"`
}

func (d DiskPerformance) add(o DiskPerformance) DiskPerformance {
	return DiskPerformance{
		ReadIops:            d.ReadIops.add(o.ReadIops),
		WriteIops:           d.WriteIops.add(o.WriteIops),
		ReadThroughputMbps:  d.ReadThroughputMbps.add(o.ReadThroughputMbps),
		WriteThroughputMbps: d.WriteThroughputMbps.add(o.WriteThroughputMbps),
		Provisioned:         d.Provisioned || o.Provisioned,
	}
}

type BottleneckSource string

const (
	BottleneckMachine BottleneckSource = "machine"
	BottleneckDisk    BottleneckSource = "disk"
	BottleneckNetwork BottleneckSource = "network"
)

// EffectiveMetric is the delivered figure for one metric after the machine,
// disk and network limits have been intersected.
type EffectiveMetric struct {
	Value           float64          `json:"value"`
	Bottleneck      BottleneckSource `json:"bottleneck"`
	OverProvisioned bool             `json:"overProvisioned"`
}

type EffectivePerformance struct {
	ReadIops            EffectiveMetric `json:"readIops"`
	WriteIops           EffectiveMetric `json:"writeIops"`
	ReadThroughputMbps  EffectiveMetric `json:"readThroughputMbps"`
	WriteThroughputMbps EffectiveMetric `json:"writeThroughputMbps"`
}

// DiskSpec names one attached disk in a calculation request.
type DiskSpec struct {
	DiskType string
	SizeGb   int64
}

// DiskResult pairs a requested disk with its computed performance.
type DiskResult struct {
	DiskType    string          `json:"diskType"`
	SizeGb      int64           `json:"sizeGb"`
	Performance DiskPerformance `json:"performance"`
}
