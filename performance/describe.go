package performance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gokulr94/gcp-performance-analyzer/catalog"
	"github.com/sashabaranov/go-openai"
)

var ErrDescriptionNotConfigured = errors.New("description generation is not configured")

// DescribeAssessment turns an assessment into a short plain-language summary
// via the configured completion model. Callers bound the call with a context
// deadline; a failure here must never fail the calculation itself.
func (s *Service) DescribeAssessment(ctx context.Context, a *Assessment) (string, error) {
	if s.openaiClient == nil {
		return "", ErrDescriptionNotConfigured
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Machine type %s (%d vCPUs, %d MB memory) has per-VM storage limits of %.0f read IOPS, %.0f write IOPS, %.0f MB/s read throughput, %.0f MB/s write throughput and %.1f Gbps network bandwidth.\n",
		a.Machine.Name, a.Machine.GuestCpus, a.Machine.MemoryMb,
		a.Machine.ReadIopsLimit, a.Machine.WriteIopsLimit,
		a.Machine.ReadThroughputLimitMbps, a.Machine.WriteThroughputLimitMbps,
		a.Machine.NetworkBandwidthGbps))
	sb.WriteString(fmt.Sprintf("It has %d attached disk(s):\n", len(a.Disks)))
	for _, d := range a.Disks {
		sb.WriteString(fmt.Sprintf("- %d GB %s capable of %s read IOPS, %s write IOPS, %s MB/s read, %s MB/s write\n",
			d.SizeGb, d.DiskType,
			formatMetric(d.Performance.ReadIops), formatMetric(d.Performance.WriteIops),
			formatMetric(d.Performance.ReadThroughputMbps), formatMetric(d.Performance.WriteThroughputMbps)))
	}
	sb.WriteString(fmt.Sprintf("The effective performance is %.0f read IOPS (%s-bound), %.0f write IOPS (%s-bound), %.0f MB/s read throughput (%s-bound) and %.0f MB/s write throughput (%s-bound).\n",
		a.Effective.ReadIops.Value, a.Effective.ReadIops.Bottleneck,
		a.Effective.WriteIops.Value, a.Effective.WriteIops.Bottleneck,
		a.Effective.ReadThroughputMbps.Value, a.Effective.ReadThroughputMbps.Bottleneck,
		a.Effective.WriteThroughputMbps.Value, a.Effective.WriteThroughputMbps.Bottleneck))
	sb.WriteString("Explain in at most four sentences what limits this configuration's storage performance and whether any disk capability is wasted. Do not repeat the numbers back as a list.")

	return s.complete(ctx, sb.String())
}

// ExplainMachineType produces a short description of a machine type's
// intended workloads and storage characteristics.
func (s *Service) ExplainMachineType(ctx context.Context, m catalog.MachineLimits) (string, error) {
	if s.openaiClient == nil {
		return "", ErrDescriptionNotConfigured
	}

	prompt := fmt.Sprintf("In at most three sentences, describe the Google Cloud machine type %s (family %s, %d vCPUs, %d MB memory, %s platform): which workloads it suits and how its %.0f read IOPS / %.0f MB/s per-VM storage limits and %.1f Gbps network bandwidth shape storage-heavy use.",
		m.Name, m.MachineFamily, m.GuestCpus, m.MemoryMb, m.CpuPlatform,
		m.ReadIopsLimit, m.ReadThroughputLimitMbps, m.NetworkBandwidthGbps)

	return s.complete(ctx, prompt)
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.openaiModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func formatMetric(m Metric) string {
	if m.Min == m.Max {
		return fmt.Sprintf("%.0f", m.Max)
	}
	return fmt.Sprintf("%.0f to %.0f", m.Min, m.Max)
}
