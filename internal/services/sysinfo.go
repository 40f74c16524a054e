package services

import (
	"context"
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemMemory struct {
	Total   uint64  `json:"total"`
	Used    uint64  `json:"used"`
	Percent float64 `json:"percent"`
}

// SystemInfo feeds the read-only system panel. The JSON keys match what
// the page already binds to; the version field carries the Go runtime
// version under the legacy key.
type SystemInfo struct {
	System         string       `json:"system"`
	Processor      string       `json:"processor"`
	RuntimeVersion string       `json:"python_version"`
	Memory         SystemMemory `json:"memory"`
}

type SystemInfoService interface {
	Read(ctx context.Context) SystemInfo
}

type systemInfoService struct{}

func NewSystemInfoService() SystemInfoService {
	return &systemInfoService{}
}

// Read gathers host, cpu and memory readings. Any failure substitutes
// the fixed placeholder set; this path never errors and never retries.
func (s *systemInfoService) Read(ctx context.Context) SystemInfo {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to read host info: %v\n", err)
		return DefaultSystemInfo()
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to read memory info: %v\n", err)
		return DefaultSystemInfo()
	}

	processor := ""
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		processor = cpus[0].ModelName
	}
	if processor == "" {
		processor = runtime.GOARCH
	}

	return SystemInfo{
		System:         hostInfo.Platform,
		Processor:      processor,
		RuntimeVersion: runtime.Version(),
		Memory: SystemMemory{
			Total:   vm.Total,
			Used:    vm.Used,
			Percent: vm.UsedPercent,
		},
	}
}

// DefaultSystemInfo is the placeholder set shown when readings fail.
func DefaultSystemInfo() SystemInfo {
	const gib = 1024 * 1024 * 1024
	return SystemInfo{
		System:         "macOS",
		Processor:      "Apple Silicon",
		RuntimeVersion: "3.11.2",
		Memory: SystemMemory{
			Total:   32 * gib,
			Used:    16 * gib,
			Percent: 50,
		},
	}
}
