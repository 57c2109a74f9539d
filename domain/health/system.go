package health

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStats is a host snapshot for the debug endpoint.
type SystemStats struct {
	CPUCores      int      `json:"cpu_cores"`
	Load1         *float64 `json:"load_1,omitempty"`
	MemoryPercent *float64 `json:"memory_used_percent,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// systemProbe collects host stats; the fields are swapped out in tests.
type systemProbe struct {
	loadAvg  func(context.Context) (*load.AvgStat, error)
	memStats func(context.Context) (*mem.VirtualMemoryStat, error)
	cpuCores func() int
}

func newSystemProbe() systemProbe {
	return systemProbe{
		loadAvg:  load.AvgWithContext,
		memStats: mem.VirtualMemoryWithContext,
		cpuCores: runtime.NumCPU,
	}
}

// collect never fails; unavailable metrics are reported in Errors.
func (p systemProbe) collect(ctx context.Context) SystemStats {
	stats := SystemStats{CPUCores: p.cpuCores()}

	if l, err := p.loadAvg(ctx); err == nil {
		stats.Load1 = &l.Load1
	} else {
		stats.Errors = append(stats.Errors, "load: "+err.Error())
	}

	if m, err := p.memStats(ctx); err == nil {
		stats.MemoryPercent = &m.UsedPercent
	} else {
		stats.Errors = append(stats.Errors, "memory: "+err.Error())
	}

	return stats
}
