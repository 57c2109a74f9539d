package health

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemProbe_Collect(t *testing.T) {
	p := systemProbe{
		loadAvg:  func(context.Context) (*load.AvgStat, error) { return &load.AvgStat{Load1: 0.75}, nil },
		memStats: func(context.Context) (*mem.VirtualMemoryStat, error) { return &mem.VirtualMemoryStat{UsedPercent: 42.5}, nil },
		cpuCores: func() int { return 4 },
	}

	stats := p.collect(context.Background())

	assert.Equal(t, 4, stats.CPUCores)
	require.NotNil(t, stats.Load1)
	assert.InDelta(t, 0.75, *stats.Load1, 1e-9)
	require.NotNil(t, stats.MemoryPercent)
	assert.InDelta(t, 42.5, *stats.MemoryPercent, 1e-9)
	assert.Empty(t, stats.Errors)
}

func TestSystemProbe_CollectPartial(t *testing.T) {
	p := systemProbe{
		loadAvg:  func(context.Context) (*load.AvgStat, error) { return nil, errors.New("not implemented yet") },
		memStats: func(context.Context) (*mem.VirtualMemoryStat, error) { return &mem.VirtualMemoryStat{UsedPercent: 10}, nil },
		cpuCores: func() int { return 1 },
	}

	stats := p.collect(context.Background())

	assert.Nil(t, stats.Load1)
	assert.NotNil(t, stats.MemoryPercent)
	assert.Equal(t, []string{"load: not implemented yet"}, stats.Errors)
}
