package builtins

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

const (
	cpuSampleWindow = time.Second
	processShown    = 20
)

// MemoryStats is a snapshot of virtual memory.
type MemoryStats struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
}

// ProcessInfo identifies one running process.
type ProcessInfo struct {
	PID  int32
	Name string
}

// SystemStats reports host metrics.
type SystemStats interface {
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)
	Memory(ctx context.Context) (MemoryStats, error)
	// Processes returns the readable processes and the total number seen,
	// including ones that vanished or denied access.
	Processes(ctx context.Context) ([]ProcessInfo, int, error)
}

// HostStats reads metrics from the local machine.
type HostStats struct{}

var _ SystemStats = HostStats{}

func (HostStats) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, errors.New("no cpu samples")
	}
	return pcts[0], nil
}

func (HostStats) Memory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, err
	}
	return MemoryStats{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (HostStats) Processes(ctx context.Context) ([]ProcessInfo, int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	procs := make([]ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		p, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		procs = append(procs, ProcessInfo{PID: pid, Name: name})
	}
	return procs, len(pids), nil
}

type sysHandlers struct {
	stats SystemStats
}

func (s sysHandlers) cpu(ctx context.Context, _ *Env, _ []string) result.Result {
	pct, err := s.stats.CPUPercent(ctx, cpuSampleWindow)
	if err != nil {
		return result.Fail(result.CodeGenericIO, "cpu: error getting CPU usage: %v", err)
	}
	return result.OK(fmt.Sprintf("CPU Usage: %.1f%%", pct))
}

func (s sysHandlers) memory(ctx context.Context, _ *Env, _ []string) result.Result {
	m, err := s.stats.Memory(ctx)
	if err != nil {
		return result.Fail(result.CodeGenericIO, "mem: error getting memory usage: %v", err)
	}
	return result.OK(fmt.Sprintf("Memory Usage: %.1f%%\nTotal: %s | Available: %s | Used: %s",
		m.UsedPercent, formatBytes(m.Total), formatBytes(m.Available), formatBytes(m.Used)))
}

func (s sysHandlers) processes(ctx context.Context, _ *Env, _ []string) result.Result {
	procs, total, err := s.stats.Processes(ctx)
	if err != nil {
		return result.Fail(result.CodeGenericIO, "ps: error getting process list: %v", err)
	}

	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })

	var b strings.Builder
	fmt.Fprintf(&b, "Total Processes: %d\n", total)
	fmt.Fprintf(&b, "Showing top %d:\n", processShown)
	b.WriteString("PID      Name\n")
	b.WriteString(strings.Repeat("-", 30))

	for _, p := range procs[:min(len(procs), processShown)] {
		fmt.Fprintf(&b, "\n%-8d %s", p.PID, p.Name)
	}
	if total > processShown {
		fmt.Fprintf(&b, "\n... and %d more processes", total-processShown)
	}
	return result.OK(b.String())
}

// formatBytes picks the largest unit that keeps the value under 1024.
func formatBytes(n uint64) string {
	v := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if v < 1024 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f PB", v)
}
