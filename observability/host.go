package observability

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"
)

// HostSnapshot captures the hardware and OS facts that shape timer
// behavior: the effective resolution floor and the QPC characteristics are
// both platform- and CPU-dependent.
type HostSnapshot struct {
	Hostname      string
	Platform      string
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
}

func CaptureHostSnapshot(ctx context.Context) (HostSnapshot, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostSnapshot{}, err
	}
	snap := HostSnapshot{
		Hostname: info.Hostname,
		Platform: info.Platform + " " + info.PlatformVersion,
		// Sane defaults when the per-core probes fail below.
		PhysicalCores: runtime.NumCPU(),
		LogicalCores:  runtime.NumCPU(),
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		snap.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil && n > 0 {
		snap.PhysicalCores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		snap.LogicalCores = n
	}
	return snap, nil
}

func (snap HostSnapshot) Fields() []zap.Field {
	return []zap.Field{
		zap.String("hostname", snap.Hostname),
		zap.String("platform", snap.Platform),
		zap.String("cpu", snap.CPUModel),
		zap.Int("physicalCores", snap.PhysicalCores),
		zap.Int("logicalCores", snap.LogicalCores),
	}
}
