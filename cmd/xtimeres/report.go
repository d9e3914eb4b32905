package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/benz9527/xtimeres/measure"
	"github.com/benz9527/xtimeres/timeres"
	"github.com/benz9527/xtimeres/xlog"
)

// measurer abstracts the sampler for the menu wiring.
type measurer interface {
	Run(iterations int) (*measure.Result, error)
}

func reportSetCustom(w io.Writer, dev timeres.Device, logger *xlog.XLogger) {
	out, err := timeres.Apply(dev, timeres.DefaultTargetMs)
	if err != nil {
		logger.Debug("set custom period rejected", zap.String("error", err.Error()))
		fmt.Fprintln(w, "Failed to set.")
		return
	}
	switch out.Branch {
	case timeres.BranchClampedToMin:
		fmt.Fprintf(w, "System minimum is higher than 1ms (%dms)\n", out.Caps.MinPeriodMs)
		fmt.Fprintf(w, "Setting to system minimum: %dms\n", out.AppliedMs)
	case timeres.BranchClampedToMax:
		fmt.Fprintf(w, "1ms exceeds system maximum (%dms)\n", out.Caps.MaxPeriodMs)
		fmt.Fprintf(w, "Setting to system maximum: %dms\n", out.AppliedMs)
	default:
		fmt.Fprintf(w, "SC set to: %dms\n", out.AppliedMs)
	}
	logger.Debug("timer period applied",
		zap.String("branch", out.Branch.String()),
		zap.Uint32("appliedMs", out.AppliedMs))
}

func reportMeasure(w io.Writer, m measurer, logger *xlog.XLogger) {
	res, err := m.Run(measure.DefaultIterations)
	if err != nil {
		logger.Debug("measurement aborted", zap.String("error", err.Error()))
		// The measurement sentinels carry the user-facing wording.
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprint(w, res)
}

func reportReset(w io.Writer, dev timeres.Device, logger *xlog.XLogger) {
	if err := timeres.ResetToDefault(dev); err != nil {
		logger.Debug("reset to default rejected", zap.String("error", err.Error()))
		fmt.Fprintln(w, "Failed to reset to default")
		return
	}
	fmt.Fprintln(w, "Successfully reset to default (~15.6ms)")
}
