package query

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

var lapNo int

func NewLapProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile driver",
		Short: "per lap telemetry profile of a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showLapProfile(cmd.Context(), args[0])
		},
	}
	return cmd
}

func NewLapTelemetryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telemetry driver",
		Short: "telemetry samples of one lap, ordered by distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showLapTelemetry(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringVar(&eventArg, "event", "", "event name fragment")
	cmd.Flags().StringVar(&sessionArg, "session", "", "session name fragment")
	cmd.Flags().IntVar(&lapNo, "lap", 1, "lap number")
	return cmd
}

func NewCornersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corners driver...",
		Short: "compare average corner speeds between drivers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showCorners(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&eventArg, "event", "", "event name fragment")
	cmd.Flags().StringVar(&sessionArg, "session", "", "session name fragment")
	return cmd
}

func showLapProfile(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.LapProfile(driver)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.LapNumber),
			fmtValue(r.AvgSpeed, 1),
			fmtValue(r.AvgThrottle, 1),
			strconv.Itoa(r.BrakeSamples),
		})
	}
	renderTable([]string{"Lap", "Avg Speed", "Avg Throttle", "Brake Samples"}, out)
	return nil
}

func showLapTelemetry(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	samples := a.LapTelemetry(driver, eventArg, sessionArg, lapNo)
	out := make([][]string, 0, len(samples))
	for _, s := range samples {
		brake := ""
		if s.Brake {
			brake = "x"
		}
		out = append(out, []string{
			strconv.FormatFloat(s.Distance, 'f', 1, 64),
			strconv.FormatFloat(s.Speed, 'f', 1, 64),
			strconv.FormatFloat(s.Throttle, 'f', 1, 64),
			brake,
			strconv.Itoa(s.Gear),
			strconv.FormatFloat(s.RPM, 'f', 0, 64),
			strconv.Itoa(s.DRS),
		})
	}
	renderTable([]string{"Distance", "Speed", "Throttle", "Brake", "Gear", "RPM", "DRS"}, out)
	return nil
}

func showCorners(ctx context.Context, drivers []string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.CornerSpeeds(drivers, eventArg, sessionArg)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Corner),
			r.Driver,
			fmtValue(r.AvgSpeed, 1),
		})
	}
	renderTable([]string{"Corner", "Driver", "Avg Speed"}, out)
	return nil
}
