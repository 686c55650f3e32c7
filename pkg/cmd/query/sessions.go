package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-analysis-go/pkg/analysis"
)

var (
	eventArg   string
	sessionArg string
)

func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions driver",
		Short: "all session results of a driver, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showSessions(cmd.Context(), args[0])
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one season (0: all)")
	return cmd
}

func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare driver...",
		Short: "compare results of drivers in one session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showCompare(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&eventArg, "event", "", "event name fragment")
	cmd.Flags().StringVar(&sessionArg, "session", "", "session name fragment")
	return cmd
}

func NewCircuitResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circuit-results circuit",
		Short: "all session results held at a circuit, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showCircuitResults(cmd.Context(), args[0])
		},
	}
	return cmd
}

func NewPositionPivotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position-pivot circuit",
		Short: "finish positions per driver and session at a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showPositionPivot(cmd.Context(), args[0])
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one season (0: all)")
	return cmd
}

func NewSessionLapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laps driver",
		Short: "individual laps of a driver in one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showSessionLaps(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringVar(&eventArg, "event", "", "event name fragment")
	cmd.Flags().StringVar(&sessionArg, "session", "", "session name fragment")
	return cmd
}

func showSessions(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.DriverSessions(driver, year)
	renderSessionResults(rows)
	return nil
}

func showCompare(ctx context.Context, drivers []string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.CompareDrivers(drivers, eventArg, sessionArg)
	renderSessionResults(rows)
	return nil
}

func showCircuitResults(ctx context.Context, circuit string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.CircuitResults(circuit)
	renderSessionResults(rows)
	return nil
}

func showPositionPivot(ctx context.Context, circuit string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.DriverSessionPositions(circuit, year)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Driver, r.SessionName, strconv.Itoa(r.Position),
		})
	}
	renderTable([]string{"Driver", "Session", "Pos"}, out)
	return nil
}

func showSessionLaps(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows, skipped := a.SessionLaps(driver, eventArg, sessionArg)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		pb := ""
		if r.PersonalBest {
			pb = "*"
		}
		out = append(out, []string{
			strconv.Itoa(r.LapNumber),
			fmtSpan(r.LapTime),
			fmtSpan(r.Sector1),
			fmtSpan(r.Sector2),
			fmtSpan(r.Sector3),
			r.Compound,
			strconv.Itoa(r.TyreLife),
			pb,
			strconv.Itoa(r.Position),
		})
	}
	renderTable(
		[]string{"Lap", "Time (s)", "S1 (s)", "S2 (s)", "S3 (s)", "Compound", "Tyre Life", "PB", "Pos"},
		out)
	if skipped > 0 {
		fmt.Printf("%d malformed duration(s) skipped\n", skipped)
	}
	return nil
}

func renderSessionResults(rows []analysis.SessionResult) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date,
			r.EventName,
			r.SessionName,
			r.Driver,
			r.Team,
			strconv.Itoa(r.Position),
			strconv.Itoa(r.GridPos),
			strconv.FormatFloat(r.Points, 'f', -1, 64),
			strconv.Itoa(r.Laps),
			r.Status,
		})
	}
	renderTable(
		[]string{"Date", "Event", "Session", "Driver", "Team", "Pos", "Grid", "Points", "Laps", "Status"},
		out)
}
