package query

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

var minTyreLife int

func NewLaptimeByEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laptime-by-event driver",
		Short: "average race lap time per event for a driver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showLaptimeByEvent(cmd.Context(), args[0])
		},
	}
	return cmd
}

func NewLaptimeByCompoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laptime-by-compound compound",
		Short: "average race lap time per driver on a tyre compound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showLaptimeByCompound(cmd.Context(), args[0])
		},
	}
	cmd.Flags().IntVar(&minTyreLife,
		"min-tyre-life",
		0,
		"only laps with at least this tyre age (0: no restriction)")
	return cmd
}

func NewSectorTimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sectors",
		Short: "average sector times per driver over all race laps",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showSectorTimes(cmd.Context())
		},
	}
	return cmd
}

func NewRainfallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rainfall [driver]",
		Short: "average race lap times in dry vs wet conditions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			driver := ""
			if len(args) > 0 {
				driver = args[0]
			}
			return showRainfall(cmd.Context(), driver)
		},
	}
	return cmd
}

func showLaptimeByEvent(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows, _ := a.AvgLaptimeByEvent(driver)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.EventName, fmtValue(r.AvgLaptime, 3), strconv.Itoa(r.Laps),
		})
	}
	renderTable([]string{"Event", "Avg Laptime (s)", "Laps"}, out)
	return nil
}

func showLaptimeByCompound(ctx context.Context, compound string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows, _ := a.AvgLaptimeByCompound(compound, minTyreLife)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Driver, r.Name, fmtValue(r.AvgLaptime, 3), strconv.Itoa(r.Laps),
		})
	}
	renderTable([]string{"Driver", "Name", "Avg Laptime (s)", "Laps"}, out)
	return nil
}

func showSectorTimes(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows, _ := a.AvgSectorTimes()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Driver, r.Name,
			fmtValue(r.AvgSector1, 3),
			fmtValue(r.AvgSector2, 3),
			fmtValue(r.AvgSector3, 3),
		})
	}
	renderTable([]string{"Driver", "Name", "S1 (s)", "S2 (s)", "S3 (s)"}, out)
	return nil
}

func showRainfall(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows, _ := a.AvgLaptimeByRainfall(driver)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		cond := "dry"
		if r.Rainfall {
			cond = "wet"
		}
		out = append(out, []string{r.Driver, cond, fmtValue(r.AvgLaptime, 3)})
	}
	renderTable([]string{"Driver", "Conditions", "Avg Laptime (s)"}, out)
	return nil
}
