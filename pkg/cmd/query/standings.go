package query

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

var year int

func NewPositionsGainedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gains",
		Short: "average positions gained from grid to finish per driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showPositionsGained(cmd.Context())
		},
	}
	return cmd
}

func NewStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "championship standings computed from race results",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showStandings(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one season (0: all)")
	return cmd
}

func NewTeamStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team-standings",
		Short: "team standings computed from race results",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showTeamStandings(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one season (0: all)")
	return cmd
}

func NewTeamRanksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team-ranks",
		Short: "best rank each team reached in any single session",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showTeamRanks(cmd.Context())
		},
	}
	return cmd
}

func NewCircuitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "circuits driver",
		Short: "race performance of a driver per circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showCircuits(cmd.Context(), args[0])
		},
	}
	return cmd
}

func NewPointsPivotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points-pivot",
		Short: "race points per driver and season",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger()
			return showPointsPivot(cmd.Context())
		},
	}
	return cmd
}

func showPositionsGained(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.AvgPositionsGained()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Driver, r.Name, fmtValue(r.AvgGain, 2), strconv.Itoa(r.Races),
		})
	}
	renderTable([]string{"Driver", "Name", "Avg Gain", "Races"}, out)
	return nil
}

func showStandings(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.SeasonStandings(year)
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			strconv.Itoa(i + 1),
			r.Driver, r.Name, r.Team,
			r.Points.String(),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Podiums),
			strconv.Itoa(r.Races),
			fmtValue(r.AvgPosition, 2),
		})
	}
	renderTable(
		[]string{"#", "Driver", "Name", "Team", "Points", "Wins", "Podiums", "Races", "Avg Pos"},
		out)
	return nil
}

func showTeamStandings(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.TeamStandings(year)
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		out = append(out, []string{
			strconv.Itoa(i + 1),
			r.Team,
			r.Points.String(),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Races),
			fmtValue(r.AvgPosition, 2),
		})
	}
	renderTable([]string{"#", "Team", "Points", "Wins", "Races", "Avg Pos"}, out)
	return nil
}

func showTeamRanks(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.BestTeamRanks()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Team, strconv.Itoa(r.BestRank)})
	}
	renderTable([]string{"Team", "Best Rank"}, out)
	return nil
}

func showCircuits(ctx context.Context, driver string) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.CircuitPerformance(driver)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Circuit,
			strconv.Itoa(r.Visits),
			fmtValue(r.AvgFinish, 2),
			strconv.Itoa(r.Wins),
			r.Points.String(),
		})
	}
	renderTable([]string{"Circuit", "Visits", "Avg Finish", "Wins", "Points"}, out)
	return nil
}

func showPointsPivot(ctx context.Context) error {
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	rows := a.PointsByDriverAndYear()
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Driver, strconv.Itoa(r.Year), r.Points.String()})
	}
	renderTable([]string{"Driver", "Year", "Points"}, out)
	return nil
}
