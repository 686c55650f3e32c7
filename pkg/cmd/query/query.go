package query

import (
	"github.com/spf13/cobra"
)

func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "analytical queries on session data",
	}

	cmd.AddCommand(NewLaptimeByEventCmd())
	cmd.AddCommand(NewLaptimeByCompoundCmd())
	cmd.AddCommand(NewSectorTimesCmd())
	cmd.AddCommand(NewPositionsGainedCmd())
	cmd.AddCommand(NewRainfallCmd())
	cmd.AddCommand(NewStandingsCmd())
	cmd.AddCommand(NewTeamStandingsCmd())
	cmd.AddCommand(NewTeamRanksCmd())
	cmd.AddCommand(NewCircuitsCmd())
	cmd.AddCommand(NewPointsPivotCmd())
	cmd.AddCommand(NewSessionsCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewCircuitResultsCmd())
	cmd.AddCommand(NewPositionPivotCmd())
	cmd.AddCommand(NewSessionLapsCmd())
	cmd.AddCommand(NewLapProfileCmd())
	cmd.AddCommand(NewLapTelemetryCmd())
	cmd.AddCommand(NewCornersCmd())

	return cmd
}
