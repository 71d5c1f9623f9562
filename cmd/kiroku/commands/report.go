package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yukikurage/kiroku/internal/metrics"
	"github.com/yukikurage/kiroku/internal/report"
	"github.com/yukikurage/kiroku/internal/repository"
	"github.com/yukikurage/kiroku/internal/services"
	"github.com/yukikurage/kiroku/internal/symptom"
	"gorm.io/gorm"
)

// ErrUserRequired is returned when --user is not set.
var ErrUserRequired = errors.New("user is required (use --user)")

// NewReportCommand creates the report subcommand.
func NewReportCommand() *cobra.Command {
	var username, start, end string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a user's symptom report for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" {
				return ErrUserRequired
			}

			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			user, err := repository.NewUserRepository(a.db).FindByUsername(ctx, username)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", services.ErrUserNotFound, username)
				}
				return err
			}

			reportService := services.NewReportService(repository.NewRecordRepository(a.db), a.cfg.Location, a.logger, metrics.New())
			rep, err := reportService.BuildReport(ctx, user.ID, start, end)
			if err != nil {
				return err
			}

			writeReportTable(cmd.OutOrStdout(), *rep)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "username whose records are reported")
	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")

	return cmd
}

// writeReportTable prints one row per record: its chart label, numbness and
// the four stiffness regions.
func writeReportTable(w io.Writer, rep report.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s - %s", rep.Range.StartDate, rep.Range.EndDate))

	header := table.Row{"time", "numbness"}
	for _, r := range symptom.Regions {
		header = append(header, string(r))
	}
	header = append(header, "memo")
	tbl.AppendHeader(header)

	s := rep.Series
	for i := 0; i < s.Len(); i++ {
		row := table.Row{s.Labels[i], s.NumbnessData[i]}
		for _, r := range symptom.Regions {
			row = append(row, s.StiffnessData(r)[i])
		}
		row = append(row, rep.Entries[i].Record.Memo)
		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d records", s.Len())})
	tbl.Render()
}
