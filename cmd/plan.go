package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sonoplan/internal/config"
	"sonoplan/internal/schedule"
	"sonoplan/pkg/gestation"
	"sonoplan/pkg/logger"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint: gochecknoglobals
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// renderPlan writes the due date and one table row per scan.
func renderPlan(w io.Writer, calc *schedule.Calculation) error {
	rows := make([][]string, 0, len(calc.Scans))
	for _, s := range calc.Scans {
		rows = append(rows, []string{s.ScanName, s.WeekRange, s.CalculatedDate, s.DateRange})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scan", "Weeks", "Recommended", "Window").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		titleStyle.Render("Estimated due date: "+calc.DueDate),
		faintStyle.Render("LMP "+calc.LMP+", "+strconv.Itoa(len(calc.Scans))+" scans"),
		t.Render())
	if err != nil {
		return fmt.Errorf("could not write plan: %w", err)
	}

	return nil
}

// calculateOffline computes a plan for lmp against the built-in scan types.
func calculateOffline(lmp string) (*schedule.Calculation, error) {
	d, err := gestation.ParseDate(lmp)
	if err != nil {
		return nil, fmt.Errorf("could not parse --lmp: %w", err)
	}

	return &schedule.Calculation{
		LMP:     gestation.FormatISODate(d),
		DueDate: gestation.FormatDate(gestation.DueDate(d)),
		Scans:   gestation.AllScans(d, gestation.StandardScans()),
	}, nil
}

// planCommand constructs the 'plan' subcommand that prints the due date and
// recommended scans for an LMP. The built-in scan types are used unless
// --from-db is set, in which case the configured scan types are loaded.
func planCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Prints the due date and recommended scans for an LMP date",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			lmp, _ := cmd.Flags().GetString("lmp")
			fromDB, _ := cmd.Flags().GetBool("from-db")

			var (
				calc *schedule.Calculation
				err  error
			)
			if fromDB {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				calc, err = schedule.New(strg, schedule.NewOptions(cfg)).Calculate(ctx, lmp, nil)
			} else {
				calc, err = calculateOffline(lmp)
			}
			if err != nil {
				logger.Fatal(ctx, "could not calculate plan", zap.Error(err))
			}

			if err := renderPlan(os.Stdout, calc); err != nil {
				logger.Fatal(ctx, "could not render plan", zap.Error(err))
			}
		},
	}

	cmd.Flags().String("lmp", "", "First day of the last menstrual period (yyyy-MM-dd)")
	cmd.Flags().Bool("from-db", false, "Use the scan types stored in the database")
	_ = cmd.MarkFlagRequired("lmp")

	return cmd
}
