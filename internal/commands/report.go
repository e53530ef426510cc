package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taltal7719-art/4muluk-cloud-bot/internal/almanac"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/profile"
	"github.com/taltal7719-art/4muluk-cloud-bot/internal/report"
	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/config"
)

var (
	reportDate  string
	reportWeek  bool
	reportBrief bool
	birthDate   string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a day or week report to stdout",
	Long: `Compute a day profile and print the report without starting the bot.

Useful for debugging the aggregation pipeline and for piping reports into
other tools.

Examples:
  4muluk-cloud-bot report                      # Today, full detail
  4muluk-cloud-bot report --date 2025-11-30    # Specific date
  4muluk-cloud-bot report --week               # 7-day summary from today
  4muluk-cloud-bot report --brief              # Without advisory blocks`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportDate, "date", "d", "", "Date in YYYY-MM-DD format (default today)")
	reportCmd.Flags().BoolVarP(&reportWeek, "week", "w", false, "Render the 7-day summary instead of one day")
	reportCmd.Flags().BoolVar(&reportBrief, "brief", false, "Brief day view without advisory blocks")
	reportCmd.Flags().StringVar(&birthDate, "birth-date", "1972-11-10", "Birth date for biorhythm calculation")
}

func runReport(cmd *cobra.Command, args []string) error {
	birth, err := time.Parse(config.DateLayout, birthDate)
	if err != nil {
		return fmt.Errorf("invalid --birth-date %q: expected YYYY-MM-DD", birthDate)
	}

	date := time.Now()
	if reportDate != "" {
		date, err = time.Parse(config.DateLayout, reportDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", reportDate)
		}
	}
	year, month, day := date.Date()
	date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	agg := profile.NewAggregator(almanac.NewEngine(), birth, profile.Options{})
	formatter := report.NewFormatter()

	var doc report.Document
	if reportWeek {
		profiles, err := agg.AggregateWeek(date)
		if err != nil {
			return err
		}
		doc = formatter.FormatWeek(profiles)
	} else {
		p, err := agg.Aggregate(date)
		if err != nil {
			return err
		}
		detail := report.DetailFull
		if reportBrief {
			detail = report.DetailBrief
		}
		doc = formatter.FormatDay(p, detail)
	}

	fmt.Println(doc.Render())
	return nil
}
