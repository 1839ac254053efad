package stats

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gobees/gobees/internal/cli"
	"github.com/gobees/gobees/internal/cli/styles"
	"github.com/gobees/gobees/internal/datasource"
)

// Report is what gobees stats prints
type Report struct {
	Apiaries   int              `json:"apiaries" yaml:"apiaries"`
	Hives      int              `json:"hives" yaml:"hives"`
	DataSource datasource.Stats `json:"datasource" yaml:"datasource"`
	Events     EventStats       `json:"events" yaml:"events"`
}

// EventStats describes the change event broker
type EventStats struct {
	Subscribers int   `json:"subscribers" yaml:"subscribers"`
	Dropped     int64 `json:"dropped" yaml:"dropped"`
}

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stored totals and data source statistics",
		Long: `Count the stored apiaries and hives, then report the data source
counters, the state of each cache tier and the event broker.`,
		RunE: cli.Run(runStats),
	}

	cli.AddOutputFlags(cmd, true)

	return cmd
}

func runStats(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	ds := cliInstance.App.DataSource

	apiaries, err := datasource.AwaitApiaries(ctx, ds)
	if err != nil {
		return cli.Fail(formatter, "APIARY_FETCH_ERROR", err)
	}

	report := Report{Apiaries: len(apiaries)}
	for _, a := range apiaries {
		hives, err := datasource.AwaitHives(ctx, ds, a.ID)
		if err != nil {
			return cli.Fail(formatter, "HIVE_FETCH_ERROR", err)
		}
		report.Hives += len(hives)
	}

	report.DataSource = ds.Stats()
	report.Events = EventStats{
		Subscribers: cliInstance.App.Events.Subscribers(),
		Dropped:     cliInstance.App.Events.Dropped(),
	}

	if formatter.Quiet {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", report.Apiaries, report.Hives)
		return err
	}

	return formatter.Render(report, renderReport(report))
}

func renderReport(r Report) string {
	m := r.DataSource.Metrics

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("GoBees") + "\n\n")
	b.WriteString(styles.RenderField("Apiaries", fmt.Sprintf("%d", r.Apiaries)) + "\n")
	b.WriteString(styles.RenderField("Hives", fmt.Sprintf("%d", r.Hives)) + "\n")

	b.WriteString(styles.SectionStyle.Render("Data source") + "\n")
	b.WriteString(styles.RenderField("Store reads", fmt.Sprintf("%d", m.StoreReads)) + "\n")
	b.WriteString(styles.RenderField("Cache hit rate", fmt.Sprintf("%.0f%% (%d hits, %d misses)",
		r.DataSource.HitRate*100, m.CacheHits, m.CacheMisses)) + "\n")
	b.WriteString(styles.RenderField("Failures", fmt.Sprintf("%d", m.Failures)) + "\n")
	b.WriteString(styles.RenderField("Uptime", m.Uptime) + "\n")

	b.WriteString(styles.SectionStyle.Render("Cache") + "\n")
	tiers := make([]string, 0, len(r.DataSource.Cache))
	for name := range r.DataSource.Cache {
		tiers = append(tiers, name)
	}
	slices.Sort(tiers)
	for _, name := range tiers {
		t := r.DataSource.Cache[name]
		fmt.Fprintf(&b, "  • %-10s %d entries, %d/%d lookups hit\n", name, t.Entries, t.Hits, t.Lookups)
	}

	b.WriteString(styles.SectionStyle.Render("Events") + "\n")
	b.WriteString(styles.RenderField("Subscribers", fmt.Sprintf("%d", r.Events.Subscribers)) + "\n")
	b.WriteString(styles.RenderField("Dropped", fmt.Sprintf("%d", r.Events.Dropped)))

	return styles.RenderCard(b.String())
}
