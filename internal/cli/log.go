package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/scoring"
)

var (
	logFilterRisk   string
	logFilterSource string
	logErrorsOnly   bool
	logLast         int
	logSummary      bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and filter the audit log",
	Long: `View the LabelShield audit log with filtering and summary options.

Examples:
  labelshield log                        # Show all entries
  labelshield log --last 20              # Show last 20 entries
  labelshield log --risk "High Risk"     # Show only high-risk analyses
  labelshield log --source http          # Show only API requests
  labelshield log --summary              # Show summary stats`,
	RunE: logCommand,
}

func init() {
	logCmd.Flags().StringVar(&logFilterRisk, "risk", "", "Filter by classification (Low Risk, Medium Risk, High Risk)")
	logCmd.Flags().StringVar(&logFilterSource, "source", "", "Filter by source (cli, http, mcp)")
	logCmd.Flags().BoolVar(&logErrorsOnly, "errors", false, "Show only failed analyses")
	logCmd.Flags().IntVar(&logLast, "last", 0, "Show last N entries")
	logCmd.Flags().BoolVar(&logSummary, "summary", false, "Show summary statistics")
	rootCmd.AddCommand(logCmd)
}

func logCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	events, err := readAuditLog(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No audit log entries found.")
		return nil
	}

	filtered := filterEvents(events, eventFilter{
		Risk:       logFilterRisk,
		Source:     logFilterSource,
		ErrorsOnly: logErrorsOnly,
	})

	if logLast > 0 && logLast < len(filtered) {
		filtered = filtered[len(filtered)-logLast:]
	}

	if logSummary {
		printSummary(out, filtered)
		return nil
	}

	printEvents(out, filtered)
	return nil
}

func readAuditLog(path string) ([]logger.AnalysisEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var events []logger.AnalysisEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var event logger.AnalysisEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue // skip malformed lines
		}
		events = append(events, event)
	}
	return events, scanner.Err()
}

type eventFilter struct {
	Risk       string
	Source     string
	ErrorsOnly bool
}

func filterEvents(events []logger.AnalysisEvent, f eventFilter) []logger.AnalysisEvent {
	if f.Risk == "" && f.Source == "" && !f.ErrorsOnly {
		return events
	}

	var filtered []logger.AnalysisEvent
	for _, e := range events {
		if f.Risk != "" && !strings.EqualFold(e.RiskClassification, f.Risk) {
			continue
		}
		if f.Source != "" && !strings.EqualFold(e.Source, f.Source) {
			continue
		}
		if f.ErrorsOnly && e.Error == "" {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func printEvents(out io.Writer, events []logger.AnalysisEvent) {
	for _, e := range events {
		ts := formatTimestamp(e.Timestamp)
		cached := ""
		if e.CacheHit {
			cached = " [CACHED]"
		}

		if e.Error != "" {
			fmt.Fprintf(out, "%s %s [%s] error%s\n", riskIcon(""), ts, e.Source, cached)
			fmt.Fprintf(out, "     Error: %s\n", e.Error)
		} else {
			level := scoring.RiskLevel(e.RiskClassification)
			fmt.Fprintf(out, "%s %s [%s] score %d (%s)%s\n", riskIcon(level), ts, e.Source, e.Score, level, cached)
		}

		if e.UserID != "" {
			fmt.Fprintf(out, "     User: %s\n", e.UserID)
		}
		fmt.Fprintf(out, "     Ingredients: %s\n", strings.Join(e.Ingredients, ", "))
		if len(e.Flagged) > 0 {
			fmt.Fprintf(out, "     Flagged: %s\n", strings.Join(e.Flagged, ", "))
		}
		if len(e.Unknown) > 0 {
			fmt.Fprintf(out, "     Unknown: %s\n", strings.Join(e.Unknown, ", "))
		}
		fmt.Fprintln(out)
	}
}

// logStats aggregates a set of audit events.
type logStats struct {
	Total     int
	ByRisk    map[string]int
	BySource  map[string]int
	Errors    int
	CacheHits int
	MeanScore float64
	TopFlags  []flagCount
}

type flagCount struct {
	Name  string
	Count int
}

func summarizeEvents(events []logger.AnalysisEvent) logStats {
	stats := logStats{
		Total:    len(events),
		ByRisk:   map[string]int{},
		BySource: map[string]int{},
	}

	flags := map[string]int{}
	scored := 0
	sum := 0
	for _, e := range events {
		stats.BySource[e.Source]++
		if e.CacheHit {
			stats.CacheHits++
		}
		if e.Error != "" {
			stats.Errors++
			continue
		}
		stats.ByRisk[e.RiskClassification]++
		scored++
		sum += e.Score
		for _, name := range e.Flagged {
			flags[strings.ToLower(name)]++
		}
	}
	if scored > 0 {
		stats.MeanScore = float64(sum) / float64(scored)
	}

	for name, count := range flags {
		stats.TopFlags = append(stats.TopFlags, flagCount{Name: name, Count: count})
	}
	sortFlagCounts(stats.TopFlags)
	if len(stats.TopFlags) > 10 {
		stats.TopFlags = stats.TopFlags[:10]
	}
	return stats
}

func sortFlagCounts(counts []flagCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
}

func printSummary(out io.Writer, events []logger.AnalysisEvent) {
	stats := summarizeEvents(events)

	fmt.Fprintln(out, "═══════════════════════════════════════════")
	fmt.Fprintln(out, "  LabelShield Audit Summary")
	fmt.Fprintln(out, "═══════════════════════════════════════════")
	fmt.Fprintf(out, "  Total analyses:  %d\n", stats.Total)
	fmt.Fprintf(out, "  Low Risk:        %d\n", stats.ByRisk[string(scoring.LowRisk)])
	fmt.Fprintf(out, "  Medium Risk:     %d\n", stats.ByRisk[string(scoring.MediumRisk)])
	fmt.Fprintf(out, "  High Risk:       %d\n", stats.ByRisk[string(scoring.HighRisk)])
	fmt.Fprintf(out, "  Errors:          %d\n", stats.Errors)
	fmt.Fprintf(out, "  Cache hits:      %d\n", stats.CacheHits)
	fmt.Fprintf(out, "  Mean score:      %.1f\n", stats.MeanScore)
	fmt.Fprintf(out, "  Sources:         cli %d, http %d, mcp %d\n",
		stats.BySource[logger.SourceCLI], stats.BySource[logger.SourceHTTP], stats.BySource[logger.SourceMCP])
	fmt.Fprintln(out, "═══════════════════════════════════════════")

	if len(events) > 0 {
		fmt.Fprintf(out, "  First event:     %s\n", formatTimestamp(events[0].Timestamp))
		fmt.Fprintf(out, "  Last event:      %s\n", formatTimestamp(events[len(events)-1].Timestamp))
	}

	if len(stats.TopFlags) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Most flagged ingredients:")
		for _, fc := range stats.TopFlags {
			fmt.Fprintf(out, "    %-28s %d\n", fc.Name, fc.Count)
		}
	}

	fmt.Fprintln(out)
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
