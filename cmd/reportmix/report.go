package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/reportmix/internal/aggregator"
	"github.com/gauthierbraillon/reportmix/internal/display"
	"github.com/gauthierbraillon/reportmix/internal/social"
)

// newCleanCmd creates the clean subcommand.
func newCleanCmd() *cobra.Command {
	var inputPath, start, end, format string
	var parallel bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean raw scraper results into a combined report",
		Long:  "Read a JSON array of raw platform results, clean every platform and print the combined report.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := display.ParseFormat(format)
			if err != nil {
				return err
			}
			dr, err := dateRangeFlags(start, end)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			raws, err := a.decoder.ReadResults(inputPath)
			if err != nil {
				return err
			}

			summaries, err := a.newCleaner(parallel).CleanAll(cmd.Context(), raws, dr)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), outFormat, aggregator.Combine(summaries), failedSummaries(summaries))
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file with raw platform results")
	cmd.Flags().StringVar(&start, "start", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Clean platforms concurrently")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// newRecleanCmd creates the reclean subcommand.
func newRecleanCmd() *cobra.Command {
	var inputPath, format string

	cmd := &cobra.Command{
		Use:   "reclean",
		Short: "Rebuild a report from stored raw data",
		Long:  "Read a stored report and derive its combined report again from the raw platform data it keeps.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := display.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			stored, err := a.decoder.ReadStored(inputPath)
			if err != nil {
				return err
			}

			report, err := a.newCleaner(false).CleanStored(cmd.Context(), stored.RawData)
			if err != nil {
				return err
			}

			var failed []*social.Summary
			for _, raw := range stored.RawData {
				if raw.Error != "" {
					failed = append(failed, &social.Summary{Platform: raw.Platform.DisplayName(), Error: raw.Error})
				}
			}

			return a.render(cmd.OutOrStdout(), outFormat, report, failed)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file with a stored report")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// newFeedCmd creates the feed subcommand.
func newFeedCmd() *cobra.Command {
	var inputPath, platform, start, end string
	var limit int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Display cleaned posts newest first",
		Long:  "Display the cleaned posts of every platform as one chronological feed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dr, err := dateRangeFlags(start, end)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			raws, err := a.decoder.ReadResults(inputPath)
			if err != nil {
				return err
			}

			summaries, err := a.newCleaner(false).CleanAll(cmd.Context(), raws, dr)
			if err != nil {
				return err
			}

			agg := aggregator.New(a.norm)
			for _, s := range summaries {
				agg.AddSummary(s)
			}

			opts := aggregator.FeedOptions{Limit: limit}
			if platform != "" {
				opts.Platforms = []string{platform}
			}
			items := agg.GetFeed(opts)

			output := a.newFormatter().FormatFeed(items)
			fmt.Fprint(cmd.OutOrStdout(), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON file with raw platform results")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Filter by platform (instagram, linkedin, facebook, twitter, tiktok)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of posts to display")
	cmd.Flags().StringVar(&start, "start", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day to include (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) render(w io.Writer, format display.Format, report *aggregator.Report, failed []*social.Summary) error {
	switch format {
	case display.FormatJSON:
		return display.EncodeJSON(w, display.NewReportDocument(report))
	case display.FormatYAML:
		return display.EncodeYAML(w, display.NewReportDocument(report))
	default:
		return a.newFormatter().RenderReport(w, report, failed)
	}
}

func failedSummaries(summaries []*social.Summary) []*social.Summary {
	var failed []*social.Summary
	for _, s := range summaries {
		if s.Failed() {
			failed = append(failed, s)
		}
	}
	return failed
}
