package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagDate      string
	flagStartDate string
	flagEndDate   string

	flagMinMentions        int
	flagSentimentThreshold float64
	flagIndustry           string

	flagYear  int
	flagMonth int

	flagImportance string
	flagSubfolder  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze input documents and write the daily report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		run, err := a.AnalyzeNews(flagDate)
		if err != nil {
			return err
		}

		if run.FilesProcessed == 0 {
			fmt.Println("没有找到待分析的文件")
			return nil
		}
		fmt.Printf("成功分析 %d 个文件，报告已保存：%s\n", run.FilesProcessed, run.ReportPath)
		return nil
	},
}

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen stocks from analyzed news and write the screening report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		cfg := a.ScreenConfig()
		if cmd.Flags().Changed("min-mentions") {
			cfg.MinMentionCount = flagMinMentions
		}
		if cmd.Flags().Changed("sentiment-threshold") {
			cfg.SentimentThreshold = flagSentimentThreshold
		}

		run, err := a.ScreenStocks(flagDate, cfg, flagIndustry)
		if err != nil {
			return err
		}

		if run.ReportPath == "" {
			fmt.Println("没有足够的数据进行股票筛选")
			return nil
		}
		fmt.Printf("筛选出 %d 只推荐股票，报告已保存：%s\n", len(run.Recommendations), run.ReportPath)
		return nil
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Generate the weekly report for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		run, err := a.GenerateWeeklyReport(flagStartDate, flagEndDate)
		if err != nil {
			return err
		}

		fmt.Printf("周报已生成：%s（分析 %d 条新闻，推荐 %d 只股票）\n",
			run.ReportPath, run.NewsCount, run.StocksRecommended)
		return nil
	},
}

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Generate the monthly report for a calendar month",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		run, err := a.GenerateMonthlyReport(flagYear, flagMonth)
		if err != nil {
			return err
		}

		fmt.Printf("月报已生成：%s\n", run.ReportPath)
		return nil
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Extract high importance insights into an output note",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		run, err := a.ExtractInsights(flagImportance, flagSubfolder)
		if err != nil {
			return err
		}

		if run.Extracted == 0 {
			fmt.Println("没有符合条件的洞察")
			return nil
		}
		fmt.Printf("已提取 %d 条洞察，保存到 %s\n", run.Extracted, run.NotePath)
		return nil
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive all documents in the processing area",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		archived, err := a.ArchiveProcessed()
		if err != nil {
			return err
		}

		fmt.Printf("已归档 %d 个文件\n", len(archived))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and document inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		status, err := a.Status()
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduler until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.StartScheduler(); err != nil {
			return err
		}
		if !a.Config.Scheduler.Enabled {
			return fmt.Errorf("scheduler is disabled in configuration")
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		a.Logger.Info().Str("signal", s.String()).Msg("Shutting down")
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&flagDate, "date", "", "date to analyze (YYYY-MM-DD, default today)")

	screenCmd.Flags().StringVar(&flagDate, "date", "", "screening date (YYYY-MM-DD, default today)")
	screenCmd.Flags().IntVar(&flagMinMentions, "min-mentions", 2, "minimum mention count")
	screenCmd.Flags().Float64Var(&flagSentimentThreshold, "sentiment-threshold", 0.6, "minimum average sentiment")
	screenCmd.Flags().StringVar(&flagIndustry, "industry", "", "keep only recommendations matching this industry")

	weeklyCmd.Flags().StringVar(&flagStartDate, "start", "", "start date (YYYY-MM-DD, default this week Monday)")
	weeklyCmd.Flags().StringVar(&flagEndDate, "end", "", "end date (YYYY-MM-DD, default today)")

	monthlyCmd.Flags().IntVar(&flagYear, "year", 0, "year (default current)")
	monthlyCmd.Flags().IntVar(&flagMonth, "month", 0, "month 1-12 (default current)")

	insightsCmd.Flags().StringVar(&flagImportance, "importance", "high", "importance filter (high/medium/low/all)")
	insightsCmd.Flags().StringVar(&flagSubfolder, "subfolder", "notes", "output subfolder")
}
