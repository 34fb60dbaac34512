package scrape

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/wenzapen/scrapekit/extract"
	"github.com/wenzapen/scrapekit/fetch"
	"github.com/wenzapen/scrapekit/log"
	"github.com/wenzapen/scrapekit/process"
	"github.com/wenzapen/scrapekit/proxy"
	"github.com/wenzapen/scrapekit/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ScrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "run scrape jobs from a config file",
	Long:  "run scrape jobs from a config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Run()
	},
}

var configFile string

func init() {
	ScrapeCmd.Flags().StringVar(&configFile, "config", "config.toml", "set config file path")
}

type Config struct {
	LogLevel string
	LogFile  string
	Fetcher  FetcherConfig
	Jobs     []JobConfig
}

type FetcherConfig struct {
	Timeout   int // milliseconds
	UserAgent string
	Proxy     []string
}

type JobConfig struct {
	Name     string
	URL      string
	Kind     string // links | text | headings | paragraphs | images | tables
	Selector string // for kind "links" and "text"
	Level    int    // for kind "headings"
	Keyword  string // optional filter
	Output   string // .csv or .json
	Dedupe   bool
	Clean    bool
	WaitTime float64
}

func Run() {
	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		panic(err)
	}

	plugin := log.NewStdoutPlugin(log.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		filePlugin, closer := log.NewFilePlugin(cfg.LogFile, log.ParseLevel(cfg.LogLevel))
		defer closer.Close()
		plugin = zapcore.NewTee(plugin, filePlugin)
	}
	logger := log.NewLogger(plugin)
	logger.Info("log init end")

	var opts []fetch.Option
	opts = append(opts, fetch.WithLogger(logger))
	if cfg.Fetcher.Timeout > 0 {
		opts = append(opts, fetch.WithTimeout(time.Duration(cfg.Fetcher.Timeout)*time.Millisecond))
	}
	if cfg.Fetcher.UserAgent != "" {
		opts = append(opts, fetch.WithUserAgent(cfg.Fetcher.UserAgent))
	}
	if len(cfg.Fetcher.Proxy) > 0 {
		p, err := proxy.RoundRobinSwitcher(cfg.Fetcher.Proxy...)
		if err != nil {
			logger.Error("RoundRobinSwitcher failed", zap.Error(err))
		} else {
			opts = append(opts, fetch.WithProxy(p))
		}
	}
	client := fetch.New(opts...)
	store := storage.New(storage.WithLogger(logger))

	for i, job := range cfg.Jobs {
		if i > 0 && job.WaitTime > 0 {
			fetch.Delay(job.WaitTime)
		}
		if err := runJob(client, store, job); err != nil {
			logger.Error("job failed",
				zap.String("job", job.Name),
				zap.Error(err))
			continue
		}
		logger.Info("job done",
			zap.String("job", job.Name),
			zap.String("output", job.Output))
	}
}

func runJob(client *fetch.Client, store *storage.FileStorage, job JobConfig) error {
	html, ok := client.HTML(job.URL)
	if !ok {
		return fmt.Errorf("fetch %s failed", job.URL)
	}

	if job.Kind == "tables" {
		return saveTables(store, job, extract.Tables(html))
	}

	var items []string
	switch job.Kind {
	case "links":
		selector := job.Selector
		if selector == "" {
			selector = "a[href]"
		}
		items = extract.Hrefs(extract.Select(html, selector))
	case "text":
		items = extract.Text(extract.Select(html, job.Selector))
	case "headings":
		items = extract.Headings(html, job.Level)
	case "paragraphs":
		items = extract.Paragraphs(html)
	case "images":
		items = extract.Images(html)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}

	if job.Clean {
		items = process.CleanText(items)
	}
	if job.Keyword != "" {
		items = process.FilterByKeyword(items, job.Keyword)
	}
	if job.Dedupe {
		items = process.Deduplicate(items)
	}

	if strings.HasSuffix(job.Output, ".json") {
		return store.SaveJSON(job.Output, items)
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item})
	}
	return store.SaveCSV(job.Output, rows)
}

func saveTables(store *storage.FileStorage, job JobConfig, tables [][][]string) error {
	if strings.HasSuffix(job.Output, ".json") {
		return store.SaveJSON(job.Output, tables)
	}
	// CSV is flat; write the rows of every table in sequence.
	rows := [][]string{}
	for _, table := range tables {
		rows = append(rows, table...)
	}
	return store.SaveCSV(job.Output, rows)
}
