package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/blogforge/internal/model"
)

var batchLimit int

var batchCmd = &cobra.Command{
	Use:   "batch <topics-file>",
	Short: "Run the pipeline for every topic in a file",
	Long:  "Reads topics from a file, one per line, and processes them concurrently. Blank lines and lines starting with # are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		topics, err := readTopicsFile(args[0])
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		return processBatch(ctx, topics, batchLimit, cfg.Batch.MaxConcurrentTopics, func(ctx context.Context, topic string) model.PipelineRunResult {
			return env.Pipeline.Run(ctx, topic)
		})
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of topics to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// readTopicsFile reads one topic per line, skipping blanks and # comments.
func readTopicsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: open topics file %s", path)
	}
	defer f.Close() //nolint:errcheck

	var topics []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		topics = append(topics, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "batch: read topics file %s", path)
	}
	return topics, nil
}

// runFunc is the callback signature for running the pipeline on a topic.
type runFunc func(ctx context.Context, topic string) model.PipelineRunResult

// processBatch applies limit, then processes topics concurrently. Individual
// failures are counted but never abort the batch.
func processBatch(ctx context.Context, topics []string, limit, concurrency int, run runFunc) error {
	if len(topics) == 0 {
		zap.L().Info("no topics to process")
		return nil
	}

	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("topics", len(topics)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, topic := range topics {
		g.Go(func() error {
			log := zap.L().With(zap.String("topic", topic))

			result := run(gctx, topic)
			if result.Status == model.ResultStatusError {
				failed.Add(1)
				log.Error("topic failed", zap.String("message", result.Message))
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			log.Info("topic complete", zap.String("url", result.URL))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
