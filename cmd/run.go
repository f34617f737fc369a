package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/blogforge/internal/model"
)

var runCmd = &cobra.Command{
	Use:          "run <topic>",
	Short:        "Run the content pipeline for a single topic",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		topic := args[0]

		env, err := initPipeline(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		result := env.Pipeline.Run(ctx, topic)

		// The result JSON goes to stdout regardless of outcome.
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "encode result")
		}

		if result.Status == model.ResultStatusError {
			zap.L().Error("run failed", zap.String("topic", topic), zap.String("message", result.Message))
			return eris.Errorf("run failed: %s", result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
