package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/dockerize"
	"github.com/dublyo/dockergen/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Regenerate the Dockerfile when the project changes",
	Long: `Generate the Dockerfile, then regenerate it whenever a top-level file
in the project is created, removed, renamed or written. Changes to the
Dockerfile itself are ignored. Stop with Ctrl+C.

Examples:
  dockergen watch
  dockergen watch --debounce 1s ./my-project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "Dockerfile path (default: <dir>/Dockerfile)")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before regenerating")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir, err := targetDir(args)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, dir)
	opts.Output, _ = cmd.Flags().GetString("output")
	if opts.Output == "" {
		opts.Output = cfg.Defaults.Output
	}
	if opts.Output == StdoutPath {
		return fmt.Errorf("watch needs a file to write; --output - is not supported")
	}
	if opts.Output == "" {
		opts.Output = filepath.Join(dir, dockerize.DefaultDockerfile)
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	ctx, cancel := signalContext()
	defer cancel()

	svc := newService()
	regenerate := func(ctx context.Context) error {
		res, err := svc.GenerateDockerfile(ctx, opts)
		if err != nil {
			return err
		}
		printer.Success("%s  %s (%s)", time.Now().Format("15:04:05"), res.OutputPath, res.Type)
		return nil
	}

	w, err := watch.New(dir,
		watch.WithDebounce(debounce),
		watch.WithIgnore(opts.Output),
		watch.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := regenerate(ctx); err != nil {
		_ = w.Close()
		return err
	}
	printInfo("Watching %s for changes...", w.Dir())

	return w.Run(ctx, regenerate)
}
