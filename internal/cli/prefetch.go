package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/imageload"
	"github.com/driftui/drift/pkg/imageref"
)

// prefetchCommand creates the cache warm-up command.
func (c *CLI) prefetchCommand() *cobra.Command {
	var (
		assetNames  []string
		concurrency int
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "prefetch <manifest.toml>",
		Short: "Warm the image cache from a gallery manifest",
		Long: `Fetch every remote image reference in the manifest into the local byte
cache so the demos start with warm images. Bundled assets and symbol
fallbacks are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := carousel.LoadManifestFile(args[0])
			if err != nil {
				return err
			}
			if len(m.Items) == 0 {
				printInfo("Manifest has no items")
				return nil
			}

			loader := c.newLoader(noCache)
			assets := imageref.NewAssetSet(assetNames...)

			prog := newProgress(c.Logger)
			sp := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Prefetching %d items...", len(m.Items)))
			sp.Start()

			result, err := loader.Prefetch(cmd.Context(), m.Items, assets, concurrency)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Prefetch failed: %v", err))
				return err
			}

			sp.StopWithSuccess(fmt.Sprintf("Prefetched %d images", result.Fetched))
			printPrefetchStats(result.Fetched, result.Skipped, !noCache)
			prog.done(fmt.Sprintf("Warmed cache from %s", args[0]))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&assetNames, "asset", nil, "bundled asset names (repeatable)")
	cmd.Flags().IntVar(&concurrency, "concurrency", imageload.DefaultPrefetchConcurrency, "parallel fetch limit")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "fetch without writing the cache")
	return cmd
}
