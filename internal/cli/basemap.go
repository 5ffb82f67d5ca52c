package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"estuatlas/internal/geom"
)

var basemapCmd = &cobra.Command{
	Use:   "basemap",
	Short: "Prefetch the background shape collection into the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		bm, err := geom.FetchBasemap(ctx, cfg.Map.BasemapURL, cfg.BasemapCachePath())
		if err != nil {
			return fmt.Errorf("prefetching basemap: %w", err)
		}
		fmt.Fprintf(os.Stderr, "cached %d shapes to %s\n", len(bm.Shapes), cfg.BasemapCachePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(basemapCmd)
}
