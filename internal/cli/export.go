package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"estuatlas/internal/atlas"
	"estuatlas/internal/geom"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the working set (seed plus saved session discoveries) as GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		working := atlas.Seed()
		if cfg.Session.Enabled {
			sess, err := atlas.LoadSession(cfg.SessionPath())
			if err != nil {
				return err
			}
			working = atlas.Merge(working, sess.Discovered)
		}

		feats := make([]geom.PointFeature, 0, len(working))
		for _, e := range working {
			feats = append(feats, geom.PointFeature{
				Lng: e.Coordinates.Lng,
				Lat: e.Coordinates.Lat,
				Properties: map[string]any{
					"id":                 e.ID,
					"name":               e.Name,
					"location":           e.Location,
					"shortDescription":   e.ShortDescription,
					"scale":              string(e.Scale),
					"populationDensity":  string(e.PopulationDensity),
					"biodiversityRating": string(e.BiodiversityRating),
				},
			})
		}
		data, err := geom.EncodePoints(feats)
		if err != nil {
			return fmt.Errorf("encoding feature collection: %w", err)
		}

		if exportOut == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d features to %s\n", len(feats), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "estuaries.geojson", "Output file (- for stdout)")
	rootCmd.AddCommand(exportCmd)
}
