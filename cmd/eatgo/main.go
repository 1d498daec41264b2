package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eatgo-discovery/internal/config"
	"github.com/eatgo-discovery/internal/infrastructure/nominatim"
	"github.com/eatgo-discovery/internal/infrastructure/overpass"
	"github.com/eatgo-discovery/internal/pkg/logger"
	"github.com/eatgo-discovery/internal/usecase"
	"github.com/eatgo-discovery/internal/usecase/dto"
)

var (
	lat          float64
	lng          float64
	locationText string
	radiusKm     int
	category     string
	openNow      bool
)

var rootCmd = &cobra.Command{
	Use:   "eatgo",
	Short: "Find nearby food venues from the terminal",
	Long:  `Runs one discovery pipeline invocation against the public OpenStreetMap services and prints the ranked shortlist.`,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for food venues around a location",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Float64Var(&lat, "lat", 0, "Center latitude (coords mode)")
	searchCmd.Flags().Float64Var(&lng, "lng", 0, "Center longitude (coords mode)")
	searchCmd.Flags().StringVar(&locationText, "text", "", "Free-text location (text mode)")
	searchCmd.Flags().IntVar(&radiusKm, "radius", 3, "Search radius in km (1, 3 or 5)")
	searchCmd.Flags().StringVar(&category, "category", "不限", "Food category")
	searchCmd.Flags().BoolVar(&openNow, "open", false, "Only venues with schedule metadata (open-now approximation)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New("error")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	geocoder := nominatim.NewClient(&cfg.Nominatim, log)
	poiSource := overpass.NewClient(&cfg.Overpass, log)
	discoveryUC := usecase.NewDiscoveryUseCase(geocoder, poiSource, usecase.MetadataScorer{}, log)

	req := dto.SearchRequest{
		RadiusKm: radiusKm,
		Category: category,
		OpenNow:  openNow,
	}
	if locationText != "" {
		req.Mode = "text"
		req.LocationText = locationText
	} else {
		req.Mode = "coords"
		req.Lat = &lat
		req.Lng = &lng
	}

	resp, err := discoveryUC.Search(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Printf("Center: %.5f, %.5f\n", resp.Center.Lat, resp.Center.Lng)
	if len(resp.Results) == 0 {
		fmt.Println("No venues found.")
		return nil
	}
	for i, r := range resp.Results {
		fmt.Printf("%d. %s (%.2f km, score %.2f)\n", i+1, r.Name, r.DistanceKm, r.VibeScore)
		if r.Address != "" {
			fmt.Printf("   %s\n", r.Address)
		}
		fmt.Printf("   %s\n", r.MapsURL)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
