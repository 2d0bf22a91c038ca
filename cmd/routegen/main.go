package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"poi-route-service/internal/adapters/csvsource"
	"poi-route-service/internal/adapters/distance"
	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/services"
)

var cfgFile string

// profileFlags maps CLI flags onto the profile keys ParseTripProfile reads.
var profileFlags = map[string]string{
	"request-id":      "requestId",
	"max-stops":       "maxStops",
	"max-minutes":     "maxBudgetMin",
	"mandatory-types": "mandatoryTypes",
	"min-rating":      "minRating",
	"max-price-level": "maxPriceLevel",
	"center-lat":      "centerLat",
	"center-lng":      "centerLng",
	"radius-km":       "radiusKm",
	"mode":            "mode",
}

var rootCmd = &cobra.Command{
	Use:   "routegen",
	Short: "Generates sample routes from a directory of place CSV files",
	Long: `routegen loads every CSV file in --catalog-dir, generates k alternative
routes for the profile given by flags, and optionally rerolls one stop of the
first route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weights, err := cmd.Flags().GetStringToString("weight")
		if err != nil {
			return err
		}
		return run(cmd.Context(), cmd.OutOrStdout(), buildProfile(weights))
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")

	rootCmd.Flags().String("catalog-dir", "data/places", "Directory of place CSV files")
	rootCmd.Flags().Int("k", 3, "Number of alternative routes")
	rootCmd.Flags().Int("reroll-index", -1, "Reroll this stop of the first route (negative disables)")
	rootCmd.Flags().String("reroll-type", "", "Category override for the reroll")

	rootCmd.Flags().String("request-id", "req-cli-1", "Request id (seeds the random choices)")
	rootCmd.Flags().Int("max-stops", 5, "Stop budget")
	rootCmd.Flags().Int("max-minutes", 240, "Time budget in minutes")
	rootCmd.Flags().String("mandatory-types", "", "Comma separated categories every route must cover")
	rootCmd.Flags().Float64("min-rating", 0, "Minimum rating (0 disables)")
	rootCmd.Flags().String("max-price-level", "", "Highest accepted price level")
	rootCmd.Flags().String("center-lat", "", "Center latitude")
	rootCmd.Flags().String("center-lng", "", "Center longitude")
	rootCmd.Flags().String("radius-km", "", "Geofence radius around the center")
	rootCmd.Flags().String("mode", "driving", "Travel mode: driving, walking or cycling")
	rootCmd.Flags().StringToString("weight", nil, "Category weights, e.g. --weight restaurant=1.2,park=1")

	_ = viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
	viper.SetEnvPrefix("ROUTEGEN")
	viper.AutomaticEnv()
}

func buildProfile(weights map[string]string) map[string]string {
	values := make(map[string]string, len(profileFlags)+len(weights))
	for flag, key := range profileFlags {
		if v := viper.GetString(flag); v != "" {
			values[key] = v
		}
	}
	for category, w := range weights {
		values["weight_"+category] = w
	}
	return values
}

func run(ctx context.Context, out io.Writer, values map[string]string) error {
	src, err := csvsource.NewDirectorySource(viper.GetString("catalog-dir"))
	if err != nil {
		return err
	}
	cat := catalog.New()
	if _, err := cat.LoadFrom(ctx, src); err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded places: %d\n", cat.Len())

	planner := services.NewRoutePlanner(cat, distance.NewSpeedTableEstimator(nil))
	profile := services.ParseTripProfile(values)

	routes, err := planner.GenerateRoutes(ctx, profile, viper.GetInt("k"))
	if err != nil {
		return err
	}
	for _, r := range routes {
		printRoute(out, r)
	}

	index := viper.GetInt("reroll-index")
	if index < 0 || len(routes) == 0 {
		return nil
	}

	overrides := map[string]string{}
	if t := viper.GetString("reroll-type"); t != "" {
		overrides["type"] = t
	}
	if values["minRating"] != "" {
		overrides["minRating"] = values["minRating"]
	}
	outcome := planner.Mutator().Reroll(routes[0], profile, index, services.ParseRerollOverrides(overrides), nil)
	fmt.Fprintf(out, "\nAfter reroll index=%d: %s\n", index, outcome)
	printRoute(out, routes[0])
	return nil
}

func printRoute(out io.Writer, r *domain.Route) {
	fmt.Fprintf(out, "\n--- %s  feasible=%t ---\n", r.RouteID, r.Feasible)
	fmt.Fprintf(out, "totalDurationSec=%d  totalDistanceM=%d\n", r.TotalDurationSeconds, int(r.TotalDistanceMeters))
	for _, s := range r.Stops {
		fmt.Fprintf(out, "  %02d  %s  rating=%.1f  (%dm)\n", s.Position, s.Place.Name, s.Place.RatingScore, s.PlannedVisitMinutes)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
