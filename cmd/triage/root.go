package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"emergency-triage/config"
	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/router"
	"emergency-triage/internal/triage"
	"emergency-triage/pkg/datemath"
)

// engines bundles the pure engines every command works against.
type engines struct {
	kb        *knowledge.Base
	router    *router.KeywordRouter
	estimator *triage.Estimator
}

func newEngines(timezone, routePrefix string, cities []string) (*engines, error) {
	clock, err := datemath.NewClock(timezone)
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		cities = router.DefaultCities
	}

	kb := knowledge.NewDefault()
	return &engines{
		kb: kb,
		router: router.New(router.Config{
			Tables:      router.DefaultTables(),
			Cities:      cities,
			RoutePrefix: routePrefix,
		}, kb),
		estimator: triage.NewEstimator(triage.DefaultCatalog(), clock),
	}, nil
}

func newRootCmd() *cobra.Command {
	var (
		timezone    string
		routePrefix string
		eng         *engines
	)

	root := &cobra.Command{
		Use:   "triage",
		Short: "Emergency triage from the terminal",
		Long: `triage runs the emergency keyword classifier, the safety knowledge base and the
cost estimator locally, without the HTTP service. Settings come from the same
config.yaml and environment variables as the API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: could not load .env:", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("timezone") {
				timezone = cfg.Triage.Timezone
			}
			if !cmd.Flags().Changed("route-prefix") {
				routePrefix = cfg.Triage.RoutePrefix
			}

			eng, err = newEngines(timezone, routePrefix, cfg.Triage.Cities)
			return err
		},
	}

	root.PersistentFlags().StringVar(&timezone, "timezone", "Europe/London", "time zone for out-of-hours pricing")
	root.PersistentFlags().StringVar(&routePrefix, "route-prefix", router.DefaultRoutePrefix, "prefix for navigation targets")

	get := func() *engines { return eng }
	root.AddCommand(
		newChatCmd(get),
		newSearchCmd(get),
		newAssessCmd(get),
		newTradesCmd(get),
	)
	return root
}
