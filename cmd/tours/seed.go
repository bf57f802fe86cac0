package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/tourdesk/tour-service/internal/infrastructure/db/mongo"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample tour catalogue",
	Long: `Inserts the sample Vietnamese tour catalogue into the tours collection.

With --reset the collection is emptied first.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete existing tours before seeding")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, tours, _, err := openMongo(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	n, err := tours.Seed(ctx, mongo.SampleTours(time.Now()), seedReset)
	if err != nil {
		return err
	}

	log.Info().Int("inserted", n).Bool("reset", seedReset).Msg("tours seeded")
	return nil
}
