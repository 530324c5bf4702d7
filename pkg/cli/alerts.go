package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/adopt-lab/harbinger/pkg/cli/config"
	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/usecase"
	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/adopt-lab/harbinger/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAlerts() *cli.Command {
	return &cli.Command{
		Name:    "alerts",
		Aliases: []string{"a"},
		Usage:   "Inspect and manage persisted risk alerts",
		Commands: []*cli.Command{
			cmdAlertsList(),
			cmdAlertsUpdate(),
		},
	}
}

func cmdAlertsList() *cli.Command {
	var repoCfg config.Repository
	var sourceType string
	var sourceID string
	var status string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "source-type",
			Usage:       "Filter by source type (strategy or assessment)",
			Destination: &sourceType,
		},
		&cli.StringFlag{
			Name:        "source-id",
			Usage:       "Filter by source entity ID",
			Destination: &sourceID,
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Filter by alert status",
			Destination: &status,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "list",
		Usage: "List alerts, newest first",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			opts := interfaces.AlertListOptions{
				SourceType: types.SourceType(sourceType),
				SourceID:   sourceID,
			}
			if status != "" {
				parsed, err := types.ParseAlertStatus(status)
				if err != nil {
					return goerr.Wrap(err, "invalid status filter")
				}
				opts.Status = parsed
			}

			uc := usecase.New(repo)
			alerts, err := uc.Alert.List(ctx, opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(alerts)
		},
	}
}

func cmdAlertsUpdate() *cli.Command {
	var repoCfg config.Repository
	var alertID string
	var status string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Alert ID to update",
			Required:    true,
			Destination: &alertID,
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Next alert status",
			Required:    true,
			Destination: &status,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "update",
		Usage: "Advance an alert through its status lifecycle",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			next, err := types.ParseAlertStatus(status)
			if err != nil {
				return goerr.Wrap(err, "invalid status")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			updated, err := uc.Alert.UpdateStatus(ctx, types.AlertID(alertID), next)
			if err != nil {
				return err
			}

			logging.Default().Info("Alert status updated",
				"id", updated.ID,
				"status", updated.Status)
			return nil
		},
	}
}
