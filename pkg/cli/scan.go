package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/adopt-lab/harbinger/pkg/cli/config"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/service/generation"
	"github.com/adopt-lab/harbinger/pkg/usecase"
	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/adopt-lab/harbinger/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdScan() *cli.Command {
	var geminiCfg config.Gemini
	var repoCfg config.Repository
	var scanCfg config.Scan
	var slackCfg config.Slack
	var dryRun bool

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Detect and enrich without persisting alerts",
			Destination: &dryRun,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, scanCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "Run a fleet-wide risk scan and persist resulting alerts",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ruleConfig, err := scanCfg.RuleConfig()
			if err != nil {
				return goerr.Wrap(err, "failed to load rule configuration")
			}

			resultCache, cacheCloser, err := scanCfg.CacheBackend()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize result cache")
			}
			defer cacheCloser()

			ucOpts := []usecase.Option{
				usecase.WithRuleConfig(ruleConfig),
				usecase.WithCache(resultCache),
				usecase.WithMaxInFlight(scanCfg.MaxInFlight()),
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				genSvc, err := generation.New(llmClient,
					generation.WithCallTimeout(scanCfg.CallTimeout()),
					generation.WithMaxPromptTokens(scanCfg.MaxPromptTokens()),
				)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize generation service")
				}
				ucOpts = append(ucOpts, usecase.WithGeneration(genSvc))
			} else {
				logger.Warn("Gemini project not configured, scan will run detection only")
			}

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack notifier")
			}

			uc := usecase.New(repo, ucOpts...)

			strategies, err := repo.Strategy().List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load strategies")
			}
			assessments, err := repo.Assessment().List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load assessments")
			}

			logger.Info("Scan starting",
				"strategies", len(strategies),
				"assessments", len(assessments),
				"max_in_flight", scanCfg.MaxInFlight(),
				"dry_run", dryRun)

			alerts, err := uc.Scan.RunScan(ctx, strategies, assessments)
			if err != nil {
				return goerr.Wrap(err, "scan failed")
			}

			var critical int
			for _, alert := range alerts {
				if alert.Severity == types.SeverityCritical {
					critical++
				}
			}
			logger.Info("Scan complete",
				"alerts", len(alerts),
				"critical", critical)

			if dryRun {
				for _, alert := range alerts {
					logger.Info("Detected risk (not persisted)",
						"trigger", alert.TriggerReason,
						"category", alert.RiskCategory,
						"severity", alert.Severity,
						"source", alert.SourceName)
				}
				return nil
			}

			stored, err := uc.Alert.PersistAlerts(ctx, alerts)
			if err != nil {
				logger.Error("some alerts failed to persist",
					"stored", len(stored), "total", len(alerts), "error", err.Error())
			} else {
				logger.Info("Alerts persisted", "count", len(stored))
			}

			if notifier != nil {
				for _, alert := range stored {
					if alert.Severity != types.SeverityCritical {
						continue
					}
					if err := notifier.NotifyAlert(ctx, alert); err != nil {
						logger.Error("failed to notify alert",
							"alert_id", alert.ID, "error", err.Error())
					}
				}
			}

			return nil
		},
	}
}
