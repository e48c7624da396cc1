package main

import (
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nmasdoufi/hudubridge/pkg/assets"
	"github.com/nmasdoufi/hudubridge/pkg/inventory"
	"github.com/nmasdoufi/hudubridge/pkg/logging"
)

func newAssetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "Create Hudu computer assets from a company's Action1 inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := a.huduClient()
			if err != nil {
				return err
			}
			org, err := a.resolveOrg(ctx, client)
			if err != nil {
				return err
			}
			session, err := a.action1Session(ctx)
			if err != nil {
				return err
			}
			records, err := session.Endpoints(ctx, org.OrgID)
			if err != nil {
				return err
			}
			logPath, err := a.prompter.Line("Asset creation log path", a.cfg.Assets.LogPath)
			if err != nil {
				return err
			}
			runLog, err := logging.New(logPath, logging.ParseLevel(a.cfg.Logging.Level))
			if err != nil {
				return err
			}
			defer runLog.Close()

			runID := uuid.NewString()
			runLog.Infof("run %s: creating assets for %s (company id %d, org %s)", runID, org.Name, org.CompanyID, org.OrgID)

			endpoints := make([]inventory.Endpoint, 0, len(records))
			for _, rec := range records {
				endpoint, err := inventory.Normalize(rec)
				if err != nil {
					runLog.Warnf("run %s: skipping endpoint record: %v", runID, err)
					continue
				}
				endpoints = append(endpoints, endpoint)
			}
			layout, err := assets.EnsureLayout(ctx, client)
			if err != nil {
				return err
			}
			summary := assets.Create(ctx, client, org.CompanyID, layout, endpoints, runLog)
			runLog.Infof("run %s: %d created, %d failed", runID, summary.Created, summary.Failed)
			if summary.Partial() {
				color.Yellow("completed with %d of %d asset failures, see %s", summary.Failed, len(endpoints), logPath)
			} else {
				color.Green("created all %d assets", summary.Created)
			}
			return nil
		},
	}
}
