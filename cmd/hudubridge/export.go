package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nmasdoufi/hudubridge/pkg/inventory"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export a company's Action1 endpoint inventory to CSV",
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
			endpoints := make([]inventory.Endpoint, 0, len(records))
			skipped := 0
			for _, rec := range records {
				endpoint, err := inventory.Normalize(rec)
				if err != nil {
					skipped++
					a.log.Warnf("skipping endpoint record: %v", err)
					continue
				}
				fmt.Println(endpoint)
				endpoints = append(endpoints, endpoint)
			}
			csvPath, err := a.prompter.Line("CSV output path", a.cfg.Export.CSVPath)
			if err != nil {
				return err
			}
			if err := inventory.WriteCSVFile(csvPath, endpoints); err != nil {
				return err
			}
			if skipped > 0 {
				color.Yellow("wrote %d endpoints to %s, skipped %d records without a name", len(endpoints), csvPath, skipped)
			} else {
				color.Green("wrote %d endpoints to %s", len(endpoints), csvPath)
			}
			return nil
		},
	}
}
