package main

import (
	"fmt"

	"github.com/cli/browser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nmasdoufi/hudubridge/pkg/reports"
)

func newReportsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Open the Action1 review reports for a company in the browser",
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
			urls := reports.URLs(org.OrgID)
			fmt.Printf("Reports for %s (org %s):\n", org.Name, org.OrgID)
			for i, u := range urls {
				fmt.Printf("  %2d. %s\n", i+1, u)
			}
			ok, err := a.prompter.Confirm(fmt.Sprintf("Open all %d report URLs in the browser?", len(urls)))
			if err != nil {
				return err
			}
			if !ok {
				color.Yellow("aborted, nothing opened")
				return nil
			}
			results := reports.Launch(urls, browser.OpenURL)
			for _, r := range results {
				if r.Err != nil {
					a.log.Errorf("open %s: %v", r.URL, r.Err)
				}
			}
			if failed := reports.Failed(results); failed > 0 {
				color.Yellow("completed with %d of %d launch failures", failed, len(results))
			} else {
				color.Green("opened all %d reports", len(results))
			}
			return nil
		},
	}
}
