package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nmasdoufi/hudubridge/pkg/folders"
)

func newFoldersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "Provision the standard Hudu documentation folders for a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := a.huduClient()
			if err != nil {
				return err
			}
			// folder provisioning keys on the Hudu company id only; the
			// Action1 mapping is not required here
			company, err := a.chooseCompany(ctx, client)
			if err != nil {
				return err
			}
			fmt.Printf("Folders to provision for %s:\n", company.Name)
			for _, spec := range folders.Catalog() {
				fmt.Printf("  %-24s %s\n", spec.Name, spec.Description)
			}
			fmt.Printf("  %-24s %s (under %s)\n", folders.Nested.Name, folders.Nested.Description, folders.ParentFolderName)
			ok, err := a.prompter.Confirm("Create these folders?")
			if err != nil {
				return err
			}
			if !ok {
				color.Yellow("aborted, nothing created")
				return nil
			}
			summary := folders.Provision(ctx, client, company.ID, a.log)
			switch {
			case summary.NestedSkipped:
				color.Yellow("%d created, %d reused, %d failed; nested folder skipped because %s has no id",
					summary.Created, summary.Reused, summary.Failed, folders.ParentFolderName)
			case summary.Partial():
				color.Yellow("completed with failures: %d created, %d reused, %d failed", summary.Created, summary.Reused, summary.Failed)
			default:
				color.Green("%d folders created, %d reused", summary.Created, summary.Reused)
			}
			return nil
		},
	}
}
