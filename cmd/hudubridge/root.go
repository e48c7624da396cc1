package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nmasdoufi/hudubridge/pkg/action1"
	"github.com/nmasdoufi/hudubridge/pkg/config"
	"github.com/nmasdoufi/hudubridge/pkg/hudu"
	"github.com/nmasdoufi/hudubridge/pkg/logging"
	"github.com/nmasdoufi/hudubridge/pkg/prompt"
	"github.com/nmasdoufi/hudubridge/pkg/resolve"
)

// app carries the pieces every subcommand shares: config, console logger and
// the interactive prompter.
type app struct {
	configPath string
	cfg        *config.Config
	log        *logging.Logger
	prompter   *prompt.Prompter
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "hudubridge",
		Short:         "Bridge client organizations between Hudu and Action1",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			log, err := logging.New("", logging.ParseLevel(cfg.Logging.Level))
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			a.prompter = prompt.New()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to optional YAML config file")
	root.AddCommand(newReportsCmd(a), newExportCmd(a), newAssetsCmd(a), newFoldersCmd(a))
	return root
}

// huduClient acquires the Hudu credential and tenant domain, then builds the
// client. Missing credential is fatal before any request is made.
func (a *app) huduClient() (*hudu.Client, error) {
	apiKey, err := a.prompter.Credential(config.EnvHuduAPIKey, "Hudu API key")
	if err != nil {
		return nil, err
	}
	domain, err := a.prompter.Line("Hudu base domain (e.g. acme.huducloud.com)", a.cfg.Hudu.BaseDomain)
	if err != nil {
		return nil, err
	}
	return hudu.NewClient(domain, apiKey), nil
}

// chooseCompany prompts for the company name and resolves it, walking the
// operator through disambiguation when several companies share the name.
func (a *app) chooseCompany(ctx context.Context, client *hudu.Client) (hudu.Company, error) {
	name, err := a.prompter.Line("Company name", "")
	if err != nil {
		return hudu.Company{}, err
	}
	if name == "" {
		return hudu.Company{}, errors.New("company name is required")
	}
	company, err := resolve.Company(ctx, client, name)
	if err == nil {
		return company, nil
	}
	var ambiguous *resolve.AmbiguousError
	if errors.As(err, &ambiguous) {
		return a.pickCompany(ambiguous)
	}
	if errors.Is(err, resolve.ErrNotFound) {
		return hudu.Company{}, errors.Wrap(err, "verify the company name in Hudu")
	}
	return hudu.Company{}, err
}

func (a *app) pickCompany(ambiguous *resolve.AmbiguousError) (hudu.Company, error) {
	fmt.Printf("%d companies match %q:\n", len(ambiguous.Candidates), ambiguous.Name)
	for i, c := range ambiguous.Candidates {
		fmt.Printf("  %d) %s (company id %d, org id %q)\n", i+1, c.Name, c.ID, c.IDNumber)
	}
	answer, err := a.prompter.Line("Select a company by number", "")
	if err != nil {
		return hudu.Company{}, err
	}
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > len(ambiguous.Candidates) {
		return hudu.Company{}, errors.Errorf("invalid selection %q", answer)
	}
	return ambiguous.Candidates[idx-1], nil
}

// resolveOrg resolves a company and requires its Action1 org mapping.
func (a *app) resolveOrg(ctx context.Context, client *hudu.Client) (resolve.Org, error) {
	company, err := a.chooseCompany(ctx, client)
	if err != nil {
		return resolve.Org{}, err
	}
	org, err := resolve.FromCompany(company)
	if errors.Is(err, resolve.ErrMissingOrgMapping) {
		return resolve.Org{}, errors.Wrap(err, "populate the company's id_number field in Hudu with its Action1 org id")
	}
	return org, err
}

// action1Session acquires the Action1 credential pair and region, then
// connects. A setup failure is fatal; no inventory call runs against an
// unconnected session.
func (a *app) action1Session(ctx context.Context) (*action1.Session, error) {
	clientID, err := a.prompter.Credential(config.EnvAction1ClientID, "Action1 API key")
	if err != nil {
		return nil, err
	}
	clientSecret, err := a.prompter.Credential(config.EnvAction1ClientSecret, "Action1 API secret")
	if err != nil {
		return nil, err
	}
	regionInput, err := a.prompter.Line("Action1 region (NorthAmerica/Europe)", a.cfg.Action1.Region)
	if err != nil {
		return nil, err
	}
	region, err := action1.ParseRegion(regionInput)
	if err != nil {
		return nil, err
	}
	session := action1.NewSession(action1.Config{ClientID: clientID, ClientSecret: clientSecret, Region: region})
	if err := session.Connect(ctx); err != nil {
		return nil, errors.Wrap(err, "action1 session setup")
	}
	return session, nil
}
