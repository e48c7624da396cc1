// Package resolve turns a human-entered company name into the identifiers
// the two platforms key on: the Hudu company id and the Action1 org id
// stored in Hudu's id_number field.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nmasdoufi/hudubridge/pkg/hudu"
)

// ErrNotFound reports that no company matched the entered name.
var ErrNotFound = errors.New("no matching company")

// ErrMissingOrgMapping reports that the company exists in Hudu but its
// id_number field, which must hold the Action1 org id, is blank.
var ErrMissingOrgMapping = errors.New("company has no Action1 org id configured")

// AmbiguousError reports that more than one company matched the name.
// The operator must pick one; resolution never silently takes the first.
type AmbiguousError struct {
	Name       string
	Candidates []hudu.Company
}

func (e *AmbiguousError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		names[i] = fmt.Sprintf("%s (company id %d)", c.Name, c.ID)
	}
	return fmt.Sprintf("%d companies match %q: %s", len(e.Candidates), e.Name, strings.Join(names, ", "))
}

// Org is a fully resolved organization.
type Org struct {
	CompanyID int    // Hudu internal company id, used for folders and assets
	OrgID     string // Action1 org id from the id_number field
	Name      string
}

// CompanyFinder is the slice of the Hudu client resolution needs.
type CompanyFinder interface {
	FindCompanies(ctx context.Context, name string) ([]hudu.Company, error)
}

// Company looks up exactly one company by name. Zero matches is ErrNotFound,
// several matches is *AmbiguousError.
func Company(ctx context.Context, finder CompanyFinder, name string) (hudu.Company, error) {
	companies, err := finder.FindCompanies(ctx, name)
	if err != nil {
		return hudu.Company{}, errors.Wrapf(err, "look up company %q", name)
	}
	switch len(companies) {
	case 0:
		return hudu.Company{}, errors.Wrapf(ErrNotFound, "%q", name)
	case 1:
		return companies[0], nil
	default:
		return hudu.Company{}, &AmbiguousError{Name: name, Candidates: companies}
	}
}

// Lookup resolves a name straight to an Org, requiring the Action1 mapping
// to be present. Ambiguous names surface as *AmbiguousError for the caller
// to settle with the operator.
func Lookup(ctx context.Context, finder CompanyFinder, name string) (Org, error) {
	company, err := Company(ctx, finder, name)
	if err != nil {
		return Org{}, err
	}
	return FromCompany(company)
}

// FromCompany converts an already-chosen company into an Org, failing with
// ErrMissingOrgMapping when the id_number field is blank.
func FromCompany(company hudu.Company) (Org, error) {
	orgID := strings.TrimSpace(company.IDNumber)
	if orgID == "" {
		return Org{}, errors.Wrapf(ErrMissingOrgMapping, "company %q (id %d)", company.Name, company.ID)
	}
	return Org{CompanyID: company.ID, OrgID: orgID, Name: company.Name}, nil
}
