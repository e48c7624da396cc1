// Package folders provisions the standard documentation folder tree for a
// client company in Hudu.
package folders

import (
	"context"

	"github.com/nmasdoufi/hudubridge/pkg/hudu"
	"github.com/nmasdoufi/hudubridge/pkg/logging"
)

// Spec names one folder of the standard tree.
type Spec struct {
	Name        string
	Description string
}

// ParentFolderName is the top-level folder the nested folder hangs under.
const ParentFolderName = "OnboardingDocumentation"

// catalog is the fixed set of top-level folders every client gets.
var catalog = []Spec{
	{"OnboardingDocumentation", "Signed agreements, intake forms and onboarding checklists"},
	{"Networking", "Network diagrams, device configs and circuit details"},
	{"Servers", "Server builds, roles and maintenance history"},
	{"Workstations", "Workstation standards and deployment notes"},
	{"Printers", "Printer inventory, drivers and deployment shares"},
	{"Applications", "Line-of-business application notes and vendor support"},
	{"Backups", "Backup schedules, retention and restore test records"},
	{"Security", "Security policies, AV exclusions and incident notes"},
	{"Licensing", "License keys, counts and renewal dates"},
	{"VendorContacts", "ISP, telco and software vendor escalation contacts"},
}

// Nested is the one folder created under ParentFolderName.
var Nested = Spec{Name: "PreOnboarding", Description: "Material gathered before the onboarding engagement starts"}

// Catalog returns the top-level folder catalog.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// API is the slice of the Hudu client provisioning needs.
type API interface {
	FindFolder(ctx context.Context, companyID int, name string) (*hudu.Folder, error)
	CreateFolder(ctx context.Context, params hudu.FolderParams) (*hudu.Folder, error)
}

// Summary reports the outcome of one provisioning run.
type Summary struct {
	Created       int
	Reused        int
	Failed        int
	NestedSkipped bool
}

// Partial reports whether any folder failed or was skipped.
func (s Summary) Partial() bool {
	return s.Failed > 0 || s.NestedSkipped
}

// Provision creates the standard tree under the company. Existing folders of
// the same name are reused rather than duplicated. Per-folder failures are
// logged and do not stop the run; the nested folder is skipped when its
// parent's id was not captured.
func Provision(ctx context.Context, api API, companyID int, log *logging.Logger) Summary {
	var summary Summary
	var parentID *int
	for _, spec := range catalog {
		folder, err := ensure(ctx, api, companyID, spec, nil)
		if err != nil {
			summary.Failed++
			log.Errorf("folder %q: %v", spec.Name, err)
			continue
		}
		if folder.reused {
			summary.Reused++
			log.Infof("folder %q already present (id %d)", spec.Name, folder.id)
		} else {
			summary.Created++
			log.Infof("created folder %q (id %d)", spec.Name, folder.id)
		}
		if spec.Name == ParentFolderName {
			id := folder.id
			parentID = &id
		}
	}
	if parentID == nil {
		summary.NestedSkipped = true
		log.Errorf("skipping nested folder %q: parent %q id was not captured", Nested.Name, ParentFolderName)
		return summary
	}
	folder, err := ensure(ctx, api, companyID, Nested, parentID)
	if err != nil {
		summary.Failed++
		log.Errorf("nested folder %q: %v", Nested.Name, err)
		return summary
	}
	if folder.reused {
		summary.Reused++
		log.Infof("nested folder %q already present (id %d)", Nested.Name, folder.id)
	} else {
		summary.Created++
		log.Infof("created nested folder %q under %q (id %d)", Nested.Name, ParentFolderName, folder.id)
	}
	return summary
}

type ensured struct {
	id     int
	reused bool
}

func ensure(ctx context.Context, api API, companyID int, spec Spec, parentID *int) (ensured, error) {
	existing, err := api.FindFolder(ctx, companyID, spec.Name)
	if err != nil {
		return ensured{}, err
	}
	if existing != nil {
		return ensured{id: existing.ID, reused: true}, nil
	}
	created, err := api.CreateFolder(ctx, hudu.FolderParams{
		CompanyID:      companyID,
		Name:           spec.Name,
		Description:    spec.Description,
		ParentFolderID: parentID,
	})
	if err != nil {
		return ensured{}, err
	}
	return ensured{id: created.ID}, nil
}
