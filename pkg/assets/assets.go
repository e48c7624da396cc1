// Package assets mirrors Action1 endpoint inventory into Hudu asset records
// under the "Computer Assets" layout.
package assets

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nmasdoufi/hudubridge/pkg/hudu"
	"github.com/nmasdoufi/hudubridge/pkg/inventory"
	"github.com/nmasdoufi/hudubridge/pkg/logging"
)

// LayoutName is the asset layout computer assets are filed under.
const LayoutName = "Computer Assets"

// Field labels of the layout, also the mapping targets for endpoint records.
const (
	fieldBrand      = "Brand"
	fieldDisk       = "Disk"
	fieldServiceTag = "Service Tag"
	fieldRAM        = "RAM"
	fieldOS         = "OS"
)

func layoutFields() []hudu.LayoutFieldParams {
	return []hudu.LayoutFieldParams{
		{Label: fieldBrand, FieldType: "Text", Position: 1},
		{Label: fieldDisk, FieldType: "Text", Position: 2},
		{Label: fieldServiceTag, FieldType: "Text", Position: 3},
		{Label: fieldRAM, FieldType: "Text", Position: 4},
		{Label: fieldOS, FieldType: "Text", Position: 5},
	}
}

// LayoutAPI is the slice of the Hudu client layout handling needs.
type LayoutAPI interface {
	ListAssetLayouts(ctx context.Context) ([]hudu.AssetLayout, error)
	GetAssetLayout(ctx context.Context, id int) (*hudu.AssetLayout, error)
	CreateAssetLayout(ctx context.Context, params hudu.LayoutParams) (*hudu.AssetLayout, error)
}

// EnsureLayout returns the "Computer Assets" layout, creating it only when
// absent. Re-running never creates a second layout of the same name.
func EnsureLayout(ctx context.Context, api LayoutAPI) (*hudu.AssetLayout, error) {
	layouts, err := api.ListAssetLayouts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list asset layouts")
	}
	for _, layout := range layouts {
		if layout.Name == LayoutName {
			if len(layout.Fields) > 0 {
				found := layout
				return &found, nil
			}
			// list responses may omit fields; fetch the full layout
			return api.GetAssetLayout(ctx, layout.ID)
		}
	}
	created, err := api.CreateAssetLayout(ctx, hudu.LayoutParams{
		Name:   LayoutName,
		Icon:   "fas fa-desktop",
		Color:  "#5b17f2",
		Fields: layoutFields(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create asset layout %q", LayoutName)
	}
	return created, nil
}

// CreatorAPI is the slice of the Hudu client asset creation needs.
type CreatorAPI interface {
	CreateAsset(ctx context.Context, companyID int, params hudu.AssetParams) (*hudu.Asset, error)
}

// Summary reports the outcome of one creation run.
type Summary struct {
	Created int
	Failed  int
}

// Partial reports whether any asset failed.
func (s Summary) Partial() bool { return s.Failed > 0 }

// Create files one asset per endpoint under the company. A failed create is
// logged with the endpoint name and does not stop the remaining endpoints.
func Create(ctx context.Context, api CreatorAPI, companyID int, layout *hudu.AssetLayout, endpoints []inventory.Endpoint, log *logging.Logger) Summary {
	fieldIDs := map[string]int{}
	for _, f := range layout.Fields {
		fieldIDs[f.Label] = f.ID
	}
	var summary Summary
	for _, e := range endpoints {
		params := hudu.AssetParams{
			AssetLayoutID: layout.ID,
			Name:          e.Name,
			Fields:        mapFields(fieldIDs, e, log),
		}
		asset, err := api.CreateAsset(ctx, companyID, params)
		if err != nil {
			summary.Failed++
			log.Errorf("asset %q: %v", e.Name, err)
			continue
		}
		summary.Created++
		log.Infof("created asset %q (id %d)", e.Name, asset.ID)
	}
	return summary
}

func mapFields(fieldIDs map[string]int, e inventory.Endpoint, log *logging.Logger) []hudu.AssetField {
	values := []struct {
		label string
		value string
	}{
		{fieldBrand, e.Brand},
		{fieldDisk, e.Disk},
		{fieldServiceTag, e.Serial},
		{fieldRAM, e.RAM},
		{fieldOS, e.OS},
	}
	fields := make([]hudu.AssetField, 0, len(values))
	for _, v := range values {
		id, ok := fieldIDs[v.label]
		if !ok {
			log.Warnf("layout %q has no %q field; dropping value for %q", LayoutName, v.label, e.Name)
			continue
		}
		fields = append(fields, hudu.AssetField{AssetLayoutFieldID: id, Value: v.value})
	}
	return fields
}
