package hudu

// Company is a client organization in Hudu. IDNumber carries the
// cross-system identifier that designates the matching Action1 organization;
// it is operator-maintained and may be blank.
type Company struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
}

// Folder is a named documentation container scoped to one company.
type Folder struct {
	ID             int    `json:"id"`
	CompanyID      int    `json:"company_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ParentFolderID *int   `json:"parent_folder_id"`
}

// FolderParams describes a folder to create.
type FolderParams struct {
	CompanyID      int    `json:"company_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ParentFolderID *int   `json:"parent_folder_id,omitempty"`
}

// AssetLayout is a named schema of typed fields that assets conform to.
type AssetLayout struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Fields []LayoutField `json:"fields"`
}

// LayoutField is one typed field of an asset layout.
type LayoutField struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
	Position  int    `json:"position"`
}

// LayoutParams describes an asset layout to create.
type LayoutParams struct {
	Name   string              `json:"name"`
	Icon   string              `json:"icon,omitempty"`
	Color  string              `json:"color,omitempty"`
	Fields []LayoutFieldParams `json:"fields"`
}

// LayoutFieldParams describes one field of a layout to create.
type LayoutFieldParams struct {
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
	Position  int    `json:"position"`
}

// Asset is a created asset record.
type Asset struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AssetParams describes an asset to create under a company.
type AssetParams struct {
	AssetLayoutID int          `json:"asset_layout_id"`
	Name          string       `json:"name"`
	Fields        []AssetField `json:"fields,omitempty"`
}

// AssetField carries one field value keyed by the layout field id.
type AssetField struct {
	AssetLayoutFieldID int    `json:"asset_layout_field_id"`
	Value              string `json:"value"`
}
