package models

// HierarchyMember is a lightweight projection of a company used only inside
// hierarchy views. Members never embed a nested hierarchy, so family trees
// cannot nest cyclically.
// JSON field names follow the upstream directory's camelCase convention.
type HierarchyMember struct {
	DUNS                    string   `json:"duns"`
	PrimaryName             string   `json:"primaryName"`
	LegalName               string   `json:"legalName,omitempty"`
	OperatingStatus         string   `json:"operatingStatus,omitempty"`
	Address                 *Address `json:"address,omitempty"`
	Phone                   string   `json:"phone,omitempty"`
	Email                   string   `json:"email,omitempty"`
	Website                 string   `json:"website,omitempty"`
	RelationshipCode        string   `json:"relationshipCode,omitempty"`
	RelationshipDescription string   `json:"relationshipDescription,omitempty"`
	HierarchyLevel          *int     `json:"hierarchyLevel,omitempty"` // 1 = top of tree
	Industry                string   `json:"industry,omitempty"`
	EmployeeCount           *int     `json:"employeeCount,omitempty"`
	SalesVolume             string   `json:"salesVolume,omitempty"`
	YearStarted             *int     `json:"yearStarted,omitempty"`
	LegalForm               string   `json:"legalForm,omitempty"`
	NationalIDs             string   `json:"nationalIds,omitempty"`
}

// CorporateHierarchy is the corporate family view of a company.
// GlobalUltimate and DomesticUltimate may reference the same member when a
// company is its own top of hierarchy; equality is by DUNS, not identity.
type CorporateHierarchy struct {
	GlobalUltimate    *HierarchyMember  `json:"globalUltimate,omitempty"`
	DomesticUltimate  *HierarchyMember  `json:"domesticUltimate,omitempty"`
	Parent            *HierarchyMember  `json:"parent,omitempty"`
	Subsidiaries      []HierarchyMember `json:"subsidiaries"`
	FamilyTreeMembers []HierarchyMember `json:"familyTreeMembers"`
}
