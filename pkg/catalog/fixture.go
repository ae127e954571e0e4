package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Patoch87/DunsHierarchyV2/pkg/apperrors"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
)

// FixtureDataSource is the provenance tag stamped on fixture records.
const FixtureDataSource = "Mock Data"

// Fixture DUNS numbers, in catalog iteration order.
const (
	DUNSApple     = "804735132"
	DUNSMicrosoft = "001234567"
	DUNSGoogle    = "313046411"
	DUNSTesla     = "832563616"
)

// fixtureCatalog serves the built-in reference companies. Records are built
// fresh on every call so callers can attach per-search annotations without
// bleeding state into later searches.
type fixtureCatalog struct {
	order    []string
	builders map[string]func() *models.Company
}

// NewFixtureCatalog returns the four-company reference catalog
// (Apple, Microsoft, Google, Tesla).
func NewFixtureCatalog() Catalog {
	return &fixtureCatalog{
		order: []string{DUNSApple, DUNSMicrosoft, DUNSGoogle, DUNSTesla},
		builders: map[string]func() *models.Company{
			DUNSApple:     appleInc,
			DUNSMicrosoft: microsoftCorp,
			DUNSGoogle:    googleLLC,
			DUNSTesla:     teslaInc,
		},
	}
}

func (c *fixtureCatalog) Get(ctx context.Context, duns string) (*models.Company, error) {
	build, ok := c.builders[duns]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return build(), nil
}

func (c *fixtureCatalog) All(ctx context.Context) ([]*models.Company, error) {
	companies := make([]*models.Company, 0, len(c.order))
	for _, duns := range c.order {
		companies = append(companies, c.builders[duns]())
	}
	return companies, nil
}

// Ensure fixtureCatalog implements Catalog at compile time.
var _ Catalog = (*fixtureCatalog)(nil)

func intp(v int) *int         { return &v }
func f64p(v float64) *float64 { return &v }

func newRecord(duns, name string) models.Company {
	return models.Company{
		ID:          uuid.NewString(),
		DUNS:        duns,
		CompanyName: name,
		LastUpdated: time.Now().UTC(),
		DataSource:  FixtureDataSource,
	}
}

func appleInc() *models.Company {
	c := newRecord(DUNSApple, "Apple Inc.")
	c.LegalName = "Apple Inc."
	c.BusinessType = "Single Location"
	c.OperatingStatus = "Active"
	c.Address = &models.Address{
		Street:     "One Apple Park Way",
		City:       "Cupertino",
		State:      "CA",
		PostalCode: "95014",
		Country:    "United States",
		Continent:  "North America",
		Latitude:   f64p(37.3349),
		Longitude:  f64p(-122.0090),
	}
	c.Phone = "+1 408-996-1010"
	c.Website = "https://www.apple.com"
	c.Email = "contact@apple.com"
	c.PrimarySICCode = "3571"
	c.PrimarySICDescription = "Electronic Computers"
	c.NAICSCode = "334111"
	c.NAICSDescription = "Electronic Computer Manufacturing"
	c.Industry = "Technology Hardware"
	c.EmployeeCount = intp(164000)
	c.AnnualRevenue = "$394.3B USD"
	c.YearStarted = intp(1976)
	c.LegalForm = "Corporation"
	c.RegistrationNumbers = []models.RegistrationNumber{
		{Type: "Federal Tax ID", Number: "94-2404110", IsPreferred: true},
		{Type: "State Registration", Number: "C0806592", Location: "California"},
	}
	c.RankingInfo = &models.RankingInfo{ConfidenceCode: 10, MatchQuality: "Excellent"}

	hq := models.HierarchyMember{
		DUNS:            DUNSApple,
		PrimaryName:     "Apple Inc.",
		LegalName:       "Apple Inc.",
		OperatingStatus: "Active",
		Address: &models.Address{
			Street:  "One Apple Park Way",
			City:    "Cupertino",
			State:   "CA",
			Country: "United States",
		},
		Phone: "+1 408-996-1010",
	}
	c.CorporateHierarchy = &models.CorporateHierarchy{
		GlobalUltimate:   &hq,
		DomesticUltimate: &hq,
		Subsidiaries: []models.HierarchyMember{
			{
				DUNS:                    "804735133",
				PrimaryName:             "Apple Retail, Inc.",
				LegalName:               "Apple Retail, Inc.",
				OperatingStatus:         "Active",
				Address:                 &models.Address{City: "Cupertino", State: "CA", Country: "United States"},
				RelationshipCode:        "SUB",
				RelationshipDescription: "Wholly Owned Subsidiary",
				HierarchyLevel:          intp(2),
			},
			{
				DUNS:                    "804735134",
				PrimaryName:             "Beats Electronics LLC",
				LegalName:               "Beats Electronics LLC",
				OperatingStatus:         "Active",
				Address:                 &models.Address{City: "Culver City", State: "CA", Country: "United States"},
				RelationshipCode:        "SUB",
				RelationshipDescription: "Wholly Owned Subsidiary",
				HierarchyLevel:          intp(2),
			},
		},
		FamilyTreeMembers: []models.HierarchyMember{
			{DUNS: DUNSApple, PrimaryName: "Apple Inc.", HierarchyLevel: intp(1), RelationshipCode: "HQ"},
			{DUNS: "804735133", PrimaryName: "Apple Retail, Inc.", HierarchyLevel: intp(2), RelationshipCode: "SUB"},
			{DUNS: "804735134", PrimaryName: "Beats Electronics LLC", HierarchyLevel: intp(2), RelationshipCode: "SUB"},
		},
	}
	return &c
}

func microsoftCorp() *models.Company {
	c := newRecord(DUNSMicrosoft, "Microsoft Corporation")
	c.LegalName = "Microsoft Corporation"
	c.BusinessType = "Headquarters"
	c.OperatingStatus = "Active"
	c.Address = &models.Address{
		Street:     "One Microsoft Way",
		City:       "Redmond",
		State:      "WA",
		PostalCode: "98052",
		Country:    "United States",
		Continent:  "North America",
	}
	c.Phone = "+1 425-882-8080"
	c.Website = "https://www.microsoft.com"
	c.PrimarySICCode = "7372"
	c.PrimarySICDescription = "Prepackaged Software"
	c.Industry = "Software"
	c.EmployeeCount = intp(221000)
	c.AnnualRevenue = "$211.9B USD"
	c.YearStarted = intp(1975)
	c.LegalForm = "Corporation"
	c.RegistrationNumbers = []models.RegistrationNumber{
		{Type: "Federal Tax ID", Number: "91-1144442", IsPreferred: true},
	}
	c.RankingInfo = &models.RankingInfo{ConfidenceCode: 10}
	c.CorporateHierarchy = &models.CorporateHierarchy{
		GlobalUltimate: &models.HierarchyMember{
			DUNS:            DUNSMicrosoft,
			PrimaryName:     "Microsoft Corporation",
			OperatingStatus: "Active",
		},
		Subsidiaries: []models.HierarchyMember{
			{
				DUNS:             "001234568",
				PrimaryName:      "LinkedIn Corporation",
				OperatingStatus:  "Active",
				RelationshipCode: "SUB",
				HierarchyLevel:   intp(2),
			},
		},
	}
	return &c
}

func googleLLC() *models.Company {
	c := newRecord(DUNSGoogle, "Google LLC")
	c.LegalName = "Google LLC"
	c.BusinessType = "Subsidiary"
	c.OperatingStatus = "Active"
	c.Address = &models.Address{
		Street:     "1600 Amphitheatre Parkway",
		City:       "Mountain View",
		State:      "CA",
		PostalCode: "94043",
		Country:    "United States",
		Continent:  "North America",
	}
	c.Phone = "+1 650-253-0000"
	c.Website = "https://www.google.com"
	c.PrimarySICCode = "7375"
	c.PrimarySICDescription = "Information Retrieval Services"
	c.Industry = "Internet Services"
	c.EmployeeCount = intp(190234)
	c.AnnualRevenue = "$307.4B USD"
	c.YearStarted = intp(1998)
	c.LegalForm = "LLC"
	c.RegistrationNumbers = []models.RegistrationNumber{
		{Type: "Federal Tax ID", Number: "77-0493581", IsPreferred: true},
	}
	c.RankingInfo = &models.RankingInfo{ConfidenceCode: 10}
	c.CorporateHierarchy = &models.CorporateHierarchy{
		GlobalUltimate: &models.HierarchyMember{
			DUNS:            "080442732",
			PrimaryName:     "Alphabet Inc.",
			OperatingStatus: "Active",
		},
		Parent: &models.HierarchyMember{
			DUNS:             "080442732",
			PrimaryName:      "Alphabet Inc.",
			RelationshipCode: "PAR",
		},
	}
	return &c
}

func teslaInc() *models.Company {
	c := newRecord(DUNSTesla, "Tesla, Inc.")
	c.LegalName = "Tesla, Inc."
	c.BusinessType = "Headquarters"
	c.OperatingStatus = "Active"
	c.Address = &models.Address{
		Street:     "1 Tesla Road",
		City:       "Austin",
		State:      "TX",
		PostalCode: "78725",
		Country:    "United States",
		Continent:  "North America",
	}
	c.Phone = "+1 512-516-8177"
	c.Website = "https://www.tesla.com"
	c.PrimarySICCode = "3711"
	c.PrimarySICDescription = "Motor Vehicles & Passenger Car Bodies"
	c.Industry = "Automotive Manufacturing"
	c.EmployeeCount = intp(127855)
	c.AnnualRevenue = "$96.8B USD"
	c.YearStarted = intp(2003)
	c.LegalForm = "Corporation"
	c.RegistrationNumbers = []models.RegistrationNumber{
		{Type: "Federal Tax ID", Number: "91-2197729", IsPreferred: true},
	}
	c.RankingInfo = &models.RankingInfo{ConfidenceCode: 9}
	return &c
}
