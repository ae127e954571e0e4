package models

import (
	"time"
)

// Address is a denormalized location snapshot. Every field is optional;
// there is no invariant beyond internal consistency.
type Address struct {
	Street          string   `json:"street,omitempty"`
	AdditionalLines []string `json:"additional_lines,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	PostalCode      string   `json:"postal_code,omitempty"`
	Country         string   `json:"country,omitempty"`
	Continent       string   `json:"continent,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

// RegistrationNumber is a national or regional identifier carried by a
// company record. Number may contain formatting characters; it is matched
// as an opaque string, never parsed.
type RegistrationNumber struct {
	Type        string `json:"type"`
	Number      string `json:"number"`
	IsPreferred bool   `json:"is_preferred,omitempty"`
	Class       string `json:"class,omitempty"`
	Location    string `json:"location,omitempty"`
}

// RankingInfo describes match certainty for a resolved record. Confidence is
// descriptive metadata only; results are never sorted by it.
type RankingInfo struct {
	ConfidenceCode int    `json:"confidence_code"`
	MatchQuality   string `json:"match_quality,omitempty"`
}

// Company is the searchable and cacheable unit. DUNS is the stable primary
// key and the sole cache key. Records are read-only facts sourced from the
// catalog; SearchCriteria is per-search presentation metadata attached after
// matching, not part of the record's identity.
type Company struct {
	ID                    string               `json:"id"`
	DUNS                  string               `json:"duns"`
	CompanyName           string               `json:"company_name"`
	LegalName             string               `json:"legal_name,omitempty"`
	BusinessType          string               `json:"business_type,omitempty"`
	OperatingStatus       string               `json:"operating_status,omitempty"`
	Address               *Address             `json:"address,omitempty"`
	MailingAddress        *Address             `json:"mailing_address,omitempty"`
	Phone                 string               `json:"phone,omitempty"`
	Fax                   string               `json:"fax,omitempty"`
	Email                 string               `json:"email,omitempty"`
	Website               string               `json:"website,omitempty"`
	PrimarySICCode        string               `json:"primary_sic_code,omitempty"`
	PrimarySICDescription string               `json:"primary_sic_description,omitempty"`
	NAICSCode             string               `json:"naics_code,omitempty"`
	NAICSDescription      string               `json:"naics_description,omitempty"`
	Industry              string               `json:"industry,omitempty"`
	EmployeeCount         *int                 `json:"employee_count,omitempty"`
	AnnualRevenue         string               `json:"annual_revenue,omitempty"`
	YearStarted           *int                 `json:"year_started,omitempty"`
	LegalForm             string               `json:"legal_form,omitempty"`
	RegistrationNumbers   []RegistrationNumber `json:"registration_numbers,omitempty"`
	RankingInfo           *RankingInfo         `json:"ranking_info,omitempty"`
	CorporateHierarchy    *CorporateHierarchy  `json:"corporate_hierarchy,omitempty"`
	LastUpdated           time.Time            `json:"last_updated"`
	DataSource            string               `json:"data_source"`
	SearchCriteria        map[string]any       `json:"search_criteria,omitempty"`

	// Extensions carries provider-side fields this service does not model.
	// Tolerated for schema drift, never consulted by the resolution engine.
	Extensions map[string]any `json:"extensions,omitempty"`
}
