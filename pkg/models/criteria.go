package models

import "encoding/json"

// SearchCriteria is the request shape for unified search. A field is
// considered supplied when it is non-empty (strings) or true (flags); the
// resolution engine inspects only the first supplied category, in the order
// documented in services.SearchService.
//
// Unrecognized request keys are preserved in Extra for forward compatibility
// but are never consulted during matching.
type SearchCriteria struct {
	DUNS            string `json:"duns,omitempty"`
	LocalIdentifier string `json:"local_identifier,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	State           string `json:"state,omitempty"`
	Country         string `json:"country,omitempty"`
	Continent       string `json:"continent,omitempty"`
	PhoneFax        string `json:"phone_fax,omitempty"`
	HasPhone        bool   `json:"has_phone,omitempty"`
	HasFax          bool   `json:"has_fax,omitempty"`
	ExactMatch      bool   `json:"exact_match,omitempty"`

	Extra map[string]any `json:"-"`
}

// criteriaKeys are the recognized request fields; anything else lands in Extra.
var criteriaKeys = map[string]struct{}{
	"duns": {}, "local_identifier": {}, "company_name": {},
	"address": {}, "city": {}, "postal_code": {}, "state": {},
	"country": {}, "continent": {}, "phone_fax": {},
	"has_phone": {}, "has_fax": {}, "exact_match": {},
}

// UnmarshalJSON decodes the typed fields and collects unrecognized keys
// into Extra.
func (c *SearchCriteria) UnmarshalJSON(data []byte) error {
	type alias SearchCriteria
	var typed alias
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range criteriaKeys {
		delete(raw, key)
	}

	*c = SearchCriteria(typed)
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// Supplied returns the criteria as a key/value map containing only the
// fields the caller actually set, including unrecognized extras. This is the
// annotation attached to matched companies as search_criteria.
func (c *SearchCriteria) Supplied() map[string]any {
	m := make(map[string]any)
	if c.DUNS != "" {
		m["duns"] = c.DUNS
	}
	if c.LocalIdentifier != "" {
		m["local_identifier"] = c.LocalIdentifier
	}
	if c.CompanyName != "" {
		m["company_name"] = c.CompanyName
	}
	if c.Address != "" {
		m["address"] = c.Address
	}
	if c.City != "" {
		m["city"] = c.City
	}
	if c.PostalCode != "" {
		m["postal_code"] = c.PostalCode
	}
	if c.State != "" {
		m["state"] = c.State
	}
	if c.Country != "" {
		m["country"] = c.Country
	}
	if c.Continent != "" {
		m["continent"] = c.Continent
	}
	if c.PhoneFax != "" {
		m["phone_fax"] = c.PhoneFax
	}
	if c.HasPhone {
		m["has_phone"] = true
	}
	if c.HasFax {
		m["has_fax"] = true
	}
	if c.ExactMatch {
		m["exact_match"] = true
	}
	for key, value := range c.Extra {
		m[key] = value
	}
	return m
}
