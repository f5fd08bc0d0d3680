package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Branch is a single physical store location as published in the upstream datasets.
// Every field is optional; upstream values of any JSON scalar type are kept in textual form.
type Branch struct {
	Name       string `json:"name"`
	Desc       string `json:"desc"`
	Type       string `json:"type"`
	Hours      string `json:"hours"`
	Address    string `json:"address"`
	Website    string `json:"website"`
	Phone      string `json:"phone"`
	IsDelivery string `json:"is_delivery"`
	Kosher     string `json:"kosher"`
	Handicap   string `json:"handicap"`
	Category   string `json:"category"`
	City       string `json:"city"`
	Area       string `json:"area"`
	Region     string `json:"region"`
	IsNew      string `json:"is_new"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
}

func (b *Branch) field(id string) *string {
	switch id {
	case "name":
		return &b.Name
	case "desc":
		return &b.Desc
	case "type":
		return &b.Type
	case "hours":
		return &b.Hours
	case "address":
		return &b.Address
	case "website":
		return &b.Website
	case "phone":
		return &b.Phone
	case "is_delivery":
		return &b.IsDelivery
	case "kosher":
		return &b.Kosher
	case "handicap":
		return &b.Handicap
	case "category":
		return &b.Category
	case "city":
		return &b.City
	case "area":
		return &b.Area
	case "region":
		return &b.Region
	case "is_new":
		return &b.IsNew
	case "latitude":
		return &b.Latitude
	case "longitude":
		return &b.Longitude
	}
	return nil
}

// UnmarshalJSON decodes a branch object, accepting strings, numbers and booleans for any field.
func (b *Branch) UnmarshalJSON(data []byte) error {
	return decodeScalars(data, func(key string) *string { return b.field(key) })
}

// Chain is the chain-level metadata record joined onto branches by company name.
type Chain struct {
	Company         string `json:"company"`
	CompanyCategory string `json:"company_category"`
	Website         string `json:"website"`
	IsOnline        string `json:"is_online"`
	IsNew           string `json:"is_new"`
}

func (c *Chain) UnmarshalJSON(data []byte) error {
	return decodeScalars(data, func(key string) *string {
		switch key {
		case "company":
			return &c.Company
		case "company_category":
			return &c.CompanyCategory
		case "website":
			return &c.Website
		case "is_online":
			return &c.IsOnline
		case "is_new":
			return &c.IsNew
		}
		return nil
	})
}

// ChainGroup holds the branches published under one chain name.
type ChainGroup struct {
	Name     string
	Branches []Branch
}

// ChainBranches maps chain names to their branches, keeping the order of the source document.
type ChainBranches []ChainGroup

// UnmarshalJSON decodes a `{"<chain>": [branch, ...], ...}` object in document order.
func (cb *ChainBranches) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("models: chain branches must be an object, got %v", tok)
	}

	groups := ChainBranches{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("models: unexpected key %v", tok)
		}

		var branches []Branch
		if err := dec.Decode(&branches); err != nil {
			return fmt.Errorf("models: chain %q: %w", name, err)
		}
		groups = append(groups, ChainGroup{Name: name, Branches: branches})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*cb = groups
	return nil
}

// Len returns the total number of branches across all chains.
func (cb ChainBranches) Len() int {
	n := 0
	for _, g := range cb {
		n += len(g.Branches)
	}
	return n
}

func decodeScalars(data []byte, target func(key string) *string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		dst := target(key)
		if dst == nil {
			continue
		}
		s, err := scalarText(value)
		if err != nil {
			return fmt.Errorf("models: field %q: %w", key, err)
		}
		*dst = s
	}
	return nil
}

func scalarText(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", nil
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a scalar value, got %s", value[:1])
	default:
		// numbers and booleans keep their literal form
		return string(value), nil
	}
}
