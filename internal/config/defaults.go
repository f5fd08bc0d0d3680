package config

const datasetsURL = "https://www.hvr.co.il/bs2/datasets/"

// ChainColumns is the header of chain-card batches.
var ChainColumns = []Column{
	{ID: "company", Title: "חברה"},
	{ID: "name", Title: "שם"},
	{ID: "company_category", Title: "קטגוריה"},
	{ID: "website", Title: "אתר אינטרנט"},
	{ID: "address", Title: "כתובת"},
	{ID: "phone", Title: "טלפון"},
	{ID: "is_online", Title: "קניות אונליין"},
	{ID: "region", Title: "אזור"},
	{ID: "is_new", Title: "חדש"},
	{ID: "latitude", Title: "latitude"},
	{ID: "longitude", Title: "longitude"},
}

// ListingColumns is the header of directly listed (restaurant) batches.
var ListingColumns = []Column{
	{ID: "name", Title: "שם"},
	{ID: "desc", Title: "תיאור"},
	{ID: "type", Title: "סוג"},
	{ID: "hours", Title: "שעות פתיחה"},
	{ID: "address", Title: "כתובת"},
	{ID: "website", Title: "אתר אינטרנט"},
	{ID: "phone", Title: "טלפון"},
	{ID: "is_delivery", Title: "משלוחים"},
	{ID: "kosher", Title: "כשרות"},
	{ID: "handicap", Title: "נגישות לנכים"},
	{ID: "category", Title: "קטגוריה"},
	{ID: "city", Title: "עיר"},
	{ID: "area", Title: "אזור"},
	{ID: "is_new", Title: "חדש"},
	{ID: "latitude", Title: "latitude"},
	{ID: "longitude", Title: "longitude"},
}

// DefaultListings returns the teamim restaurant listing.
func DefaultListings() []Listing {
	return []Listing{
		{
			Name:    "teamim",
			Source:  Source{URL: datasetsURL + "teamimcard_branches.json", File: "teamimcard_branches.json"},
			RootKey: "branch",
			Output:  "teamim",
			Columns: ListingColumns,
		},
	}
}

// DefaultChainFamilies returns the keva (giftcard) and mcc chain-card families.
func DefaultChainFamilies() []ChainFamily {
	return []ChainFamily{
		{
			Name:      "keva",
			Branches:  Source{URL: datasetsURL + "giftcard_branches.json", File: "giftcard_branches.json"},
			Chains:    Source{URL: datasetsURL + "giftcard.json", File: "giftcard.json"},
			ChainsKey: "corps",
			Output:    "keva",
			Columns:   ChainColumns,
		},
		{
			Name:      "mcc",
			Branches:  Source{URL: datasetsURL + "mcccard_branches.json", File: "mcccard_branches.json"},
			Chains:    Source{URL: datasetsURL + "mcccard.json", File: "mcccard.json"},
			ChainsKey: "corps",
			Output:    "mcc",
			Columns:   ChainColumns,
		},
	}
}
