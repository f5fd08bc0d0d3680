package models

// Source tells which kind of dataset a store came from.
type Source int

const (
	// SourceListing marks a branch published directly, without a chain.
	SourceListing Source = iota
	// SourceChain marks a branch joined with its chain metadata.
	SourceChain
)

// Store is a branch enriched with its chain metadata, or a directly listed branch.
type Store struct {
	Branch
	Source          Source `json:"-"`
	Company         string `json:"company"`
	CompanyCategory string `json:"company_category"`
	IsOnline        string `json:"is_online"`
}

// NewStore wraps a directly listed branch.
func NewStore(b Branch) Store {
	return Store{Branch: b, Source: SourceListing}
}

// Enrich builds a store from a branch and the metadata of the chain it belongs to.
// Website and is_new come from the chain.
func Enrich(company string, b Branch, c Chain) Store {
	s := Store{
		Branch:          b,
		Source:          SourceChain,
		Company:         company,
		CompanyCategory: c.CompanyCategory,
		IsOnline:        c.IsOnline,
	}
	s.Website = c.Website
	s.IsNew = c.IsNew
	return s
}

// CategoryKey is the value stores are sorted and split by: company_category for chain
// stores, category for listed ones. An empty key means no category.
func (s Store) CategoryKey() string {
	if s.Source == SourceChain {
		return s.CompanyCategory
	}
	return s.Category
}

func (s *Store) field(id string) *string {
	switch id {
	case "company":
		return &s.Company
	case "company_category":
		return &s.CompanyCategory
	case "is_online":
		return &s.IsOnline
	}
	return s.Branch.field(id)
}

// UnmarshalJSON shadows the promoted Branch decoder so enrichment fields are kept.
func (s *Store) UnmarshalJSON(data []byte) error {
	return decodeScalars(data, s.field)
}

// Field returns the value of the column with the given id, or "" for unknown ids.
func (s Store) Field(id string) string {
	if p := s.field(id); p != nil {
		return *p
	}
	return ""
}

// SetField assigns a column value by id. It reports false for unknown ids.
func (s *Store) SetField(id, value string) bool {
	p := s.field(id)
	if p == nil {
		return false
	}
	*p = value
	return true
}
