package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Branch
		expectError bool
	}{
		{
			name:  "string fields",
			input: `{"name":"קפה","latitude":"32.08","longitude":"34.78","kosher":"כן"}`,
			expected: Branch{
				Name:      "קפה",
				Latitude:  "32.08",
				Longitude: "34.78",
				Kosher:    "כן",
			},
		},
		{
			name:  "numbers booleans and nulls",
			input: `{"name":"ACE","latitude":32.5,"longitude":35,"is_new":true,"phone":null}`,
			expected: Branch{
				Name:      "ACE",
				Latitude:  "32.5",
				Longitude: "35",
				IsNew:     "true",
			},
		},
		{
			name:     "unknown keys ignored",
			input:    `{"name":"x","internal_id":7,"tags":["a"]}`,
			expected: Branch{Name: "x"},
		},
		{
			name:        "nested value in known field",
			input:       `{"name":{"he":"x"}}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Branch
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b)
		})
	}
}

func TestChainBranches_UnmarshalJSON_KeepsDocumentOrder(t *testing.T) {
	input := `{"Zara":[{"name":"z1"},{"name":"z2"}],"ACE":[{"name":"a1"}],"Empty":[]}`

	var cb ChainBranches
	require.NoError(t, json.Unmarshal([]byte(input), &cb))

	require.Len(t, cb, 3)
	assert.Equal(t, "Zara", cb[0].Name)
	assert.Equal(t, "ACE", cb[1].Name)
	assert.Equal(t, "Empty", cb[2].Name)
	assert.Equal(t, []Branch{{Name: "z1"}, {Name: "z2"}}, cb[0].Branches)
	assert.Empty(t, cb[2].Branches)
	assert.Equal(t, 3, cb.Len())
}

func TestChainBranches_UnmarshalJSON_RejectsArray(t *testing.T) {
	var cb ChainBranches
	assert.Error(t, json.Unmarshal([]byte(`[{"name":"x"}]`), &cb))
}

func TestChain_UnmarshalJSON(t *testing.T) {
	var c Chain
	err := json.Unmarshal([]byte(`{"company":"ACE","company_category":"בית","website":"ace.co.il","is_online":1,"is_new":false}`), &c)
	require.NoError(t, err)
	assert.Equal(t, Chain{
		Company:         "ACE",
		CompanyCategory: "בית",
		Website:         "ace.co.il",
		IsOnline:        "1",
		IsNew:           "false",
	}, c)
}

func TestIsUsableCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		floor    float64
		expected bool
	}{
		{name: "regular latitude", value: "32.0853", floor: 1.0, expected: true},
		{name: "negative beyond floor", value: "-1.5", floor: 1.0, expected: true},
		{name: "exactly floor", value: "1", floor: 1.0, expected: true},
		{name: "zero", value: "0", floor: 1.0, expected: false},
		{name: "near zero", value: "0.5", floor: 1.0, expected: false},
		{name: "near zero with relaxed floor", value: "0.5", floor: 0.1, expected: true},
		{name: "empty", value: "", floor: 1.0, expected: false},
		{name: "garbage", value: "abc", floor: 1.0, expected: false},
		{name: "surrounding spaces", value: " 34.7 ", floor: 1.0, expected: true},
		{name: "nan", value: "NaN", floor: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUsableCoordinate(tt.value, tt.floor))
		})
	}
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "32.0001", FormatCoordinate(32.0001))
	assert.Equal(t, "34", FormatCoordinate(34))
	v, ok := ParseCoordinate(FormatCoordinate(31.99990606))
	require.True(t, ok)
	assert.Equal(t, 31.99990606, v)
}

func TestStore_CategoryKeyAndFields(t *testing.T) {
	chain := Chain{Company: "ACE", CompanyCategory: "בית וגן", Website: "ace.co.il", IsOnline: "1", IsNew: "0"}
	s := Enrich("ACE", Branch{Name: "ACE Haifa", Category: "ignored", Website: "old", Latitude: "32.8"}, chain)

	assert.Equal(t, "בית וגן", s.CategoryKey())
	assert.Equal(t, "ACE", s.Field("company"))
	assert.Equal(t, "ace.co.il", s.Field("website"))
	assert.Equal(t, "0", s.Field("is_new"))
	assert.Equal(t, "32.8", s.Field("latitude"))
	assert.Equal(t, "", s.Field("no_such_column"))

	listed := NewStore(Branch{Name: "Falafel", Category: "מסעדות"})
	assert.Equal(t, "מסעדות", listed.CategoryKey())

	assert.True(t, listed.SetField("longitude", "34.7"))
	assert.False(t, listed.SetField("bogus", "x"))
	assert.Equal(t, "34.7", listed.Longitude)
}

func TestStore_CategoryKeyEmptyCompany(t *testing.T) {
	s := Enrich("", Branch{Name: "Unnamed", Category: "branch category"}, Chain{CompanyCategory: "מתנות"})
	assert.Equal(t, SourceChain, s.Source)
	assert.Equal(t, "מתנות", s.CategoryKey())

	blank := Enrich("", Branch{Category: "branch category"}, Chain{})
	assert.Equal(t, "", blank.CategoryKey())
}

func TestNewLocation(t *testing.T) {
	s := NewStore(Branch{Name: "Falafel", Category: "מסעדות", Region: "מרכז", Latitude: "32.1", Longitude: "34.8"})
	loc, ok := NewLocation("teamim", s)
	require.True(t, ok)
	assert.Equal(t, Location{
		Dataset:   "teamim",
		Name:      "Falafel",
		Category:  "מסעדות",
		City:      "מרכז",
		Latitude:  32.1,
		Longitude: 34.8,
	}, loc)

	_, ok = NewLocation("teamim", NewStore(Branch{Latitude: "x", Longitude: "34"}))
	assert.False(t, ok)
}
