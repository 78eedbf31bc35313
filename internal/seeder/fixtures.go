package seeder

import (
	"fmt"
	"os"

	"stone-ledger-backend/internal/database/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money wraps decimal.Decimal so fixture YAML can carry exact amounts as
// scalars ("22000", "1500.50") instead of lossy floats.
type Money struct {
	decimal.Decimal
}

// UnmarshalYAML parses a YAML scalar into an exact decimal
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", value.Value, err)
	}
	m.Decimal = d
	return nil
}

// MaterialFixture is one catalog row to seed
type MaterialFixture struct {
	MaterialType string `yaml:"material_type"`
	RatePerUnit  Money  `yaml:"rate_per_unit"`
	UnitType     string `yaml:"unit_type"`
}

// TruckEntryFixture is one ledger row to seed. DaysAgo offsets the entry date
// from "now"; the entry time is randomized within working hours at seed time.
type TruckEntryFixture struct {
	TruckNumber  string           `yaml:"truck_number"`
	TruckName    string           `yaml:"truck_name"`
	EntryType    models.EntryType `yaml:"entry_type"`
	MaterialType string           `yaml:"material_type,omitempty"`
	Units        Money            `yaml:"units"`
	RatePerUnit  Money            `yaml:"rate_per_unit"`
	DaysAgo      int              `yaml:"days_ago"`
	Notes        string           `yaml:"notes,omitempty"`
}

// ExpenseFixture is one expense row to seed
type ExpenseFixture struct {
	ExpensesName string `yaml:"expenses_name"`
	Amount       Money  `yaml:"amount"`
	Others       string `yaml:"others,omitempty"`
	DaysAgo      int    `yaml:"days_ago"`
}

// Fixtures is the full deterministic dataset the seeder populates
type Fixtures struct {
	OrganizationName  string              `yaml:"organization_name"`
	OperatorUsername  string              `yaml:"operator_username"`
	OperatorEmail     string              `yaml:"operator_email"`
	OperatorPassword  string              `yaml:"operator_password"`
	SalesMaterials    []MaterialFixture   `yaml:"sales_materials"`
	RawStoneMaterials []MaterialFixture   `yaml:"raw_stone_materials"`
	TruckEntries      []TruckEntryFixture `yaml:"truck_entries"`
	Expenses          []ExpenseFixture    `yaml:"expenses"`
}

func money(s string) Money {
	return Money{decimal.RequireFromString(s)}
}

// DefaultFixtures returns the built-in demo dataset: one organization, one
// operator account, 8 sales materials, 1 raw-stone material, 8 truck entries
// and 3 expenses.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		OrganizationName: "Sri Velan Blue Metals",
		OperatorUsername: "velan-operator",
		OperatorEmail:    "operator@stoneledger.local",
		OperatorPassword: "operator123",
		SalesMaterials: []MaterialFixture{
			{MaterialType: "20mm Jalli", RatePerUnit: money("22000"), UnitType: "load"},
			{MaterialType: "40mm Jalli", RatePerUnit: money("21000"), UnitType: "load"},
			{MaterialType: "12mm Jalli", RatePerUnit: money("23000"), UnitType: "load"},
			{MaterialType: "M-Sand", RatePerUnit: money("18000"), UnitType: "load"},
			{MaterialType: "P-Sand", RatePerUnit: money("19500"), UnitType: "load"},
			{MaterialType: "Stone Dust", RatePerUnit: money("9000"), UnitType: "load"},
			{MaterialType: "GSB", RatePerUnit: money("8500"), UnitType: "load"},
			{MaterialType: "Wet Mix", RatePerUnit: money("12000"), UnitType: "load"},
		},
		RawStoneMaterials: []MaterialFixture{
			{MaterialType: "Raw Stone", RatePerUnit: money("6000"), UnitType: "load"},
		},
		TruckEntries: []TruckEntryFixture{
			{TruckNumber: "TN21AB1234", TruckName: "Murugan Transport", EntryType: models.EntryTypeSales, MaterialType: "20mm Jalli", Units: money("10"), RatePerUnit: money("22000"), DaysAgo: 0},
			{TruckNumber: "TN21AB1234", TruckName: "Murugan Transport", EntryType: models.EntryTypeSales, MaterialType: "M-Sand", Units: money("2"), RatePerUnit: money("18000"), DaysAgo: 1},
			{TruckNumber: "TN45CD5678", TruckName: "Amman Lorry Service", EntryType: models.EntryTypeSales, MaterialType: "40mm Jalli", Units: money("3"), RatePerUnit: money("21000"), DaysAgo: 1},
			{TruckNumber: "TN45CD5678", TruckName: "Amman Lorry Service", EntryType: models.EntryTypeSales, MaterialType: "Stone Dust", Units: money("5"), RatePerUnit: money("9000"), DaysAgo: 2},
			{TruckNumber: "TN09EF9012", TruckName: "Selvam Carriers", EntryType: models.EntryTypeSales, MaterialType: "12mm Jalli", Units: money("1"), RatePerUnit: money("23000"), DaysAgo: 3, Notes: "Part load"},
			{TruckNumber: "TN09EF9012", TruckName: "Selvam Carriers", EntryType: models.EntryTypeRawStone, Units: money("4"), RatePerUnit: money("6000"), DaysAgo: 4},
			{TruckNumber: "TN64GH3456", TruckName: "Kumar Tippers", EntryType: models.EntryTypeRawStone, Units: money("6"), RatePerUnit: money("6000"), DaysAgo: 5},
			{TruckNumber: "TN64GH3456", TruckName: "Kumar Tippers", EntryType: models.EntryTypeSales, MaterialType: "GSB", Units: money("8"), RatePerUnit: money("8500"), DaysAgo: 6},
		},
		Expenses: []ExpenseFixture{
			{ExpensesName: "Diesel", Amount: money("4500"), Others: "Crusher generator", DaysAgo: 1},
			{ExpensesName: "Machine maintenance", Amount: money("12500"), Others: "Jaw crusher plate change", DaysAgo: 3},
			{ExpensesName: "Wages advance", Amount: money("8000"), Others: "Weekly advance for loaders", DaysAgo: 6},
		},
	}
}

// LoadFixtures reads a fixture dataset from a YAML file. An empty path
// returns the built-in defaults.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	if err := fixtures.Validate(); err != nil {
		return nil, err
	}
	return &fixtures, nil
}

// Validate rejects fixture files that would seed an inconsistent dataset
func (f *Fixtures) Validate() error {
	if f.OrganizationName == "" {
		return fmt.Errorf("fixtures: organization_name is required")
	}
	if f.OperatorUsername == "" {
		return fmt.Errorf("fixtures: operator_username is required")
	}
	for _, e := range f.TruckEntries {
		if !e.EntryType.IsValid() {
			return fmt.Errorf("fixtures: truck entry %s has invalid entry type %q", e.TruckNumber, e.EntryType)
		}
		if e.EntryType == models.EntryTypeSales && e.MaterialType == "" {
			return fmt.Errorf("fixtures: sales entry %s needs a material type", e.TruckNumber)
		}
		if e.EntryType == models.EntryTypeRawStone && e.MaterialType != "" {
			return fmt.Errorf("fixtures: raw-stone entry %s must not name a material type", e.TruckNumber)
		}
	}
	return nil
}
