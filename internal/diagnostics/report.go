package diagnostics

import (
	"fmt"

	"stone-ledger-backend/internal/database/models"
	"stone-ledger-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BridgeReport is a read-only snapshot of the entry-type/material bridge
// table, used to verify seeded data and debug missing mappings.
type BridgeReport struct {
	TotalMappings int64                      `json:"total_mappings"`
	CountsByType  map[models.EntryType]int64 `json:"counts_by_type"`
	Mappings      []MappingRow               `json:"mappings"`
	MaterialRates []RateRow                  `json:"material_rates"`
}

// MappingRow is one bridge row joined with its material rate
type MappingRow struct {
	MappingID      uuid.UUID        `json:"mapping_id"`
	OrganizationID uuid.UUID        `json:"organization_id"`
	EntryType      models.EntryType `json:"entry_type"`
	MaterialType   string           `json:"material_type"`
}

// RateRow is one catalog entry
type RateRow struct {
	RateID         uuid.UUID       `json:"rate_id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	MaterialType   string          `json:"material_type"`
	RatePerUnit    decimal.Decimal `json:"rate_per_unit"`
	UnitType       string          `json:"unit_type"`
	IsActive       bool            `json:"is_active"`
}

// Reporter builds bridge reports from the repositories
type Reporter struct {
	mappings repository.EntryTypeMaterialRepositoryInterface
	rates    repository.MaterialRateRepositoryInterface
}

// NewReporter creates a bridge reporter
func NewReporter(
	mappings repository.EntryTypeMaterialRepositoryInterface,
	rates repository.MaterialRateRepositoryInterface,
) *Reporter {
	return &Reporter{mappings: mappings, rates: rates}
}

// Report builds a snapshot across all organizations
func (r *Reporter) Report() (*BridgeReport, error) {
	total, err := r.mappings.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count mappings: %w", err)
	}

	byType, err := r.mappings.CountByEntryType()
	if err != nil {
		return nil, fmt.Errorf("failed to count mappings by entry type: %w", err)
	}

	all, err := r.mappings.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	mappingRows := make([]MappingRow, len(all))
	for i, m := range all {
		mappingRows[i] = MappingRow{
			MappingID:      m.ID,
			OrganizationID: m.OrganizationID,
			EntryType:      m.EntryType,
			MaterialType:   m.MaterialRate.MaterialType,
		}
	}

	rates, err := r.rates.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list material rates: %w", err)
	}
	rateRows := make([]RateRow, len(rates))
	for i, rate := range rates {
		rateRows[i] = RateRow{
			RateID:         rate.ID,
			OrganizationID: rate.OrganizationID,
			MaterialType:   rate.MaterialType,
			RatePerUnit:    rate.RatePerUnit,
			UnitType:       rate.UnitType,
			IsActive:       rate.IsActive,
		}
	}

	return &BridgeReport{
		TotalMappings: total,
		CountsByType:  byType,
		Mappings:      mappingRows,
		MaterialRates: rateRows,
	}, nil
}
