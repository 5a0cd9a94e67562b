package energy

import (
	"context"
	"fmt"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/energy-monitoring/backend/internal/names"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Seed is initial data for an empty database.
type Seed struct {
	Categories []SeedCategory
	Records    []SeedRecord
}

type SeedCategory struct {
	Name          string
	Description   string
	SubCategories []string
}

// SeedRecord references its category and subcategory by name.
type SeedRecord struct {
	Year        int
	Category    string
	SubCategory string
	ValueKWh    decimal.Decimal
}

// Bootstrap stores the seed if there are no categories yet. It returns
// true if the seed was stored.
//
// Records that reference a category or subcategory that is not part of
// the seed are skipped.
func (s *Service) Bootstrap(ctx context.Context, seed Seed) (bool, error) {
	count, err := s.store.CountCategories(ctx)
	if err != nil {
		return false, err
	}

	if count > 0 {
		log.Debug().Int64("categories", count).Msg("database already contains data, skipping seed")
		return false, nil
	}

	type subCategoryRef struct {
		category    string
		subCategory string
	}

	categories := make(map[string]models.Category, len(seed.Categories))
	subCategories := make(map[subCategoryRef]models.SubCategory)

	for _, sc := range seed.Categories {
		category, err := s.CreateCategory(ctx, sc.Name, sc.Description)
		if err != nil {
			return false, fmt.Errorf("seeding category %q: %w", sc.Name, err)
		}
		categoryKey := names.Key(sc.Name)
		categories[categoryKey] = category.Resource

		for _, name := range sc.SubCategories {
			sub, err := s.CreateSubCategory(ctx, name, "", category.Resource.ID)
			if err != nil {
				return false, fmt.Errorf("seeding subcategory %q of %q: %w", name, sc.Name, err)
			}
			subCategories[subCategoryRef{categoryKey, names.Key(name)}] = sub.Resource
		}
	}

	var stored int
	for _, r := range seed.Records {
		category, ok := categories[names.Key(r.Category)]
		if !ok {
			log.Warn().Str("category", r.Category).Int("year", r.Year).Msg("seed record references unknown category, skipping")
			continue
		}

		sub, ok := subCategories[subCategoryRef{names.Key(r.Category), names.Key(r.SubCategory)}]
		if !ok {
			log.Warn().Str("category", r.Category).Str("subcategory", r.SubCategory).Int("year", r.Year).Msg("seed record references unknown subcategory, skipping")
			continue
		}

		_, err := s.CreateRecord(ctx, RecordInput{
			Year:          r.Year,
			ValueKWh:      r.ValueKWh,
			CategoryID:    category.ID,
			SubCategoryID: sub.ID,
		})
		if err != nil {
			return false, fmt.Errorf("seeding record %d/%s/%s: %w", r.Year, r.Category, r.SubCategory, err)
		}
		stored++
	}

	log.Info().Int("categories", len(categories)).Int("subcategories", len(subCategories)).Int("records", stored).Msg("seeded database")
	return true, nil
}

// DefaultSeed returns the energy sources of La Réunion with sample
// production values for 2023 to 2025.
func DefaultSeed() Seed {
	return Seed{
		Categories: []SeedCategory{
			{"Solaire", "Énergie solaire", []string{"Photovoltaïque", "Solaire thermique"}},
			{"Éolien", "Énergie éolienne", []string{"Éolien terrestre", "Éolien offshore"}},
			{"Hydraulique", "Énergie hydraulique", []string{"Hydraulique au fil de l'eau", "Hydraulique de lac", "Hydraulique au remontée"}},
			{"Biomasse", "Énergie issue de la biomasse", []string{"Bagasse", "Bois", "Biogaz", "Bioéthanol", "Bioliquide"}},
			{"Autres EnR", "Autres énergies renouvelables et émergentes", []string{"Géothermie", "ETM", "Houlomotrice", "ORC"}},
			{"Récupération", "Récupération et valorisation d'énergie", []string{"Huiles usagées", "CSR", "Chaleur fatale", "Récupération thermique"}},
		},
		Records: []SeedRecord{
			seedRecord(2023, "Solaire", "Photovoltaïque", "4500.50"),
			seedRecord(2023, "Solaire", "Solaire thermique", "2100.75"),
			seedRecord(2023, "Éolien", "Éolien terrestre", "8900.00"),
			seedRecord(2023, "Éolien", "Éolien offshore", "5600.25"),
			seedRecord(2023, "Hydraulique", "Hydraulique au fil de l'eau", "12300.00"),
			seedRecord(2023, "Hydraulique", "Hydraulique de lac", "8700.50"),
			seedRecord(2023, "Biomasse", "Bagasse", "3200.00"),
			seedRecord(2023, "Biomasse", "Bois", "1800.75"),
			seedRecord(2023, "Autres EnR", "Géothermie", "2500.00"),
			seedRecord(2023, "Récupération", "Chaleur fatale", "1500.25"),

			seedRecord(2024, "Solaire", "Photovoltaïque", "5200.75"),
			seedRecord(2024, "Solaire", "Solaire thermique", "2450.00"),
			seedRecord(2024, "Éolien", "Éolien terrestre", "9500.50"),
			seedRecord(2024, "Éolien", "Éolien offshore", "6100.00"),
			seedRecord(2024, "Hydraulique", "Hydraulique au fil de l'eau", "13200.00"),
			seedRecord(2024, "Hydraulique", "Hydraulique de lac", "9300.75"),
			seedRecord(2024, "Biomasse", "Bagasse", "3800.00"),
			seedRecord(2024, "Biomasse", "Biogaz", "2100.50"),
			seedRecord(2024, "Autres EnR", "Géothermie", "2800.00"),
			seedRecord(2024, "Autres EnR", "ETM", "1200.75"),
			seedRecord(2024, "Récupération", "Chaleur fatale", "1800.00"),
			seedRecord(2024, "Récupération", "CSR", "950.25"),

			seedRecord(2025, "Solaire", "Photovoltaïque", "5850.00"),
			seedRecord(2025, "Solaire", "Solaire thermique", "2700.50"),
			seedRecord(2025, "Éolien", "Éolien terrestre", "10200.00"),
			seedRecord(2025, "Éolien", "Éolien offshore", "6800.75"),
			seedRecord(2025, "Hydraulique", "Hydraulique au fil de l'eau", "14000.00"),
			seedRecord(2025, "Hydraulique", "Hydraulique de lac", "10100.25"),
			seedRecord(2025, "Biomasse", "Bagasse", "4200.00"),
			seedRecord(2025, "Biomasse", "Biogaz", "2400.75"),
			seedRecord(2025, "Autres EnR", "Géothermie", "3100.00"),
			seedRecord(2025, "Autres EnR", "ETM", "1500.50"),
			seedRecord(2025, "Autres EnR", "Houlomotrice", "800.00"),
			seedRecord(2025, "Récupération", "Chaleur fatale", "2100.00"),
			seedRecord(2025, "Récupération", "CSR", "1200.75"),
			seedRecord(2025, "Récupération", "Récupération thermique", "850.50"),
		},
	}
}

func seedRecord(year int, category, subCategory, value string) SeedRecord {
	return SeedRecord{
		Year:        year,
		Category:    category,
		SubCategory: subCategory,
		ValueKWh:    decimal.RequireFromString(value),
	}
}
