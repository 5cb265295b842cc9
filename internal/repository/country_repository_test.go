package repository_test

import (
	"testing"
	"time"

	"countryservice/internal/apperrors"
	"countryservice/internal/model"
	"countryservice/internal/repository"
	"countryservice/internal/testutil"
)

func TestCountryRepository_ReplaceAll(t *testing.T) {
	t.Run("replaces the full dataset and records the refresh time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Oldland").Build(t, db)

		refreshedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		newSet := []model.Country{
			testutil.NewCountry("Nigeria").WithRate("NGN", 800).WithGDP(375000000000).Record(),
			testutil.NewCountry("Ghana").Record(),
		}

		if err := repo.ReplaceAll(newSet, refreshedAt); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}

		all, err := repo.GetAll(model.CountryFilter{})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("Expected 2 countries after replace, got %d", len(all))
		}
		for _, c := range all {
			if c.Name == "Oldland" {
				t.Error("Expected old dataset to be gone after replace")
			}
			if c.ID == "" {
				t.Error("Expected replace to assign an ID")
			}
		}

		last, err := repo.GetLastRefreshedAt()
		if err != nil {
			t.Fatalf("GetLastRefreshedAt failed: %v", err)
		}
		if last == nil || !last.Equal(refreshedAt) {
			t.Errorf("Expected last refresh %v, got %v", refreshedAt, last)
		}
	})

	t.Run("failed replace leaves the previous dataset untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Survivor").Build(t, db)

		// Duplicate names violate the unique constraint mid-transaction.
		badSet := []model.Country{
			testutil.NewCountry("Dup").Record(),
			testutil.NewCountry("Dup").Record(),
		}

		if err := repo.ReplaceAll(badSet, time.Now().UTC()); err == nil {
			t.Fatal("Expected ReplaceAll to fail on duplicate names")
		}

		all, err := repo.GetAll(model.CountryFilter{})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(all) != 1 || all[0].Name != "Survivor" {
			t.Errorf("Expected previous dataset to survive a failed replace, got %+v", all)
		}
	})

	t.Run("replacing with an empty set empties the store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Oldland").Build(t, db)

		if err := repo.ReplaceAll(nil, time.Now().UTC()); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected empty store, got %d countries", count)
		}
	})
}

func TestCountryRepository_GetAll(t *testing.T) {
	t.Run("filters by region case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Nigeria").WithRegion("Africa").Build(t, db)
		testutil.NewCountry("Ghana").WithRegion("Africa").Build(t, db)
		testutil.NewCountry("Netherlands").WithRegion("Europe").Build(t, db)

		countries, err := repo.GetAll(model.CountryFilter{Region: "aFrIcA"})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(countries) != 2 {
			t.Errorf("Expected 2 African countries, got %d", len(countries))
		}
	})

	t.Run("filters by currency case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Nigeria").WithRate("NGN", 800).Build(t, db)
		testutil.NewCountry("Netherlands").WithRate("EUR", 0.9).Build(t, db)

		countries, err := repo.GetAll(model.CountryFilter{Currency: "ngn"})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(countries) != 1 || countries[0].Name != "Nigeria" {
			t.Errorf("Expected only Nigeria, got %+v", countries)
		}
	})

	t.Run("gdp_desc places null GDP last", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("NoRate").Build(t, db)
		testutil.NewCountry("Small").WithRate("AAA", 1).WithGDP(100).Build(t, db)
		testutil.NewCountry("Big").WithRate("BBB", 1).WithGDP(900).Build(t, db)

		countries, err := repo.GetAll(model.CountryFilter{Sort: model.SortGDPDesc})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}

		names := []string{countries[0].Name, countries[1].Name, countries[2].Name}
		want := []string{"Big", "Small", "NoRate"}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Expected order %v, got %v", want, names)
			}
		}
	})

	t.Run("gdp_asc still places null GDP last", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("NoRate").Build(t, db)
		testutil.NewCountry("Big").WithRate("BBB", 1).WithGDP(900).Build(t, db)
		testutil.NewCountry("Small").WithRate("AAA", 1).WithGDP(100).Build(t, db)

		countries, err := repo.GetAll(model.CountryFilter{Sort: model.SortGDPAsc})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}

		if countries[0].Name != "Small" || countries[1].Name != "Big" || countries[2].Name != "NoRate" {
			t.Errorf("Expected [Small Big NoRate], got [%s %s %s]", countries[0].Name, countries[1].Name, countries[2].Name)
		}
	})

	t.Run("population sorts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Mid").WithPopulation(50).Build(t, db)
		testutil.NewCountry("Tiny").WithPopulation(1).Build(t, db)
		testutil.NewCountry("Huge").WithPopulation(1000).Build(t, db)

		desc, err := repo.GetAll(model.CountryFilter{Sort: model.SortPopulationDesc})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if desc[0].Name != "Huge" || desc[2].Name != "Tiny" {
			t.Errorf("Unexpected population_desc order: %s, %s, %s", desc[0].Name, desc[1].Name, desc[2].Name)
		}

		asc, err := repo.GetAll(model.CountryFilter{Sort: model.SortPopulationAsc})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if asc[0].Name != "Tiny" || asc[2].Name != "Huge" {
			t.Errorf("Unexpected population_asc order: %s, %s, %s", asc[0].Name, asc[1].Name, asc[2].Name)
		}
	})

	t.Run("default sort preserves insertion order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Zed").Build(t, db)
		testutil.NewCountry("Alpha").Build(t, db)

		countries, err := repo.GetAll(model.CountryFilter{})
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if countries[0].Name != "Zed" || countries[1].Name != "Alpha" {
			t.Errorf("Expected insertion order [Zed Alpha], got [%s %s]", countries[0].Name, countries[1].Name)
		}
	})
}

func TestCountryRepository_GetByName(t *testing.T) {
	t.Run("matches case-insensitively and preserves stored case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Nigeria").WithRate("NGN", 800).WithGDP(375000000000).Build(t, db)

		country, err := repo.GetByName("nIgErIa")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if country.Name != "Nigeria" {
			t.Errorf("Expected stored name Nigeria, got %s", country.Name)
		}
		if country.ExchangeRate == nil || *country.ExchangeRate != 800 {
			t.Errorf("Expected exchange rate 800, got %v", country.ExchangeRate)
		}
	})

	t.Run("returns ErrCountryNotFound on a miss", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		if _, err := repo.GetByName("Nowhere"); err != apperrors.ErrCountryNotFound {
			t.Errorf("Expected ErrCountryNotFound, got %v", err)
		}
	})
}

func TestCountryRepository_DeleteByName(t *testing.T) {
	t.Run("deletes case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		testutil.NewCountry("Nigeria").Build(t, db)

		if err := repo.DeleteByName("NIGERIA"); err != nil {
			t.Fatalf("DeleteByName failed: %v", err)
		}

		count, _ := repo.Count()
		if count != 0 {
			t.Errorf("Expected empty store after delete, got %d rows", count)
		}
	})

	t.Run("returns ErrCountryNotFound on a miss", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewCountryRepository(db)

		if err := repo.DeleteByName("Nowhere"); err != apperrors.ErrCountryNotFound {
			t.Errorf("Expected ErrCountryNotFound, got %v", err)
		}
	})
}

func TestCountryRepository_GetTopByGDP(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCountryRepository(db)

	testutil.NewCountry("NoGDP").Build(t, db)
	testutil.NewCountry("Third").WithRate("CCC", 1).WithGDP(100).Build(t, db)
	testutil.NewCountry("First").WithRate("AAA", 1).WithGDP(900).Build(t, db)
	testutil.NewCountry("Second").WithRate("BBB", 1).WithGDP(500).Build(t, db)

	top, err := repo.GetTopByGDP(2)
	if err != nil {
		t.Fatalf("GetTopByGDP failed: %v", err)
	}

	if len(top) != 2 {
		t.Fatalf("Expected 2 countries, got %d", len(top))
	}
	if top[0].Name != "First" || top[1].Name != "Second" {
		t.Errorf("Expected [First Second], got [%s %s]", top[0].Name, top[1].Name)
	}
	for _, c := range top {
		if c.EstimatedGDP == nil {
			t.Errorf("Country %s without GDP must be excluded from the ranking", c.Name)
		}
	}
}

func TestCountryRepository_GetLastRefreshedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCountryRepository(db)

	last, err := repo.GetLastRefreshedAt()
	if err != nil {
		t.Fatalf("GetLastRefreshedAt failed: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil before first refresh, got %v", last)
	}
}
