package service

import (
	"fmt"

	"countryservice/internal/apperrors"
	"countryservice/internal/model"
	"countryservice/internal/repository"
	"countryservice/internal/validation"
)

// CountryService serves read and delete operations over the cached country
// dataset. It never mutates records beyond deletion; the dataset itself is
// owned by the refresh pipeline.
type CountryService struct {
	countryRepo *repository.CountryRepository
}

// NewCountryService creates a new CountryService.
func NewCountryService(countryRepo *repository.CountryRepository) *CountryService {
	return &CountryService{
		countryRepo: countryRepo,
	}
}

// GetCountries returns countries matching the filter. The sort key is
// validated before the store is touched; an unknown key fails with
// apperrors.ErrValidationFailed.
func (s *CountryService) GetCountries(filter model.CountryFilter) ([]model.Country, error) {
	if err := validation.ValidateSort(filter.Sort); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	countries, err := s.countryRepo.GetAll(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveCountries, err)
	}

	return countries, nil
}

// GetCountryByName returns the country with the given name, matched
// case-insensitively. A miss is apperrors.ErrCountryNotFound.
func (s *CountryService) GetCountryByName(name string) (*model.Country, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	country, err := s.countryRepo.GetByName(name)
	if err != nil {
		if err == apperrors.ErrCountryNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveCountry, err)
	}

	return country, nil
}

// DeleteCountryByName deletes the country with the given name, matched
// case-insensitively. A miss is apperrors.ErrCountryNotFound.
func (s *CountryService) DeleteCountryByName(name string) error {
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	if err := s.countryRepo.DeleteByName(name); err != nil {
		if err == apperrors.ErrCountryNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToDeleteCountry, err)
	}

	return nil
}
