package validation

import (
	"fmt"

	"countryservice/internal/model"
)

// ValidateSort checks a sort query parameter against the known sort keys.
// An empty sort is valid and means natural (insertion) order.
func ValidateSort(sort string) error {
	switch sort {
	case "", model.SortGDPDesc, model.SortGDPAsc, model.SortPopulationDesc, model.SortPopulationAsc:
		return nil
	}
	return &Error{Fields: map[string]string{
		"sort": fmt.Sprintf("unknown sort key %q", sort),
	}}
}

// ValidateName checks a country name path parameter.
func ValidateName(name string) error {
	if name == "" {
		return &Error{Fields: map[string]string{
			"name": "is required",
		}}
	}
	return nil
}
