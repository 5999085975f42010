// Package seed loads customers from a YAML file into a store at startup.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/customer-search/internal/apperr"
	"github.com/DjordjeVuckovic/customer-search/internal/customer"
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/storage"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
	"gopkg.in/yaml.v3"
)

type File struct {
	Customers []domain.Customer `yaml:"customers"`
}

func LoadFromFile(path string) ([]domain.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document and rejects it when any customer fails the
// form validation.
func Parse(data []byte) ([]domain.Customer, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}

	for i, c := range f.Customers {
		if errs := customer.Validate(c); validation.AnyErrors(errs) {
			return nil, fmt.Errorf("seed customer at index %d: %w", i, apperr.NewFieldError("customer is invalid", errs))
		}
	}
	return f.Customers, nil
}

// Load reads path and stores its customers.
func Load(ctx context.Context, storer storage.Storer, path string) error {
	customers, err := LoadFromFile(path)
	if err != nil {
		return err
	}
	if err := storer.SaveBulk(ctx, customers); err != nil {
		return fmt.Errorf("store seed customers: %w", err)
	}
	slog.Info("Seed customers loaded", "path", path, "count", len(customers))
	return nil
}
