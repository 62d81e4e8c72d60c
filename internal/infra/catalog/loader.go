package catalog

import (
	_ "embed"
	"os"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

type file struct {
	Services []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Price       string `yaml:"price"`
	} `yaml:"services"`
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*purchase.Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrap(err, "read catalog file")
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*purchase.Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "decode catalog")
	}

	offerings := make([]purchase.ServiceOffering, 0, len(f.Services))
	for _, s := range f.Services {
		amount, err := decimal.NewFromString(s.Price)
		if err != nil {
			return nil, errs.Wrapf(err, "catalog service %q price", s.ID)
		}
		price, err := purchase.NewMoney(amount)
		if err != nil {
			return nil, errs.Wrapf(err, "catalog service %q price", s.ID)
		}
		o, err := purchase.NewServiceOffering(s.ID, s.Name, s.Description, price)
		if err != nil {
			return nil, errs.Wrapf(err, "catalog service %q", s.ID)
		}
		offerings = append(offerings, o)
	}

	return purchase.NewCatalog(offerings)
}
