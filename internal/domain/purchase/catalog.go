package purchase

import "strings"

type ServiceOffering struct {
	ID          string
	Name        string
	Description string
	Price       Money
}

func NewServiceOffering(id, name, description string, price Money) (ServiceOffering, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return ServiceOffering{}, ErrInvalidOffering
	}
	return ServiceOffering{ID: id, Name: name, Description: strings.TrimSpace(description), Price: price}, nil
}

// ServiceSnapshot is what a flow captured at selection time.
type ServiceSnapshot struct {
	ServiceID string
	Name      string
	Price     Money
}

// Catalog is an ordered, immutable set of offerings.
type Catalog struct {
	offerings []ServiceOffering
	index     map[string]int
}

func NewCatalog(offerings []ServiceOffering) (*Catalog, error) {
	if len(offerings) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		offerings: make([]ServiceOffering, len(offerings)),
		index:     make(map[string]int, len(offerings)),
	}
	for i, o := range offerings {
		if o.ID == "" || o.Name == "" {
			return nil, ErrInvalidOffering
		}
		if _, dup := c.index[o.ID]; dup {
			return nil, ErrDuplicateOffering
		}
		c.offerings[i] = o
		c.index[o.ID] = i
	}
	return c, nil
}

func (c *Catalog) Find(id string) (ServiceOffering, bool) {
	i, ok := c.index[id]
	if !ok {
		return ServiceOffering{}, false
	}
	return c.offerings[i], true
}

func (c *Catalog) Offerings() []ServiceOffering {
	out := make([]ServiceOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}
