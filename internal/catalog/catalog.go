package catalog

import "strings"

type Category string

const (
	CategoryLaptops    Category = "laptops"
	CategoryPhones     Category = "phones"
	CategoryMonitors   Category = "monitors"
	CategoryComponents Category = "components"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"img"`
	Specs       []string `json:"specs"`
}

// Catalog is a read-only product list, built once at startup.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Filter returns products matching both the category and the free-text query.
// An empty category (or "all") matches every category; the query is matched
// case-insensitively against name and description.
func (c *Catalog) Filter(category Category, query string) []Product {
	query = strings.ToLower(query)
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
