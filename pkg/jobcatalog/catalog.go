// Package jobcatalog loads the job category/role reference file used by the
// registration form.
package jobcatalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go-talent-intake/internal/domain"
)

type fileFormat struct {
	JobCategories []domain.JobCategory `json:"job_categories"`
}

// Catalog is an immutable, in-memory view of the reference file.
type Catalog struct {
	categories []domain.JobCategory
	roles      map[string]map[string]struct{}
}

// Load reads and parses the reference file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open job roles file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the { "job_categories": [ {category, roles[]} ] } document from r.
func Parse(r io.Reader) (*Catalog, error) {
	var doc fileFormat
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode job roles: %w", err)
	}
	return New(doc.JobCategories)
}

// New builds a catalog from already-decoded categories.
func New(categories []domain.JobCategory) (*Catalog, error) {
	c := &Catalog{
		categories: make([]domain.JobCategory, 0, len(categories)),
		roles:      make(map[string]map[string]struct{}, len(categories)),
	}
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Category)
		if name == "" {
			return nil, fmt.Errorf("job category with empty name")
		}
		if _, dup := c.roles[name]; dup {
			return nil, fmt.Errorf("duplicate job category %q", name)
		}

		roles := make([]string, 0, len(cat.Roles))
		set := make(map[string]struct{}, len(cat.Roles))
		for _, role := range cat.Roles {
			role = strings.TrimSpace(role)
			if role == "" {
				continue
			}
			if _, dup := set[role]; dup {
				continue
			}
			set[role] = struct{}{}
			roles = append(roles, role)
		}

		c.roles[name] = set
		c.categories = append(c.categories, domain.JobCategory{Category: name, Roles: roles})
	}
	return c, nil
}

// Categories returns a copy of the categories in file order.
func (c *Catalog) Categories() []domain.JobCategory {
	out := make([]domain.JobCategory, len(c.categories))
	for i, cat := range c.categories {
		out[i] = domain.JobCategory{
			Category: cat.Category,
			Roles:    append([]string(nil), cat.Roles...),
		}
	}
	return out
}

func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.roles[category]
	return ok
}

func (c *Catalog) HasRole(category, role string) bool {
	set, ok := c.roles[category]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}
