package domain

// JobCategory is one entry of the job roles reference file.
type JobCategory struct {
	Category string   `json:"category"`
	Roles    []string `json:"roles"`
}

// JobCatalog answers membership questions about the reference data.
type JobCatalog interface {
	Categories() []JobCategory
	HasCategory(category string) bool
	HasRole(category, role string) bool
}
