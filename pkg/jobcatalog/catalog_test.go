package jobcatalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-talent-intake/pkg/jobcatalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "job_categories": [
    {"category": "Engineering", "roles": ["Backend Developer", "Frontend Developer", " Backend Developer "]},
    {"category": "Sales", "roles": ["Sales Executive"]}
  ]
}`

func TestParse(t *testing.T) {
	c, err := jobcatalog.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	t.Run("Should keep categories in file order", func(t *testing.T) {
		cats := c.Categories()
		require.Len(t, cats, 2)
		assert.Equal(t, "Engineering", cats[0].Category)
		assert.Equal(t, "Sales", cats[1].Category)
		assert.Equal(t, []string{"Backend Developer", "Frontend Developer"}, cats[0].Roles)
	})

	t.Run("Should answer membership questions", func(t *testing.T) {
		assert.True(t, c.HasCategory("Engineering"))
		assert.False(t, c.HasCategory("engineering"))
		assert.True(t, c.HasRole("Engineering", "Backend Developer"))
		assert.False(t, c.HasRole("Sales", "Backend Developer"))
		assert.False(t, c.HasRole("Unknown", "Backend Developer"))
	})

	t.Run("Should not expose internal slices", func(t *testing.T) {
		cats := c.Categories()
		cats[0].Roles[0] = "Mutated"
		assert.True(t, c.HasRole("Engineering", "Backend Developer"))
		assert.Equal(t, "Backend Developer", c.Categories()[0].Roles[0])
	})
}

func TestParse_Invalid(t *testing.T) {
	_, err := jobcatalog.Parse(strings.NewReader(`{not json`))
	assert.Error(t, err)

	_, err = jobcatalog.Parse(strings.NewReader(`{"job_categories":[{"category":"A","roles":[]},{"category":"A","roles":[]}]}`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = jobcatalog.Parse(strings.NewReader(`{"job_categories":[{"category":"  ","roles":["x"]}]}`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_roles.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	c, err := jobcatalog.Load(path)
	require.NoError(t, err)
	assert.True(t, c.HasCategory("Sales"))

	_, err = jobcatalog.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_BundledFile(t *testing.T) {
	c, err := jobcatalog.Load(filepath.Join("..", "..", "config", "job_roles.json"))
	require.NoError(t, err)
	assert.True(t, c.HasRole("Engineering", "Backend Developer"))
}
