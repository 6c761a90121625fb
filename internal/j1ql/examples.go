package j1ql

import (
	_ "embed"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var examplesYAML []byte

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Example is one documented J1QL query.
type Example struct {
	Query       string            `yaml:"query" json:"query"`
	Description string            `yaml:"description" json:"description"`
	Variables   map[string]string `yaml:"variables,omitempty" json:"variables,omitempty"`
	Condition   []any             `yaml:"condition,omitempty" json:"condition,omitempty"`
}

// Render substitutes {{Variable}} placeholders, preferring vars over the example's defaults.
// Unknown placeholders are left untouched.
func (e Example) Render(vars map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(e.Query, func(ph string) string {
		name := ph[2 : len(ph)-2]
		if v, ok := vars[name]; ok && v != "" {
			return v
		}
		if v, ok := e.Variables[name]; ok {
			return v
		}
		return ph
	})
}

// Catalog holds the example queries by category plus syntax notes.
type Catalog struct {
	Categories map[string]map[string]Example `yaml:"categories" json:"categories"`
	Patterns   map[string]string             `yaml:"patterns" json:"patterns"`
}

// ParseCatalog decodes a YAML example catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse J1QL example catalog: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("J1QL example catalog has no categories")
	}
	return &c, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(examplesYAML)
})

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// CategoryNames returns the sorted category names.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Category returns every example of a category.
func (c *Catalog) Category(name string) (map[string]Example, bool) {
	examples, ok := c.Categories[name]
	return examples, ok
}

// Example looks up an example by "category.name" path.
func (c *Catalog) Example(path string) (Example, bool) {
	category, name, ok := strings.Cut(path, ".")
	if !ok {
		return Example{}, false
	}
	examples, ok := c.Categories[category]
	if !ok {
		return Example{}, false
	}
	e, ok := examples[name]
	return e, ok
}

// BuildDiscoveryQuery returns a query listing the properties of an entity class.
func BuildDiscoveryQuery(entityClass string) string {
	return fmt.Sprintf("FIND %s AS e RETURN e.* LIMIT 10", entityClass)
}

// BuildRelationshipQuery returns a query listing the relationships between two
// entity classes. An empty target matches any entity.
func BuildRelationshipQuery(from, to string) string {
	if to == "" {
		to = "*"
	}
	return fmt.Sprintf("FIND %s THAT RELATES TO AS rel %s AS target RETURN rel._class, target._type, COUNT(target)", from, to)
}

var (
	firstWithRegex = regexp.MustCompile(`WITH\s+`)
	findClassRegex = regexp.MustCompile(`FIND\s+(\w+)`)
)

// AddTimeFilter restricts the query to entities created in the last days.
func AddTimeFilter(query string, days int) string {
	filter := fmt.Sprintf("_createdOn > date.now - %d days", days)
	if loc := firstWithRegex.FindStringIndex(query); loc != nil {
		return query[:loc[0]] + "WITH " + filter + " AND " + query[loc[1]:]
	}
	if loc := findClassRegex.FindStringIndex(query); loc != nil {
		return query[:loc[1]] + " WITH " + filter + query[loc[1]:]
	}
	return query
}
