// Package rules provides the versioned rule sets of the points system.
// Each edition is an embedded YAML file named after its effective year.
package rules

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"rentcheck_backend/internal/wws"
)

//go:embed data/*.yaml
var editions embed.FS

// Years returns the years that have an embedded rule set, oldest first.
func Years() []int {
	entries, err := editions.ReadDir("data")
	if err != nil {
		return nil
	}
	years := make([]int, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		year, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Latest returns the most recent embedded rule set.
func Latest() (*wws.RuleSet, error) {
	years := Years()
	if len(years) == 0 {
		return nil, fmt.Errorf("no embedded rule sets")
	}
	return Load(years[len(years)-1])
}

// Load returns the embedded rule set for year.
func Load(year int) (*wws.RuleSet, error) {
	data, err := editions.ReadFile(path.Join("data", strconv.Itoa(year)+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no rule set for year %d", year)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rule set %d: %w", year, err)
	}
	if rs.Year != year {
		return nil, fmt.Errorf("rule set %d declares year %d", year, rs.Year)
	}
	return rs, nil
}

// LoadFile reads a rule set from disk, for editions that are not embedded yet.
func LoadFile(filename string) (*wws.RuleSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rule set %s: %w", filename, err)
	}
	return rs, nil
}

// Parse decodes and checks a YAML rule set. Unknown keys are rejected so a
// misspelled variant cannot silently drop out of a table.
func Parse(data []byte) (*wws.RuleSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rs wws.RuleSet
	if err := dec.Decode(&rs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := rs.Check(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Select resolves the rule set to score with: a file wins over a year, and a
// year of 0 means the latest embedded edition. It also returns a short
// description of where the rules came from, for logging.
func Select(year int, filename string) (*wws.RuleSet, string, error) {
	switch {
	case filename != "":
		rs, err := LoadFile(filename)
		return rs, "file:" + filename, err
	case year > 0:
		rs, err := Load(year)
		return rs, "embedded:" + strconv.Itoa(year), err
	default:
		rs, err := Latest()
		if err != nil {
			return nil, "", err
		}
		return rs, "embedded:" + strconv.Itoa(rs.Year), nil
	}
}
