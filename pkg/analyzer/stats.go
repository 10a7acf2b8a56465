package analyzer

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrymomot/growbuddy/pkg/plant"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

var (
	regionPattern = validator.MustPattern(`([^,]+),\s*(.+)`, "city, region")
	domainPattern = validator.MustPattern(`@([a-zA-Z0-9.-]+)`, "email domain")
)

// Counts is a frequency table.
type Counts map[string]int

// Entry is one row of a ranked frequency table.
type Entry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Stats holds the aggregate view of a plant collection.
type Stats struct {
	Total        int    `json:"total_plants"`
	ByType       Counts `json:"plants_by_type"`
	Traits       Counts `json:"common_traits"`
	Diseases     Counts `json:"disease_frequency"`
	Regions      Counts `json:"location_distribution"`
	EmailDomains Counts `json:"email_domains"`
}

// Statistics computes frequency tables over plants. Plants without a location
// or email are left out of the region or domain table only.
func Statistics(plants []*plant.Plant) Stats {
	s := Stats{
		Total:        len(plants),
		ByType:       Counts{},
		Traits:       Counts{},
		Diseases:     Counts{},
		Regions:      Counts{},
		EmailDomains: Counts{},
	}
	for _, p := range plants {
		if p == nil {
			s.Total--
			continue
		}
		s.ByType[p.Type]++
		for _, t := range p.Traits {
			s.Traits[t]++
		}
		for _, d := range p.Diseases {
			s.Diseases[d.Name]++
		}
		if region, ok := Region(p.Location); ok {
			s.Regions[region]++
		}
		if domain, ok := EmailDomain(p.OwnerEmail); ok {
			s.EmailDomains[domain]++
		}
	}
	return s
}

// Region returns the trimmed part of location after the first comma. A
// location with only whitespace after the comma has the empty region.
func Region(location string) (string, bool) {
	if location == "" {
		return "", false
	}
	m := regionPattern.Regexp().FindStringSubmatch(location)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// EmailDomain returns the host part of an email address.
func EmailDomain(email string) (string, bool) {
	if email == "" {
		return "", false
	}
	m := domainPattern.Regexp().FindStringSubmatch(email)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Ranked returns the table sorted by count descending, then key ascending.
func Ranked(c Counts) []Entry {
	out := make([]Entry, 0, len(c))
	for k, n := range c {
		out = append(out, Entry{Key: k, Count: n})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// Top returns at most n entries of Ranked(c).
func Top(c Counts, n int) []Entry {
	r := Ranked(c)
	if n >= 0 && len(r) > n {
		r = r[:n]
	}
	return r
}
