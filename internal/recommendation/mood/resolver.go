// Package mood resolves (mood, occasion) pairs to scoring profiles.
package mood

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

//go:embed profiles.yaml
var defaultProfiles []byte

type profileFile struct {
	Profiles []domain.MoodProfile `yaml:"profiles"`
}

// Resolver looks up mood profiles in a static table. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	profiles []domain.MoodProfile
}

// NewResolver loads the table from path, or the built-in table when path is empty.
func NewResolver(path string) (*Resolver, error) {
	data := defaultProfiles
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read mood profiles: %w", err)
		}
		data = raw
	}
	return NewResolverFromYAML(data)
}

// NewResolverFromYAML parses and validates a profile table.
func NewResolverFromYAML(data []byte) (*Resolver, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mood profiles: %w", err)
	}

	for i := range file.Profiles {
		p := &file.Profiles[i]
		if strings.TrimSpace(p.Mood) == "" || strings.TrimSpace(p.Occasion) == "" {
			return nil, fmt.Errorf("mood profile %d: mood and occasion are required", i)
		}
		if len(p.PreferredCategories) == 0 {
			return nil, fmt.Errorf("mood profile %s/%s: preferred categories are required", p.Mood, p.Occasion)
		}
		switch p.BudgetStrategy {
		case "":
			p.BudgetStrategy = domain.BudgetModerate
		case domain.BudgetConservative, domain.BudgetModerate, domain.BudgetPremium:
		default:
			return nil, fmt.Errorf("mood profile %s/%s: unknown budget strategy %q", p.Mood, p.Occasion, p.BudgetStrategy)
		}
	}

	return &Resolver{profiles: file.Profiles}, nil
}

// Resolve returns the profile for (mood, occasion). Matching ignores case.
// An exact pair wins, then the first profile with the same occasion, then a
// generic profile built from the literal inputs. It never fails.
func (r *Resolver) Resolve(mood, occasion string) domain.MoodProfile {
	m, o := key(mood), key(occasion)

	for _, p := range r.profiles {
		if key(p.Mood) == m && key(p.Occasion) == o {
			return clone(p)
		}
	}
	for _, p := range r.profiles {
		if key(p.Occasion) == o {
			return clone(p)
		}
	}
	return Generic(mood, occasion)
}

// Profiles returns a copy of the table in order.
func (r *Resolver) Profiles() []domain.MoodProfile {
	out := make([]domain.MoodProfile, len(r.profiles))
	for i, p := range r.profiles {
		out[i] = clone(p)
	}
	return out
}

// Generic synthesizes the fallback profile for unknown inputs.
func Generic(mood, occasion string) domain.MoodProfile {
	mood, occasion = strings.TrimSpace(mood), strings.TrimSpace(occasion)
	return domain.MoodProfile{
		Mood:                mood,
		Occasion:            occasion,
		IntentTags:          []string{"personal", "casual"},
		PreferredCategories: append([]string(nil), domain.KnownCategories...),
		BudgetStrategy:      domain.BudgetModerate,
		ExplanationTemplate: fmt.Sprintf("A versatile pick to match your %s mood for %s.", mood, occasion),
	}
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clone(p domain.MoodProfile) domain.MoodProfile {
	p.IntentTags = cloneStrings(p.IntentTags)
	p.AvoidTags = cloneStrings(p.AvoidTags)
	p.Keywords = cloneStrings(p.Keywords)
	p.PreferredCategories = cloneStrings(p.PreferredCategories)
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
