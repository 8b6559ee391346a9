package classify

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"adeyosola/bank-wrapped/internal/fileutils"
	"adeyosola/bank-wrapped/internal/models"
)

// RuleSet holds user-supplied keyword rules loaded from YAML. Each entry
// maps a list of keywords to one category; keywords are matched
// case-insensitively as literal substrings.
type RuleSet struct {
	Rules []KeywordRule `yaml:"rules"`
}

// KeywordRule is one custom classification rule.
type KeywordRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// LoadRuleSet reads and validates a YAML rules file. An empty path
// returns a nil RuleSet, meaning built-in rules only.
func LoadRuleSet(filePath string) (*RuleSet, error) {
	if filePath == "" {
		return nil, nil
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var ruleSet RuleSet
	if err := yaml.Unmarshal(data, &ruleSet); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", filePath, err)
	}

	for i, kr := range ruleSet.Rules {
		if !models.Category(kr.Category).IsValid() {
			return nil, fmt.Errorf("rules file %s: rule %d has unknown category %q", filePath, i, kr.Category)
		}
		if len(kr.Keywords) == 0 {
			return nil, fmt.Errorf("rules file %s: rule %d for category %q has no keywords", filePath, i, kr.Category)
		}
	}

	log.WithField("count", len(ruleSet.Rules)).Info("Loaded custom classification rules")
	return &ruleSet, nil
}

// compile turns keyword rules into the internal rule form. Keywords are
// quoted so user input cannot inject regex syntax.
func (rs *RuleSet) compile() []rule {
	compiled := make([]rule, 0, len(rs.Rules))
	for _, kr := range rs.Rules {
		quoted := make([]string, 0, len(kr.Keywords))
		for _, keyword := range kr.Keywords {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			quoted = append(quoted, regexp.QuoteMeta(keyword))
		}
		if len(quoted) == 0 {
			continue
		}
		compiled = append(compiled, rule{
			category: models.Category(kr.Category),
			pattern:  regexp.MustCompile(`(?i)` + strings.Join(quoted, "|")),
		})
	}
	return compiled
}
