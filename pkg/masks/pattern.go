package masks

import (
	"fmt"
	"regexp"
)

type PatternType string

const (
	Inclusive PatternType = "inclusive"
	Exclusive PatternType = "exclusive"
)

// Pattern is a regular expression matched against file names.
type Pattern struct {
	Type  PatternType `yaml:"type"`
	Regex string      `yaml:"regex"`
	re    *regexp.Regexp
}

func (p *Pattern) compile() (*regexp.Regexp, error) {
	if p.re != nil {
		return p.re, nil
	}
	re, err := regexp.Compile(p.Regex)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern %q: %w", p.Type, p.Regex, err)
	}
	p.re = re
	return re, nil
}

func (p *Pattern) Match(fileName string) (bool, error) {
	re, err := p.compile()
	if err != nil {
		return false, err
	}
	return re.MatchString(fileName), nil
}
