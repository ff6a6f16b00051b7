// Package rules manages the regulatory rules labels are checked against.
package rules

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/serrors"
	"labelchecker/pkg/storage"
	"path"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

//go:generate mockgen -package mockrules -source=rules.go -destination=mock/mockrules.go
type Service interface {
	// Seed upserts the given rules by code and returns how many rows were written.
	Seed(ctx context.Context, rules []domain.RegulatoryRule) (int64, error)
	// ForMarketplaces returns the active rules for the given marketplaces.
	ForMarketplaces(ctx context.Context, marketplaces []domain.Marketplace) ([]domain.RegulatoryRule, error)
}

type seedFile struct {
	Rules []seedRule `yaml:"rules"`
}

type seedRule struct {
	Code         string   `yaml:"code"`
	Authority    string   `yaml:"authority"`
	Marketplaces []string `yaml:"marketplaces"`
	Category     string   `yaml:"category"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Severity     string   `yaml:"severity"`
	// Inactive seeds a rule that is stored but not checked.
	Inactive bool `yaml:"inactive"`
}

// Validate checks that a rule is complete and that its authority regulates its marketplace.
func Validate(r domain.RegulatoryRule) error {
	switch {
	case strings.TrimSpace(r.Code) == "":
		return serrors.With(serrors.ErrBadRequest, "rule code is required")
	case strings.TrimSpace(r.Title) == "":
		return serrors.With(serrors.ErrBadRequest, "rule %s: title is required", r.Code)
	case !r.Marketplace.Valid():
		return serrors.With(serrors.ErrBadRequest, "rule %s: unsupported marketplace %q", r.Code, r.Marketplace)
	case !r.Authority.Valid():
		return serrors.With(serrors.ErrBadRequest, "rule %s: unknown authority %q", r.Code, r.Authority)
	case !slices.Contains(r.Marketplace.Authorities(), r.Authority):
		return serrors.With(serrors.ErrBadRequest, "rule %s: %s does not regulate %s", r.Code, r.Authority, r.Marketplace)
	case !r.Severity.Valid():
		return serrors.With(serrors.ErrBadRequest, "rule %s: unknown severity %q", r.Code, r.Severity)
	}

	return nil
}

// Parse decodes a YAML seed document. Rules listing several marketplaces are
// expanded into one rule per marketplace with the marketplace appended to the code.
func Parse(r io.Reader) ([]domain.RegulatoryRule, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not decode rules: %w", err)
	}

	var out []domain.RegulatoryRule
	for _, sr := range f.Rules {
		marketplaces, err := domain.ParseMarketplaces(sr.Marketplaces)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", sr.Code, err)
		}
		for _, m := range marketplaces {
			code := strings.ToUpper(strings.TrimSpace(sr.Code))
			if len(marketplaces) > 1 {
				code += "-" + string(m)
			}
			rule := domain.RegulatoryRule{
				Code:        code,
				Authority:   domain.Authority(strings.ToUpper(sr.Authority)),
				Marketplace: m,
				Category:    strings.TrimSpace(sr.Category),
				Title:       strings.TrimSpace(sr.Title),
				Description: strings.TrimSpace(sr.Description),
				Severity:    domain.Severity(strings.ToUpper(sr.Severity)),
				Active:      !sr.Inactive,
			}
			if err := Validate(rule); err != nil {
				return nil, err
			}
			out = append(out, rule)
		}
	}

	return out, nil
}

// Load parses every *.yaml and *.yml file of fsys, ordered by name. Duplicate
// codes across files are rejected.
func Load(fsys fs.FS) ([]domain.RegulatoryRule, error) {
	var names []string
	if err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ext := path.Ext(p); !d.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, p)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not list rule files: %w", err)
	}
	sort.Strings(names)

	var out []domain.RegulatoryRule
	seen := map[string]string{}
	for _, name := range names {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", name, err)
		}
		parsed, err := Parse(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for _, r := range parsed {
			if prev, ok := seen[r.Code]; ok {
				return nil, fmt.Errorf("%s: duplicate rule code %s, first defined in %s", name, r.Code, prev)
			}
			seen[r.Code] = name
		}
		out = append(out, parsed...)
	}

	return out, nil
}

// Defaults returns the rules shipped with the binary.
func Defaults() ([]domain.RegulatoryRule, error) {
	sub, err := fs.Sub(seedFS, "seed")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded seed: %w", err)
	}

	return Load(sub)
}

type service struct {
	storage storage.Storage
}

// New creates a Service backed by storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage}
}

func (s *service) Seed(ctx context.Context, rules []domain.RegulatoryRule) (int64, error) {
	if len(rules) == 0 {
		return 0, nil
	}
	for _, r := range rules {
		if err := Validate(r); err != nil {
			return 0, err
		}
	}

	n, err := s.storage.UpsertRules(ctx, rules...)
	if err != nil {
		return 0, fmt.Errorf("could not upsert rules: %w", err)
	}

	return n, nil
}

func (s *service) ForMarketplaces(ctx context.Context,
	marketplaces []domain.Marketplace) ([]domain.RegulatoryRule, error) {
	if len(marketplaces) == 0 {
		return nil, nil
	}

	out, err := s.storage.Rules(ctx, storage.RuleFilter{Marketplaces: marketplaces, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("could not get rules: %w", err)
	}

	return out, nil
}
