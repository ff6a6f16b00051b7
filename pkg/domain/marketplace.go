package domain

import (
	"fmt"
	"strings"
)

// Marketplace is an Amazon storefront a product is sold on.
type Marketplace string

const (
	MarketplaceUS Marketplace = "US"
	MarketplaceUK Marketplace = "UK"
	MarketplaceDE Marketplace = "DE"
	MarketplaceFR Marketplace = "FR"
	MarketplaceIT Marketplace = "IT"
	MarketplaceES Marketplace = "ES"
)

// Authority is a regulatory body whose rules apply to a marketplace.
type Authority string

const (
	AuthorityFDA  Authority = "FDA"
	AuthorityCPSC Authority = "CPSC"
	AuthorityUKCA Authority = "UKCA"
	AuthorityCE   Authority = "CE"
)

// Valid reports whether a is a known authority.
func (a Authority) Valid() bool {
	switch a {
	case AuthorityFDA, AuthorityCPSC, AuthorityUKCA, AuthorityCE:
		return true
	default:
		return false
	}
}

var marketplaceAuthorities = map[Marketplace][]Authority{
	MarketplaceUS: {AuthorityFDA, AuthorityCPSC},
	MarketplaceUK: {AuthorityUKCA},
	MarketplaceDE: {AuthorityCE},
	MarketplaceFR: {AuthorityCE},
	MarketplaceIT: {AuthorityCE},
	MarketplaceES: {AuthorityCE},
}

// Marketplaces returns all supported marketplaces.
func Marketplaces() []Marketplace {
	return []Marketplace{MarketplaceUS, MarketplaceUK, MarketplaceDE, MarketplaceFR, MarketplaceIT, MarketplaceES}
}

// Valid reports whether m is a supported marketplace.
func (m Marketplace) Valid() bool {
	_, ok := marketplaceAuthorities[m]

	return ok
}

// Authorities returns the regulators whose rules apply to the marketplace.
func (m Marketplace) Authorities() []Authority {
	return marketplaceAuthorities[m]
}

// ParseMarketplaces upper-cases, validates and de-duplicates the given codes,
// preserving their order. An empty input yields the US marketplace.
func ParseMarketplaces(codes []string) ([]Marketplace, error) {
	out := make([]Marketplace, 0, len(codes))
	seen := make(map[Marketplace]bool, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		// GB is the ISO code, UK is what sellers type
		if c == "GB" {
			c = string(MarketplaceUK)
		}

		m := Marketplace(c)
		if !m.Valid() {
			return nil, fmt.Errorf("unsupported marketplace %q", c)
		}
		if seen[m] {
			continue
		}

		seen[m] = true
		out = append(out, m)
	}

	if len(out) == 0 {
		out = append(out, MarketplaceUS)
	}

	return out, nil
}
