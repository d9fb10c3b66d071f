package category

import (
	"strings"

	"github.com/samber/lo"

	"github.com/psedge/firefly-wise-importer/pkg/config"
)

// Classification is the single category/budget decision for one transaction.
// Empty strings mean no category is assigned at all.
type Classification struct {
	Category string
	Budget   string
}

// Warning is emitted when a transaction carries a category key missing from
// the category map. Callers decide whether to log, collect or assert on it.
type Warning struct {
	RawCategory string
	Description string
	// Excluded is true when the description matched a transfer-exclusion
	// rule and the transaction was left uncategorized instead of defaulting
	// to Other.
	Excluded bool
}

type Resolver struct {
	mapping    map[string]config.CategoryMapping
	exclusions config.Exclusions
}

func NewResolver(
	mapping map[string]config.CategoryMapping,
	exclusions config.Exclusions,
) *Resolver {
	return &Resolver{
		mapping:    mapping,
		exclusions: exclusions,
	}
}

func (r *Resolver) Resolve(rawCategory, description string) (Classification, *Warning) {
	if rawCategory == "" {
		return Classification{}, nil
	}

	if mapped, ok := r.mapping[rawCategory]; ok {
		return Classification{
			Category: mapped.Category,
			Budget:   mapped.Budget,
		}, nil
	}

	warning := &Warning{
		RawCategory: rawCategory,
		Description: description,
	}

	if r.isTransfer(description) {
		warning.Excluded = true
		return Classification{}, warning
	}

	return Classification{
		Category: "Other",
		Budget:   "Other",
	}, warning
}

func (r *Resolver) isTransfer(description string) bool {
	for _, fragment := range r.exclusions.Contains {
		if strings.Contains(description, fragment) {
			return true
		}
	}

	return lo.Contains(r.exclusions.Exact, description)
}
