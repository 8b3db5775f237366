// Package catalog is the single source of truth for plan tiers, their limits
// and pricing, and the static tool catalog. Everything here is compile-time
// configuration validated once at startup; lookups never fail, they fall back
// to the free plan so a bad stored identifier can never break a request.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"smart-tools-be/internal/entity"
)

// tierRanks is the load-bearing ordering: every "does tier X satisfy
// requirement Y" check reduces to CompareTiers(X, Y) >= 0.
var tierRanks = map[entity.PlanTier]int{
	entity.PlanTierFree:       0,
	entity.PlanTierPro:        1,
	entity.PlanTierBusiness:   2,
	entity.PlanTierEnterprise: 3,
}

var plans = map[entity.PlanTier]entity.Plan{
	entity.PlanTierFree: {
		Tier:             entity.PlanTierFree,
		Name:             "Free",
		Tagline:          "Try every basic tool, no card required",
		MonthlyPrice:     0,
		YearlyPrice:      0,
		MaxRunsPerDay:    10,
		MaxSavedProjects: 3,
		StorageQuotaMB:   100,
		AllowedExportFormats: []entity.ExportFormat{
			entity.ExportFormatTxt,
		},
		Features: []string{
			"10 tool runs per day",
			"3 saved projects",
			"Plain text export",
		},
		SortOrder: 0,
	},
	entity.PlanTierPro: {
		Tier:             entity.PlanTierPro,
		Name:             "Pro",
		Tagline:          "For individual teachers who plan every week",
		MonthlyPrice:     9.99,
		YearlyPrice:      95.90,
		MaxRunsPerDay:    100,
		MaxSavedProjects: 50,
		StorageQuotaMB:   1024,
		AllowedExportFormats: []entity.ExportFormat{
			entity.ExportFormatTxt,
			entity.ExportFormatPdf,
			entity.ExportFormatJSON,
		},
		Features: []string{
			"100 tool runs per day",
			"50 saved projects",
			"Schedule builder and grade calculator",
			"PDF and JSON export",
		},
		IsMostPopular: true,
		SortOrder:     1,
	},
	entity.PlanTierBusiness: {
		Tier:             entity.PlanTierBusiness,
		Name:             "Business",
		Tagline:          "For departments and small schools",
		MonthlyPrice:     29.99,
		YearlyPrice:      287.90,
		MaxRunsPerDay:    500,
		MaxSavedProjects: 200,
		StorageQuotaMB:   10240,
		AllowedExportFormats: []entity.ExportFormat{
			entity.ExportFormatTxt,
			entity.ExportFormatPdf,
			entity.ExportFormatJSON,
			entity.ExportFormatWord,
			entity.ExportFormatExcel,
		},
		Features: []string{
			"500 tool runs per day",
			"200 saved projects",
			"Performance analyzer",
			"Word and Excel export",
		},
		SortOrder: 2,
	},
	entity.PlanTierEnterprise: {
		Tier:             entity.PlanTierEnterprise,
		Name:             "Enterprise",
		Tagline:          "Unlimited usage for whole institutions",
		MonthlyPrice:     99.99,
		YearlyPrice:      959.90,
		MaxRunsPerDay:    entity.LimitUnlimited,
		MaxSavedProjects: entity.LimitUnlimited,
		StorageQuotaMB:   entity.LimitUnlimited,
		AllowedExportFormats: []entity.ExportFormat{
			entity.ExportFormatTxt,
			entity.ExportFormatPdf,
			entity.ExportFormatJSON,
			entity.ExportFormatWord,
			entity.ExportFormatExcel,
		},
		Features: []string{
			"Unlimited tool runs",
			"Unlimited saved projects",
			"All export formats",
			"Priority support",
		},
		SortOrder: 3,
	},
}

// TierRank returns the ordinal of a tier; unknown tiers rank as free.
func TierRank(tier entity.PlanTier) int {
	if rank, ok := tierRanks[tier]; ok {
		return rank
	}
	return tierRanks[entity.PlanTierFree]
}

// CompareTiers totally orders plan identifiers: -1 if a < b, 0 if equal rank,
// +1 if a > b.
func CompareTiers(a, b entity.PlanTier) int {
	ra, rb := TierRank(a), TierRank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Resolve returns the plan for a tier. Unrecognized identifiers resolve to the
// free plan; this is the one place degradation policy lives, so every caller
// gets identical fallback behavior.
func Resolve(tier entity.PlanTier) entity.Plan {
	if plan, ok := plans[tier]; ok {
		return plan
	}
	return plans[entity.PlanTierFree]
}

// Plans returns all plans in display order.
func Plans() []entity.Plan {
	out := make([]entity.Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// YearlySavingsPercent is round((12m - y) / 12m * 100), clamped to 0 for the
// free plan to avoid dividing by zero.
func YearlySavingsPercent(tier entity.PlanTier) int {
	plan := Resolve(tier)
	if plan.MonthlyPrice == 0 {
		return 0
	}
	annual := plan.MonthlyPrice * 12
	return int(math.Round((annual - plan.YearlyPrice) / annual * 100))
}

// MustValidate checks the static tables once at startup: the tier rank table
// is total, export formats grow monotonically with tier, yearly pricing never
// exceeds twelve months of monthly pricing, and limits are -1 or >= 0.
// Panics on a broken table; this is a programming error, not runtime input.
func MustValidate() {
	ordered := Plans()
	if len(ordered) != len(tierRanks) {
		panic("catalog: plan table and tier rank table disagree")
	}
	for i, plan := range ordered {
		if _, ok := tierRanks[plan.Tier]; !ok {
			panic(fmt.Sprintf("catalog: plan %q has no tier rank", plan.Tier))
		}
		if plan.MonthlyPrice < 0 || plan.YearlyPrice < 0 {
			panic(fmt.Sprintf("catalog: plan %q has negative pricing", plan.Tier))
		}
		if plan.YearlyPrice > plan.MonthlyPrice*12 {
			panic(fmt.Sprintf("catalog: plan %q yearly price exceeds 12x monthly", plan.Tier))
		}
		for _, limit := range []int{plan.MaxRunsPerDay, plan.MaxSavedProjects, plan.StorageQuotaMB} {
			if limit < entity.LimitUnlimited {
				panic(fmt.Sprintf("catalog: plan %q has invalid limit %d", plan.Tier, limit))
			}
		}
		if i == 0 {
			continue
		}
		// Tier monotonicity: everything a lower tier can export, a higher
		// tier can export too.
		lower := ordered[i-1]
		for _, format := range lower.AllowedExportFormats {
			if !plan.AllowsExport(format) {
				panic(fmt.Sprintf("catalog: plan %q drops export format %q allowed at %q",
					plan.Tier, format, lower.Tier))
			}
		}
	}
	for _, tool := range Tools() {
		if _, ok := tierRanks[tool.AccessLevel]; !ok {
			panic(fmt.Sprintf("catalog: tool %q has unknown access level %q", tool.Slug, tool.AccessLevel))
		}
	}
}
