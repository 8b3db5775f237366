// Package entitlement decides whether a plan tier may use a tool or export
// format, and derives the paywall payload shown when it may not. Every check
// is a pure function over the static catalog; denial is a normal result here,
// never an error.
package entitlement

import (
	"fmt"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/entity"
)

// Decision is computed on every check and never persisted.
type Decision struct {
	Allowed      bool            `json:"allowed"`
	RequiredTier entity.PlanTier `json:"required_tier"`
	CurrentTier  entity.PlanTier `json:"current_tier"`
}

// LockInfo is presentation data for the upgrade overlay. It must never be
// used as an enforcement point; CanUseTool and CanExport are.
type LockInfo struct {
	Title            string   `json:"title"`
	Message          string   `json:"message"`
	RequiredPlanName string   `json:"required_plan_name"`
	FeatureList      []string `json:"feature_list"`
	UpgradeCtaLabel  string   `json:"upgrade_cta_label"`
}

// CanUseTool reports whether tier satisfies the tool's minimum access level.
// Cheap enough to call once per tool card per render.
func CanUseTool(tier entity.PlanTier, tool entity.Tool) Decision {
	required := tool.AccessLevel
	if required == "" {
		required = entity.PlanTierFree
	}
	return Decision{
		Allowed:      catalog.CompareTiers(tier, required) >= 0,
		RequiredTier: required,
		CurrentTier:  tier,
	}
}

// CanExport reports whether tier's plan allows the given export format.
func CanExport(tier entity.PlanTier, format entity.ExportFormat) bool {
	return catalog.Resolve(tier).AllowsExport(format)
}

// ToolLockInfo derives the overlay payload for a tool the tier cannot use.
func ToolLockInfo(tool entity.Tool, tier entity.PlanTier) LockInfo {
	required := catalog.Resolve(tool.AccessLevel)
	return LockInfo{
		Title:            fmt.Sprintf("%s is a %s tool", tool.Name, required.Name),
		Message:          fmt.Sprintf("Upgrade to %s to unlock %s.", required.Name, tool.Name),
		RequiredPlanName: required.Name,
		FeatureList:      required.Features,
		UpgradeCtaLabel:  fmt.Sprintf("Upgrade to %s", required.Name),
	}
}

// ExportLockInfo derives the overlay payload for a denied export format. The
// required plan is the cheapest tier that allows the format; if no tier does,
// it falls back to enterprise.
func ExportLockInfo(format entity.ExportFormat, tier entity.PlanTier) LockInfo {
	required := catalog.Resolve(entity.PlanTierEnterprise)
	for _, plan := range catalog.Plans() {
		if plan.AllowsExport(format) {
			required = plan
			break
		}
	}
	return LockInfo{
		Title:            fmt.Sprintf("%s export is a %s feature", format, required.Name),
		Message:          fmt.Sprintf("Upgrade to %s to export as %s.", required.Name, format),
		RequiredPlanName: required.Name,
		FeatureList:      required.Features,
		UpgradeCtaLabel:  fmt.Sprintf("Upgrade to %s", required.Name),
	}
}
