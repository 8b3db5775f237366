package entitlement

import (
	"testing"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/entity"
)

var allTiers = []entity.PlanTier{
	entity.PlanTierFree,
	entity.PlanTierPro,
	entity.PlanTierBusiness,
	entity.PlanTierEnterprise,
}

func TestCanUseToolMatchesTierComparison(t *testing.T) {
	for _, tool := range catalog.Tools() {
		for _, tier := range allTiers {
			decision := CanUseTool(tier, tool)
			want := catalog.CompareTiers(tier, tool.AccessLevel) >= 0
			if decision.Allowed != want {
				t.Errorf("CanUseTool(%s, %s).Allowed = %v, want %v", tier, tool.Slug, decision.Allowed, want)
			}
			if decision.CurrentTier != tier {
				t.Errorf("decision.CurrentTier = %s, want %s", decision.CurrentTier, tier)
			}
			if decision.RequiredTier != tool.AccessLevel {
				t.Errorf("decision.RequiredTier = %s, want %s", decision.RequiredTier, tool.AccessLevel)
			}
		}
	}
}

func TestCanUseToolEmptyAccessLevelFailsOpen(t *testing.T) {
	tool := entity.Tool{Slug: "mystery", Name: "Mystery"}
	decision := CanUseTool(entity.PlanTierFree, tool)
	if !decision.Allowed {
		t.Error("tool with empty access level should be usable on free")
	}
	if decision.RequiredTier != entity.PlanTierFree {
		t.Errorf("RequiredTier = %s, want free", decision.RequiredTier)
	}
}

func TestCanExport(t *testing.T) {
	tests := []struct {
		tier   entity.PlanTier
		format entity.ExportFormat
		want   bool
	}{
		{entity.PlanTierFree, entity.ExportFormatTxt, true},
		{entity.PlanTierFree, entity.ExportFormatPdf, false},
		{entity.PlanTierFree, entity.ExportFormatExcel, false},
		{entity.PlanTierPro, entity.ExportFormatPdf, true},
		{entity.PlanTierPro, entity.ExportFormatWord, false},
		{entity.PlanTierBusiness, entity.ExportFormatExcel, true},
		{entity.PlanTierEnterprise, entity.ExportFormatExcel, true},
		// Unknown tier degrades to free
		{"trial", entity.ExportFormatTxt, true},
		{"trial", entity.ExportFormatPdf, false},
	}

	for _, tt := range tests {
		if got := CanExport(tt.tier, tt.format); got != tt.want {
			t.Errorf("CanExport(%s, %s) = %v, want %v", tt.tier, tt.format, got, tt.want)
		}
	}
}

func TestToolLockInfoNamesRequiredPlan(t *testing.T) {
	tool, found := catalog.FindTool("performance-analyzer")
	if !found {
		t.Fatal("performance-analyzer not in catalog")
	}

	lock := ToolLockInfo(tool, entity.PlanTierPro)
	if lock.RequiredPlanName != "Business" {
		t.Errorf("RequiredPlanName = %q, want Business", lock.RequiredPlanName)
	}
	if len(lock.FeatureList) == 0 {
		t.Error("lock should carry the required plan's feature list")
	}
	if lock.UpgradeCtaLabel == "" || lock.Title == "" || lock.Message == "" {
		t.Error("lock overlay fields must be populated")
	}
}

func TestExportLockInfoPicksCheapestTier(t *testing.T) {
	lock := ExportLockInfo(entity.ExportFormatPdf, entity.PlanTierFree)
	if lock.RequiredPlanName != "Pro" {
		t.Errorf("pdf lock names %q, want Pro (cheapest tier allowing pdf)", lock.RequiredPlanName)
	}

	lock = ExportLockInfo(entity.ExportFormatExcel, entity.PlanTierFree)
	if lock.RequiredPlanName != "Business" {
		t.Errorf("excel lock names %q, want Business", lock.RequiredPlanName)
	}
}
