package catalog

import (
	"testing"

	"smart-tools-be/internal/entity"
)

func TestCompareTiersOrdering(t *testing.T) {
	ordered := []entity.PlanTier{
		entity.PlanTierFree,
		entity.PlanTierPro,
		entity.PlanTierBusiness,
		entity.PlanTierEnterprise,
	}

	for i, a := range ordered {
		for j, b := range ordered {
			got := CompareTiers(a, b)
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("CompareTiers(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestResolveFallsBackToFree(t *testing.T) {
	tests := []struct {
		name string
		tier entity.PlanTier
		want entity.PlanTier
	}{
		{name: "known tier", tier: entity.PlanTierPro, want: entity.PlanTierPro},
		{name: "retired identifier", tier: "trial", want: entity.PlanTierFree},
		{name: "empty string", tier: "", want: entity.PlanTierFree},
		{name: "case mismatch", tier: "PRO", want: entity.PlanTierFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.tier); got.Tier != tt.want {
				t.Errorf("Resolve(%q).Tier = %s, want %s", tt.tier, got.Tier, tt.want)
			}
		})
	}
}

func TestUnknownTierRanksAsFree(t *testing.T) {
	if CompareTiers("trial", entity.PlanTierFree) != 0 {
		t.Error("unknown tier should rank equal to free")
	}
	if CompareTiers("trial", entity.PlanTierPro) != -1 {
		t.Error("unknown tier should rank below pro")
	}
}

func TestPlansDisplayOrder(t *testing.T) {
	plans := Plans()
	if len(plans) != 4 {
		t.Fatalf("Plans() returned %d plans, want 4", len(plans))
	}
	for i := 1; i < len(plans); i++ {
		if CompareTiers(plans[i-1].Tier, plans[i].Tier) >= 0 {
			t.Errorf("plans out of order: %s before %s", plans[i-1].Tier, plans[i].Tier)
		}
	}
}

func TestYearlySavingsPercent(t *testing.T) {
	if got := YearlySavingsPercent(entity.PlanTierFree); got != 0 {
		t.Errorf("free plan savings = %d, want 0", got)
	}
	for _, plan := range Plans() {
		got := YearlySavingsPercent(plan.Tier)
		if got < 0 || got > 100 {
			t.Errorf("savings for %s = %d, outside [0, 100]", plan.Tier, got)
		}
		if plan.MonthlyPrice > 0 && got == 0 {
			t.Errorf("paid plan %s has zero yearly savings", plan.Tier)
		}
	}
	// 9.99 * 12 = 119.88; (119.88 - 95.90) / 119.88 = 20%
	if got := YearlySavingsPercent(entity.PlanTierPro); got != 20 {
		t.Errorf("pro savings = %d, want 20", got)
	}
}

func TestExportFormatsGrowWithTier(t *testing.T) {
	plans := Plans()
	for i := 1; i < len(plans); i++ {
		lower, higher := plans[i-1], plans[i]
		for _, format := range lower.AllowedExportFormats {
			if !higher.AllowsExport(format) {
				t.Errorf("%s allows %s but %s does not", lower.Tier, format, higher.Tier)
			}
		}
	}
}

func TestEnterpriseIsUnlimited(t *testing.T) {
	plan := Resolve(entity.PlanTierEnterprise)
	if plan.MaxRunsPerDay != entity.LimitUnlimited {
		t.Errorf("enterprise MaxRunsPerDay = %d, want %d", plan.MaxRunsPerDay, entity.LimitUnlimited)
	}
	if plan.MaxSavedProjects != entity.LimitUnlimited {
		t.Errorf("enterprise MaxSavedProjects = %d, want %d", plan.MaxSavedProjects, entity.LimitUnlimited)
	}
}

func TestMustValidatePasses(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustValidate panicked on the shipped catalog: %v", r)
		}
	}()
	MustValidate()
}
