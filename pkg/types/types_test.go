package types

import "testing"

func TestScoreFor(t *testing.T) {
	tests := []struct {
		name string
		a, b EntityKind
		want int
	}{
		{"投射物击中普通靶子", KindProjectile, KindTarget, 1},
		{"普通靶子被投射物击中", KindTarget, KindProjectile, 1},
		{"投射物击中鲨鱼", KindProjectile, KindShark, 5},
		{"鲨鱼在A侧", KindShark, KindProjectile, 5},
		{"两个普通靶子", KindTarget, KindTarget, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreFor(tt.a, tt.b); got != tt.want {
				t.Errorf("ScoreFor(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCollisionCategoryIsSingle(t *testing.T) {
	for _, c := range []CollisionCategory{CategoryProjectile, CategoryTarget, CategoryOther} {
		if !c.IsSingle() {
			t.Errorf("%v should have exactly one bit set", c)
		}
	}

	if CategoryNone.IsSingle() {
		t.Error("CategoryNone should not be single")
	}
	if (CategoryProjectile | CategoryTarget).IsSingle() {
		t.Error("combined mask should not be single")
	}
}

func TestCollisionCategoryHas(t *testing.T) {
	mask := CategoryTarget
	if !mask.Has(CategoryTarget) {
		t.Error("mask should contain CategoryTarget")
	}
	if mask.Has(CategoryProjectile) {
		t.Error("mask should not contain CategoryProjectile")
	}
}

func TestParseProjectileKind(t *testing.T) {
	if k, ok := ParseProjectileKind("banana"); !ok || k != ProjectileBanana {
		t.Errorf("banana: got (%v, %v)", k, ok)
	}
	if k, ok := ParseProjectileKind("Axe"); !ok || k != ProjectileAxe {
		t.Errorf("Axe: got (%v, %v)", k, ok)
	}
	if _, ok := ParseProjectileKind("bathtub"); ok {
		t.Error("bathtub should not parse")
	}
}

func TestEntityKindIsTarget(t *testing.T) {
	if !KindTarget.IsTarget() || !KindShark.IsTarget() {
		t.Error("Target and Shark should be targets")
	}
	if KindProjectile.IsTarget() || KindUnknown.IsTarget() {
		t.Error("Projectile and Unknown should not be targets")
	}
}
