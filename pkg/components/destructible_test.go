package components

import "testing"

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		name         string
		health       float64
		damage       []float64
		wantHealth   float64
		wantDefeated bool
		wantKills    int
	}{
		{"未致死", 100, []float64{30}, 70, false, 0},
		{"累计致死", 100, []float64{60, 50}, 0, true, 1},
		{"一击致死", 100, []float64{999}, 0, true, 1},
		{"击败后继续受伤", 100, []float64{999, 10, 999}, 0, true, 1},
		{"零和负伤害无效", 100, []float64{0, -20}, 100, false, 0},
		{"恰好归零", 50, []float64{50}, 0, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDestructible(tt.health)
			kills := 0
			for _, amount := range tt.damage {
				if d.TakeDamage(amount) {
					kills++
				}
			}
			if d.Health != tt.wantHealth {
				t.Errorf("Health = %v, want %v", d.Health, tt.wantHealth)
			}
			if d.Defeated != tt.wantDefeated {
				t.Errorf("Defeated = %v, want %v", d.Defeated, tt.wantDefeated)
			}
			if kills != tt.wantKills {
				t.Errorf("defeat transitions = %d, want %d", kills, tt.wantKills)
			}
		})
	}
}

func TestDefeatAndMarkProcessed(t *testing.T) {
	d := NewDestructible(100)
	if d.MarkProcessed() {
		t.Error("live entity cannot be processed")
	}
	if !d.Defeat() {
		t.Fatal("first Defeat should transition")
	}
	if d.Defeat() || d.TakeDamage(10) {
		t.Error("already defeated entity must not transition again")
	}
	if !d.MarkProcessed() {
		t.Error("first MarkProcessed should succeed")
	}
	if d.MarkProcessed() {
		t.Error("second MarkProcessed must report false")
	}
}
