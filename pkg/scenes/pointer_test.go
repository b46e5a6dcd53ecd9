package scenes

import (
	"testing"

	"github.com/decker502/slingshot/pkg/game"
)

type pointerFrame struct {
	pressed bool
	x, y    float64
}

func kinds(gs []gesture) []game.InputKind {
	var out []game.InputKind
	for _, g := range gs {
		out = append(out, g.kind)
	}
	return out
}

func TestPointerTracker(t *testing.T) {
	tests := []struct {
		name   string
		frames []pointerFrame
		want   []game.InputKind
	}{
		{
			name:   "原地点击",
			frames: []pointerFrame{{true, 100, 100}, {false, 100, 100}},
			want:   []game.InputKind{game.InputDragStart, game.InputClick},
		},
		{
			name:   "微小抖动仍是点击",
			frames: []pointerFrame{{true, 100, 100}, {true, 102, 101}, {false, 102, 101}},
			want:   []game.InputKind{game.InputDragStart, game.InputDrag, game.InputClick},
		},
		{
			name:   "拖拽",
			frames: []pointerFrame{{true, 100, 100}, {true, 80, 100}, {true, 60, 110}, {false, 60, 110}},
			want:   []game.InputKind{game.InputDragStart, game.InputDrag, game.InputDrag, game.InputDragEnd},
		},
		{
			name:   "按住不动不重复发送",
			frames: []pointerFrame{{true, 100, 100}, {true, 100, 100}, {true, 100, 100}},
			want:   []game.InputKind{game.InputDragStart},
		},
		{
			name:   "没有按下",
			frames: []pointerFrame{{false, 1, 1}, {false, 2, 2}},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pointerTracker
			var got []game.InputKind
			for _, f := range tt.frames {
				got = append(got, kinds(p.Update(f.pressed, f.x, f.y))...)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("gesture %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
