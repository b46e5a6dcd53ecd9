package session

import (
	"go/build"
	"strings"
	"testing"
)

// 会话及其依赖的包不能引入渲染器，cmd/simulate 和测试因此无需 cgo
func TestCoreHasNoRendererDependency(t *testing.T) {
	dirs := []string{".", "../game", "../systems", "../entities", "../components", "../physics", "../ecs", "../schedule", "../config"}

	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			pkg, err := build.ImportDir(dir, 0)
			if err != nil {
				t.Fatalf("ImportDir(%s) failed: %v", dir, err)
			}
			for _, imp := range pkg.Imports {
				if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
					t.Errorf("%s imports %s", pkg.ImportPath, imp)
				}
			}
		})
	}
}
