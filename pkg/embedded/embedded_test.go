package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func withFS(t *testing.T, fsys fs.FS) {
	t.Helper()
	prev := dataFS
	Init(fsys)
	t.Cleanup(func() { dataFS = prev })
}

func TestNotInitialized(t *testing.T) {
	withFS(t, nil)

	if IsInitialized() {
		t.Error("IsInitialized should be false before Init")
	}
	if _, err := ReadFile("data/gameplay.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile error = %v, want ErrNotInitialized", err)
	}
	if _, err := Sub("data/levels"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Sub error = %v, want ErrNotInitialized", err)
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/gameplay.yaml":       {Data: []byte("physics: {}\n")},
		"data/levels/level-1.yaml": {Data: []byte("levelNumber: 1\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"数据文件", "data/gameplay.yaml", false},
		{"点斜杠前缀", "./data/gameplay.yaml", false},
		{"未知前缀", "assets/x.png", true},
		{"不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}

	if !Exists("data/levels/level-1.yaml") || Exists("data/levels/level-9.yaml") {
		t.Error("Exists mismatch")
	}
}

func TestSub(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/levels/level-1.yaml": {Data: []byte("levelNumber: 1\n")},
		"data/levels/level-2.yaml": {Data: []byte("levelNumber: 2\n")},
	})

	tests := []struct {
		name    string
		dir     string
		pattern string
		want    int
		wantErr bool
	}{
		{"数据根目录", "data", "levels/*.yaml", 2, false},
		{"根目录带斜杠", "data/", "levels/*.yaml", 2, false},
		{"点斜杠前缀", "./data", "levels/*.yaml", 2, false},
		{"关卡子目录", "data/levels", "*.yaml", 2, false},
		{"相似前缀", "database", "", 0, true},
		{"未知前缀", "assets", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := Sub(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Sub(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			files, err := fs.Glob(sub, tt.pattern)
			if err != nil || len(files) != tt.want {
				t.Errorf("Glob = %v, %v, want %d files", files, err, tt.want)
			}
		})
	}
}
