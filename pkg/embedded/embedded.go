// Package embedded 提供嵌入数据文件的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量声明在项目根目录（embed.go），启动时通过 Init 注入。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized Init 之前访问数据
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var dataFS fs.FS

// Init 注入数据文件系统，路径以 "data/" 开头
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized 返回是否已注入数据文件系统
func IsInitialized() bool {
	return dataFS != nil
}

// clean 标准化路径并检查前缀，数据根目录 "data" 本身也合法
func clean(path string) (string, error) {
	if dataFS == nil {
		return "", ErrNotInitialized
	}
	path = strings.TrimSuffix(strings.TrimPrefix(filepath.ToSlash(path), "./"), "/")
	if path != "data" && !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取嵌入文件
func ReadFile(path string) ([]byte, error) {
	path, err := clean(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	path, err := clean(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	dir, err := clean(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(dataFS, dir)
}
