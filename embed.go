// embed.go - 数据文件嵌入声明
// 必须放在项目根目录（与 data/ 同级）
package main

import "embed"

//go:embed data/levels data/gameplay.yaml
var dataFS embed.FS
