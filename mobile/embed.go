//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把 data/canvas_config.yaml 复制到 mobile/data/：
//
//	mkdir -p mobile/data && cp data/canvas_config.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/canvas_config.yaml
var dataFS embed.FS
