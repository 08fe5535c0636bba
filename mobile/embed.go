//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需将 data/suggest.yaml 复制到此目录：
//
//	mkdir -p mobile/data && cp data/suggest.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/suggest.yaml
var dataFS embed.FS
