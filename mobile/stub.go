//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// 绑定入口和数据嵌入在 mobile.go / embed.go 中，只在 -tags mobile 时编译；
// 桌面构建只保留导出的 Dummy，使 ./... 能正常编译本包。
package mobile

// Dummy 是一个空导出函数
func Dummy() {}
