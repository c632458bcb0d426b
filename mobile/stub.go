//go:build !mobile

// Package mobile 的桌面端占位实现
//
// 绑定入口只在 -tags mobile 时编译，见 mobile.go。
package mobile

// Dummy 保证包在桌面端构建时不为空
func Dummy() {}
