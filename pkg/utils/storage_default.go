//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自行创建目录
func EnsureStorageDir(appName string) error {
	return nil
}

// GetStoragePath 非 Android 平台没有需要提前准备的路径
func GetStoragePath(appName string) string {
	return ""
}
