package utils

// packageFromCmdline 从 /proc/self/cmdline 的内容中取出进程名（Android 上即应用包名）
// 参数之间以 NUL 分隔，只取第一段
func packageFromCmdline(data []byte) string {
	for i, ch := range data {
		if ch == 0 || ch == '\n' {
			return string(data[:i])
		}
	}
	return string(data)
}
