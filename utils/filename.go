package utils

import (
	"strings"
)

// ResumeFileName 根据姓名生成简历下载文件名，空格替换为下划线
func ResumeFileName(fullName string) string {
	return SanitizeFileName(fullName) + "_Resume.pdf"
}

// SanitizeFileName 把姓名转成适合做文件名的形式
func SanitizeFileName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
