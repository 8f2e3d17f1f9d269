package activitylog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Export 导出全部日志
// json 为带缩进的完整转储，csv 对每个字段加引号
func (l *Logger) Export(format string) (string, error) {
	l.mu.Lock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	l.mu.Unlock()

	switch format {
	case "csv":
		return exportCSV(entries), nil
	case "json", "":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("不支持的导出格式: %s", format)
	}
}

func exportCSV(entries []Entry) string {
	var b strings.Builder
	writeRow(&b, []string{"时间", "模块", "消息", "级别", "数据"})
	for _, entry := range entries {
		data := ""
		if entry.Data != nil {
			if raw, err := json.Marshal(entry.Data); err == nil {
				data = string(raw)
			}
		}
		writeRow(&b, []string{
			entry.Timestamp.Format(time.RFC3339),
			entry.Module,
			entry.Message,
			string(entry.Level),
			data,
		})
	}
	return b.String()
}

// writeRow 写一行 CSV，每个字段都加引号，内部引号翻倍转义
func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
