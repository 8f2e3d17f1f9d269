package activitylog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tyjk-club-backend/internal/global/logger"

	"github.com/google/uuid"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelSuccess Level = "success"
)

// Entry 一条活动日志
type Entry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Module    string         `json:"module"`
	Message   string         `json:"message"`
	Level     Level          `json:"level"`
	Data      map[string]any `json:"data,omitempty"`
}

// Logger 追加式活动日志，容量封顶，先进先出淘汰
// 每次追加后把完整缓冲区写穿到持久化后端；持久化失败不影响记录本身
type Logger struct {
	mu         sync.Mutex
	entries    []Entry
	maxEntries int
	store      Store
	log        *slog.Logger
}

// New 创建活动日志实例，store 为 nil 时仅保留内存缓冲
// 启动时尽力恢复持久化的历史日志
func New(maxEntries int, store Store) *Logger {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	l := &Logger{
		maxEntries: maxEntries,
		store:      store,
		log:        logger.New("ActivityLog"),
	}

	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if entries, err := store.Load(ctx); err != nil {
			l.log.Warn("加载历史活动日志失败", "error", err)
		} else if len(entries) > 0 {
			if len(entries) > maxEntries {
				entries = entries[len(entries)-maxEntries:]
			}
			l.entries = entries
		}
	}
	return l
}

// Record 追加一条日志，永不失败
func (l *Logger) Record(module, message string, level Level, data map[string]any) {
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Module:    module,
		Message:   message,
		Level:     level,
		Data:      cloneData(data),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	// 超出容量时淘汰最旧的
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
	snapshot := make([]Entry, len(l.entries))
	copy(snapshot, l.entries)
	l.mu.Unlock()

	l.persist(snapshot)
}

// QueryFilter 查询条件，各条件之间为与的关系
type QueryFilter struct {
	Module    string
	Level     Level
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int // 返回匹配结果中最新的 N 条
}

func (l *Logger) Query(filter QueryFilter) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var matched []Entry
	for _, entry := range l.entries {
		if filter.Module != "" && entry.Module != filter.Module {
			continue
		}
		if filter.Level != "" && entry.Level != filter.Level {
			continue
		}
		if filter.StartTime != nil && entry.Timestamp.Before(*filter.StartTime) {
			continue
		}
		if filter.EndTime != nil && entry.Timestamp.After(*filter.EndTime) {
			continue
		}
		entry.Data = cloneData(entry.Data)
		matched = append(matched, entry)
	}

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[len(matched)-filter.Limit:]
	}
	return matched
}

// Stats 按级别和模块统计日志分布
func (l *Logger) Stats() map[string]any {
	l.mu.Lock()
	defer l.mu.Unlock()

	byLevel := map[Level]int{}
	byModule := map[string]int{}
	for _, entry := range l.entries {
		byLevel[entry.Level]++
		byModule[entry.Module]++
	}

	recent := len(l.entries)
	if recent > 10 {
		recent = 10
	}
	recentEntries := make([]Entry, recent)
	copy(recentEntries, l.entries[len(l.entries)-recent:])
	for i := range recentEntries {
		recentEntries[i].Data = cloneData(recentEntries[i].Data)
	}

	return map[string]any{
		"total":           len(l.entries),
		"by_level":        byLevel,
		"by_module":       byModule,
		"recent_activity": recentEntries,
	}
}

// Clear 清空日志缓冲并写穿空缓冲区
func (l *Logger) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()

	l.persist([]Entry{})
}

// cloneData 复制附加数据，进出缓冲区的 map 不和调用方共享
func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	cloned := make(map[string]any, len(data))
	for k, v := range data {
		cloned[k] = v
	}
	return cloned
}

func (l *Logger) persist(snapshot []Entry) {
	if l.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.store.Save(ctx, snapshot); err != nil {
		// 持久化失败只告警，不能影响记录操作
		l.log.Warn("持久化活动日志失败", "error", err)
	}
}
