// Package testutil вспомогательные типы для тестов
package testutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Logger пишет сообщения в память
type Logger struct {
	mu    sync.Mutex
	lines []string
}

func (l *Logger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, "["+level+"] "+fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) { l.add("DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }

// Lines возвращает записанные строки
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains проверяет, есть ли строка с подстрокой
func (l *Logger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// FixedTime провайдер фиксированного времени
type FixedTime struct {
	T time.Time
}

func (f FixedTime) Now() time.Time {
	return f.T
}
