package logger

import "sync"

var (
	_ Logger = (*NullLogger)(nil)
	_ Logger = (*MemoryLogger)(nil)
)

// NullLogger drops every entry. Constructors fall back to it when handed a
// nil Logger.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Info(_ string, _ map[string]interface{}) {}

func (l *NullLogger) Error(_ error, _ map[string]interface{}) {}

func (l *NullLogger) Fatal(_ error, _ map[string]interface{}) {}

func (l *NullLogger) Debug(_ string, _ map[string]interface{}) {}

func (l *NullLogger) SetLevel(_ Level) {}

// Entry is one call captured by MemoryLogger. Message holds err.Error() for
// Error and Fatal.
type Entry struct {
	Level   Level
	Message string
	Fields  Fields
}

// MemoryLogger keeps entries at or above its level in memory. Fatal is
// recorded and does not exit.
type MemoryLogger struct {
	mu      sync.Mutex
	level   Level
	entries []Entry
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{level: LevelDebug}
}

func (l *MemoryLogger) Info(message string, properties map[string]interface{}) {
	l.record(LevelInfo, message, properties)
}

func (l *MemoryLogger) Error(err error, properties map[string]interface{}) {
	l.record(LevelError, err.Error(), properties)
}

func (l *MemoryLogger) Fatal(err error, properties map[string]interface{}) {
	l.record(LevelFatal, err.Error(), properties)
}

func (l *MemoryLogger) Debug(message string, properties map[string]interface{}) {
	l.record(LevelDebug, message, properties)
}

func (l *MemoryLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Entries returns a copy of everything recorded so far.
func (l *MemoryLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Find returns the entries with the given level and message.
func (l *MemoryLogger) Find(level Level, message string) []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == message {
			out = append(out, e)
		}
	}
	return out
}

func (l *MemoryLogger) record(level Level, message string, properties map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled(level) {
		return
	}
	fields := make(Fields, len(properties))
	for k, v := range properties {
		fields[k] = v
	}
	l.entries = append(l.entries, Entry{Level: level, Message: message, Fields: fields})
}

// enabled mirrors the zerolog mapping: LevelDebug shows everything and
// LevelOff nothing.
func (l *MemoryLogger) enabled(level Level) bool {
	switch l.level {
	case LevelDebug:
		return true
	case LevelOff:
		return false
	}
	if level == LevelDebug {
		return false
	}
	return level >= l.level
}
