package ports

// Level classifies a user-visible outcome signal.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier delivers user-visible outcome signals from the core to the
// presentation layer. Every recoverable input error and every remote
// failure produces at least one Notify call; the core never renders.
type Notifier interface {
	Notify(level Level, message string)
}
