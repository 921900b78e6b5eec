package view

// Level is the visual severity of an alert
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Alert is a dismissible notice. Key is a localization key; Detail is
// appended verbatim, usually a server message or a count.
type Alert struct {
	Level  Level
	Key    string
	Detail string
}

// Success builds a success alert
func Success(key, detail string) Alert {
	return Alert{Level: LevelSuccess, Key: key, Detail: detail}
}

// Error builds an error alert
func Error(key, detail string) Alert {
	return Alert{Level: LevelError, Key: key, Detail: detail}
}

// Info builds an info alert
func Info(key, detail string) Alert {
	return Alert{Level: LevelInfo, Key: key, Detail: detail}
}
