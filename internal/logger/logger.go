package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// The TUI owns stdout and stderr, so diagnostics land in a file under
// ~/.unoterm instead.
const (
	logDirName  = ".unoterm"
	logFileName = "debug.log"
	maxLogSize  = 5 * 1024 * 1024
)

var (
	logFile *os.File
	logPath string
)

// Init opens the debug log, rotating the previous one if it grew past
// maxLogSize.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, logDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logPath = filepath.Join(logDir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := logPath + "." + time.Now().Format("20060102-150405")
		_ = os.Rename(logPath, rotated)
	}

	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("logging to %s", logPath)
	return nil
}

func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

func LogInfo(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

func LogWarn(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}

func LogError(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic records a recovered panic with its stack trace.
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the active log file path, empty before Init.
func GetLogPath() string {
	return logPath
}
