package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogPath is the append-only log the management console tails.
const DefaultLogPath = "/var/log/deploypkg.log"

// Init routes log lines to stdout plus the append-only log file.
// An empty path keeps output on stdout only (tests, dry runs).
func Init(displayName, logPath string) {
	log.SetFormatter(&LineFormatter{DisplayName: displayName})
	log.SetLevel(log.InfoLevel)
	if logPath == "" {
		log.SetOutput(os.Stdout)
		return
	}
	fileLogger := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     90, // days
	}
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
}

// LineFormatter emits the plain human-readable line format the
// invoking agent expects: timestamp, display name, message.
type LineFormatter struct {
	DisplayName string
}

func (this *LineFormatter) Format(entry *log.Entry) ([]byte, error) {
	prefix := ""
	switch entry.Level {
	case log.WarnLevel:
		prefix = "WARNING: "
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		prefix = "ERROR: "
	}
	line := fmt.Sprintf("%s %s: %s%s\n",
		entry.Time.Format("2006-01-02 15:04:05"), this.DisplayName, prefix, entry.Message)
	return []byte(line), nil
}
