package utils

import (
	"flag"
	"io"
	"os"

	filename "github.com/keepeye/logrus-filename"
	"github.com/selectdb/login_watch/pkg/xerror"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/t-tomalak/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogOptions struct {
	Level        string
	Filename     string
	AlsoToStderr bool
}

var logOptions LogOptions

func init() {
	flag.StringVar(&logOptions.Level, "log_level", "info", "log level")
	flag.StringVar(&logOptions.Filename, "log_filename", "", "log filename")
	flag.BoolVar(&logOptions.AlsoToStderr, "log_also_to_stderr", false, "log also to stderr")
}

// InitLog configures the standard logrus logger from the command line flags.
func InitLog() error {
	return SetupLog(log.StandardLogger(), logOptions)
}

func SetupLog(logger *log.Logger, opts LogOptions) error {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return xerror.Wrapf(err, xerror.Config, "parse log level %s failed", opts.Level)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		ForceFormatting: true,
	})

	logger.AddHook(NewAttemptHook())

	// log.SetReportCaller(true), caller by filename
	filenameHook := filename.NewHook()
	filenameHook.Field = "line"
	logger.AddHook(filenameHook)

	if opts.Filename == "" {
		logger.SetOutput(os.Stdout)
		return nil
	}

	output := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    64, // MB
		MaxAge:     7,
		MaxBackups: 10,
		LocalTime:  true,
		Compress:   false,
	}
	if opts.AlsoToStderr {
		logger.SetOutput(io.MultiWriter(output, os.Stderr))
	} else {
		logger.SetOutput(output)
	}
	return nil
}
