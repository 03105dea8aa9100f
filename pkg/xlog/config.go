package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration.
func NewConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		AddSource: false,
		AttrReplacer: ChainReplacer(
			NormalizeSourceAttrReplacer(),
			TruncateAttrReplacer(DefaultMaxValueLen),
		),
		StdFormat: FormatText,
		StdWriter: os.Stderr,
		MaxSize:   30,
	}
}

// Config is the logging configuration.
type Config struct {
	// Level is the minimum level to output, LevelInfo by default.
	Level slog.Level
	// AddSource adds the source file and line of the log call.
	AddSource bool
	// AttrReplacer rewrites attributes before output.
	AttrReplacer AttrReplacer

	// StdFormat is the console format, one of ["text", "json"].
	StdFormat string
	// StdWriter is the console writer, os.Stderr by default so that command
	// output on stdout stays clean.
	StdWriter io.Writer

	// Path is the log file path. Empty disables file output.
	Path string
	// MaxSize is the size in MB after which the log file is rotated.
	MaxSize int
	// MaxAge is the number of days to keep rotated files, 0 keeps all.
	MaxAge int
	// MaxBackups is the number of rotated files to keep, 0 keeps all.
	MaxBackups int
	// Compress compresses rotated files.
	Compress bool
}

// BuildHandler creates a new slog.Handler with config. With the text
// console format the file, if any, still receives json records.
func (c *Config) BuildHandler() slog.Handler {
	opts := c.buildHandlerOptions()
	fw := c.buildFileWriter()
	if fw == nil {
		return NewLeveledHandler(c.StdFormat, c.StdWriter, opts)
	}
	if c.StdFormat == FormatJSON {
		return NewLeveledHandler(FormatJSON, io.MultiWriter(c.StdWriter, fw), opts)
	}
	return MultiHandler(
		NewLeveledHandler(FormatText, c.StdWriter, opts),
		NewLeveledHandler(FormatJSON, fw, opts),
	)
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

func (c *Config) buildHandlerOptions() *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     c.Level,
	}
	if c.AttrReplacer != nil {
		opts.ReplaceAttr = c.AttrReplacer
	}
	return opts
}
