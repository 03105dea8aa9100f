package xlog

import (
	"log/slog"
	"path/filepath"
)

// DefaultMaxValueLen is the length after which string values are truncated
// by the default configuration. Patterns and inputs can be arbitrary long.
const DefaultMaxValueLen = 256

// AttrReplacer is called to rewrite each non-group attribute before it is logged.
type AttrReplacer func(groups []string, attr slog.Attr) Attr

// ChainReplacer calls replacers in order, skipping nil ones.
func ChainReplacer(replacers ...AttrReplacer) AttrReplacer {
	return func(groups []string, attr slog.Attr) Attr {
		for _, repl := range replacers {
			if repl != nil {
				attr = repl(groups, attr)
			}
		}
		return attr
	}
}

// NormalizeSourceAttrReplacer keeps only the basename of the source file.
func NormalizeSourceAttrReplacer() AttrReplacer {
	return func(_ []string, attr slog.Attr) Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}
		if source, ok := attr.Value.Any().(*slog.Source); ok {
			source.File = filepath.Base(source.File)
		}
		return attr
	}
}

// SuppressTimeAttrReplacer drops the top-level time attribute.
func SuppressTimeAttrReplacer() AttrReplacer {
	return func(groups []string, attr slog.Attr) Attr {
		if len(groups) == 0 && attr.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return attr
	}
}

// TruncateAttrReplacer cuts string values longer than maxLen bytes and
// marks them with a trailing "...". The log message is kept whole. A
// non-positive maxLen disables it.
func TruncateAttrReplacer(maxLen int) AttrReplacer {
	return func(groups []string, attr slog.Attr) Attr {
		if maxLen <= 0 || attr.Value.Kind() != slog.KindString {
			return attr
		}
		if len(groups) == 0 && attr.Key == slog.MessageKey {
			return attr
		}
		if s := attr.Value.String(); len(s) > maxLen {
			attr.Value = slog.StringValue(s[:maxLen] + "...")
		}
		return attr
	}
}
