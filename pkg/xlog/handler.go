package xlog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/samber/lo"
)

// Handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// LeveledHandler is a slog.Handler whose level can be changed at runtime.
type LeveledHandler interface {
	slog.Handler
	SetLevel(lvl slog.Level)
}

// SetHandlerLevel calls SetLevel when h is a LeveledHandler.
func SetHandlerLevel(h slog.Handler, lvl slog.Level) {
	if leveled, ok := h.(LeveledHandler); ok {
		leveled.SetLevel(lvl)
	}
}

// NewLeveledHandler returns a LeveledHandler writing records into w in the
// given format, FormatText when unknown. Its initial level is opts.Level.
func NewLeveledHandler(format string, w io.Writer, opts *slog.HandlerOptions) LeveledHandler {
	o := slog.HandlerOptions{}
	if opts != nil {
		o = *opts
	}
	level := &slog.LevelVar{}
	if o.Level != nil {
		level.Set(o.Level.Level())
	}
	o.Level = level

	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, &o)
	} else {
		h = slog.NewTextHandler(w, &o)
	}
	return &leveledHandler{Handler: h, level: level}
}

type leveledHandler struct {
	slog.Handler
	level *slog.LevelVar
}

// derived handlers share the level of their parent
func (h *leveledHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *leveledHandler) WithGroup(name string) slog.Handler {
	return &leveledHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}

func (h *leveledHandler) SetLevel(lvl slog.Level) {
	h.level.Set(lvl)
}

// MultiHandler distributes records to every handler enabled for them. A
// failing or panicking handler does not prevent the others from running.
func MultiHandler(handlers ...slog.Handler) slog.Handler {
	return multiHandler(handlers)
}

type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return lo.SomeBy(m, func(h slog.Handler) bool { return h.Enabled(ctx, l) })
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := safeHandle(ctx, h, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return multiHandler(lo.Map(m, func(h slog.Handler, _ int) slog.Handler { return h.WithAttrs(attrs) }))
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	return multiHandler(lo.Map(m, func(h slog.Handler, _ int) slog.Handler { return h.WithGroup(name) }))
}

func (m multiHandler) SetLevel(lvl slog.Level) {
	lo.ForEach(m, func(h slog.Handler, _ int) { SetHandlerLevel(h, lvl) })
}

func safeHandle(ctx context.Context, h slog.Handler, r slog.Record) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in log handler: %v", p)
		}
	}()
	return h.Handle(ctx, r)
}
