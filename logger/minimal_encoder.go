package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the handful of ANSI colors the console encoder uses.
type palette struct {
	time      string
	component string
	message   string
	key       string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

var themes = map[string]palette{
	// Everforest Dark (natural forest greens)
	"everforest": {
		time:      "\x1b[38;5;107m",
		component: "\x1b[38;5;208m",
		message:   "\x1b[38;5;223m",
		key:       "\x1b[38;5;109m",
		warn:      "\x1b[38;5;179m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;52m",
	},
	// Gruvbox Dark (warm, muted)
	"gruvbox": {
		time:      "\x1b[38;5;108m",
		component: "\x1b[38;5;214m",
		message:   "\x1b[38;5;223m",
		key:       "\x1b[38;5;109m",
		warn:      "\x1b[38;5;214m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;88m",
	},
}

// Current active theme (set by Initialize or SetTheme)
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output.
// Unknown themes are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  server  Client connected  client_id=3f2a… nodes=12"
type minimalEncoder struct {
	// context holds fields attached with Logger.With
	context *zapcore.MapObjectEncoder
	zapcore.ObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	ctx := zapcore.NewMapObjectEncoder()
	return &minimalEncoder{context: ctx, ObjectEncoder: ctx}
}

var bufferPool = buffer.NewPool()

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder()
	for k, v := range enc.context.Fields {
		clone.context.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := bufferPool.Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if ent.Level > zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(c, ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(c.message)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if pairs := encodeFields(enc.context.Fields, fields); len(pairs) > 0 {
		final.AppendString("  ")
		for i, p := range pairs {
			if i > 0 {
				final.AppendByte(' ')
			}
			final.AppendString(c.key)
			final.AppendString(p[0])
			final.AppendString(colorReset)
			final.AppendByte('=')
			final.AppendString(p[1])
		}
	}

	final.AppendString("\n")
	return final, nil
}

// encodeFields renders context fields (sorted) followed by entry fields (in call order).
// Every field is kept; nothing is filtered by key.
func encodeFields(context map[string]interface{}, fields []zapcore.Field) [][2]string {
	pairs := make([][2]string, 0, len(context)+len(fields))

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, formatValue(context[k])})
	}

	for _, f := range fields {
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		for k, v := range m.Fields {
			pairs = append(pairs, [2]string{k, formatValue(v)})
		}
	}
	return pairs
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		parts := make([]string, len(val))
		for i, p := range val {
			parts[i] = formatValue(p)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(c palette, level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}
