package instrument

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

const maskedValue = "***"

type maskHandler struct {
	handler  slog.Handler
	maskKeys map[string]struct{}
}

func (h *maskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *maskHandler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.maskKeys) == 0 {
		return h.handler.Handle(ctx, record)
	}

	masked := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		masked.AddAttrs(maskAttr(attr, h.maskKeys))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

func (h *maskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		masked = append(masked, maskAttr(a, h.maskKeys))
	}

	return &maskHandler{
		handler:  h.handler.WithAttrs(masked),
		maskKeys: h.maskKeys,
	}
}

func (h *maskHandler) WithGroup(name string) slog.Handler {
	return &maskHandler{
		handler:  h.handler.WithGroup(name),
		maskKeys: h.maskKeys,
	}
}

func buildMaskKeys(fields []string) map[string]struct{} {
	maskKeys := make(map[string]struct{})
	for _, field := range fields {
		field = strings.TrimSpace(strings.ToLower(field))
		if field == "" {
			continue
		}
		maskKeys[field] = struct{}{}
	}
	return maskKeys
}

// MaskString hides a personal value while keeping enough to correlate logs:
// "jo@example.com" -> "j***@example.com", "+447700900123" -> "***0123".
func MaskString(s string) string {
	if at := strings.LastIndex(s, "@"); at > 0 {
		return s[:1] + maskedValue + s[at:]
	}

	if len(s) > 6 {
		return maskedValue + s[len(s)-4:]
	}

	return maskedValue
}

func maskAttr(attr slog.Attr, maskKeys map[string]struct{}) slog.Attr {
	if _, found := maskKeys[strings.ToLower(attr.Key)]; found {
		if attr.Value.Kind() == slog.KindString {
			return slog.String(attr.Key, MaskString(attr.Value.String()))
		}
		return slog.String(attr.Key, maskedValue)
	}

	switch attr.Value.Kind() {
	case slog.KindGroup:
		group := attr.Value.Group()
		masked := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			masked = append(masked, maskAttr(ga, maskKeys))
		}
		attr.Value = slog.GroupValue(masked...)
	case slog.KindString:
		if masked, ok := maskJSON([]byte(attr.Value.String()), maskKeys); ok {
			attr.Value = slog.StringValue(masked)
		}
	case slog.KindAny:
		switch v := attr.Value.Any().(type) {
		case map[string]any:
			attr.Value = slog.AnyValue(maskData(v, maskKeys))
		case []any:
			attr.Value = slog.AnyValue(maskData(v, maskKeys))
		case []byte:
			if masked, ok := maskJSON(v, maskKeys); ok {
				attr.Value = slog.StringValue(masked)
			}
		}
	}

	return attr
}

func maskJSON(payload []byte, maskKeys map[string]struct{}) (string, bool) {
	if len(payload) == 0 || (payload[0] != '{' && payload[0] != '[') {
		return "", false
	}

	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", false
	}

	out, err := json.Marshal(maskData(body, maskKeys))
	if err != nil {
		return "", false
	}
	return string(out), true
}

func maskData(v any, maskKeys map[string]struct{}) any {
	switch val := v.(type) {
	case map[string]any:
		masked := make(map[string]any, len(val))
		for k, v2 := range val {
			if _, found := maskKeys[strings.ToLower(k)]; found {
				if s, ok := v2.(string); ok {
					masked[k] = MaskString(s)
				} else {
					masked[k] = maskedValue
				}
			} else {
				masked[k] = maskData(v2, maskKeys)
			}
		}
		return masked
	case []any:
		res := make([]any, len(val))
		for i, v2 := range val {
			res[i] = maskData(v2, maskKeys)
		}
		return res
	default:
		return v
	}
}
