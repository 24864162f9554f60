package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Locale primary language subtag ("pt", "en")
type Locale string

const (
	LocalePt Locale = "pt"
	LocaleEn Locale = "en"
)

// Bundle messages per locale, safe for concurrent use
type Bundle struct {
	mu       sync.RWMutex
	messages map[Locale]map[string]string
	fallback Locale
}

// NewBundle creates an empty bundle
func NewBundle(fallback Locale) *Bundle {
	return &Bundle{
		messages: make(map[Locale]map[string]string),
		fallback: fallback,
	}
}

// NewDefaultBundle returns a pt-fallback bundle with the built-in messages
func NewDefaultBundle() *Bundle {
	b := NewBundle(LocalePt)
	for locale, msgs := range DefaultMessages() {
		b.LoadMessages(locale, msgs)
	}
	return b
}

// Fallback locale used when a key or locale is missing
func (b *Bundle) Fallback() Locale {
	return b.fallback
}

// LoadMessages merges msgs over the locale's current messages
func (b *Bundle) LoadMessages(locale Locale, msgs map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dst, ok := b.messages[locale]
	if !ok {
		dst = make(map[string]string, len(msgs))
		b.messages[locale] = dst
	}
	for k, v := range msgs {
		dst[k] = v
	}
}

// LoadDir merges <locale>.json files (flat key -> message objects) from dir
func (b *Bundle) LoadDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("i18n dir: %w", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		b.LoadMessages(Locale(strings.TrimSuffix(filepath.Base(path), ".json")), msgs)
	}
	return nil
}

// T returns the message for key, formatted with args.
// Missing in locale -> fallback locale -> the key itself.
func (b *Bundle) T(locale Locale, key string, args ...interface{}) string {
	msg, ok := b.lookup(locale, key)
	if !ok {
		msg, ok = b.lookup(b.fallback, key)
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func (b *Bundle) lookup(locale Locale, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	msg, ok := b.messages[locale][key]
	return msg, ok
}

func (b *Bundle) has(locale Locale) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.messages[locale]
	return ok
}

// Negotiate picks the loaded locale with the highest q-value in an
// Accept-Language header. Region subtags are ignored (pt-BR -> pt).
func (b *Bundle) Negotiate(header string) Locale {
	type candidate struct {
		locale Locale
		q      float64
	}

	var candidates []candidate
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}
		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q <= 0 {
			continue
		}
		primary, _, _ := strings.Cut(strings.ToLower(tag), "-")
		candidates = append(candidates, candidate{locale: Locale(primary), q: q})
	}

	// header order breaks ties
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].q > candidates[j].q })
	for _, c := range candidates {
		if b.has(c.locale) {
			return c.locale
		}
	}
	return b.fallback
}
