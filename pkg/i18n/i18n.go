package i18n

import (
	"embed"
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Init resets the bundle to English defaults plus the embedded locale files.
func Init() {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, _ := defaultLocales.ReadDir("locales")
	for _, e := range entries {
		_, _ = b.LoadMessageFileFS(defaultLocales, "locales/"+e.Name())
	}

	mu.Lock()
	bundle = b
	mu.Unlock()
}

// Load adds or overrides messages from a file on disk, e.g. active.en.json.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if bundle == nil {
		return errNotInitialised
	}
	_, err := bundle.LoadMessageFile(path)
	return err
}

// Localize renders messageID in the first language of langs that has it.
// Falls back to fallback when the message is unknown.
func Localize(messageID, fallback string, data map[string]interface{}, langs ...string) string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		return fallback
	}

	msg, err := goi18n.NewLocalizer(b, langs...).Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

type initError string

func (e initError) Error() string { return string(e) }

const errNotInitialised = initError("i18n: Init must be called before Load")
