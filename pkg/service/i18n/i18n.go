package i18n

import (
	"embed"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Service holds the translation catalogs for all supported locales.
// Catalogs are embedded at build time; missing keys fall back to English
// and then to the key itself, matching the UI behavior.
type Service struct {
	catalogs map[types.Lang]map[string]string
}

// New loads the embedded catalogs for every supported locale
func New() (*Service, error) {
	svc := &Service{
		catalogs: make(map[types.Lang]map[string]string),
	}

	for _, lang := range types.AllLangs() {
		catalog, err := loadCatalog(lang)
		if err != nil {
			return nil, err
		}
		svc.catalogs[lang] = catalog
	}

	return svc, nil
}

func loadCatalog(lang types.Lang) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + lang.String() + ".toml")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read locale file", goerr.V("lang", lang))
	}

	var sections map[string]map[string]string
	if err := toml.Unmarshal(data, &sections); err != nil {
		return nil, goerr.Wrap(err, "failed to parse locale file", goerr.V("lang", lang))
	}

	catalog := make(map[string]string)
	for section, entries := range sections {
		for key, value := range entries {
			catalog[section+"."+key] = value
		}
	}

	return catalog, nil
}

// T translates the key for the given locale. Unknown keys fall back to the
// English catalog, and finally to the key itself.
func (s *Service) T(lang types.Lang, key string) string {
	if catalog, ok := s.catalogs[lang]; ok {
		if value, ok := catalog[key]; ok {
			return value
		}
	}

	if lang != types.LangEnglish {
		if value, ok := s.catalogs[types.LangEnglish][key]; ok {
			return value
		}
	}

	return key
}

// Catalog returns a copy of the full catalog for the given locale
func (s *Service) Catalog(lang types.Lang) map[string]string {
	src, ok := s.catalogs[lang]
	if !ok {
		src = s.catalogs[types.LangEnglish]
	}

	catalog := make(map[string]string, len(src))
	for key, value := range src {
		catalog[key] = value
	}

	return catalog
}

// Keys returns the sorted key set of the English catalog. Every locale is
// expected to cover it.
func (s *Service) Keys() []string {
	catalog := s.catalogs[types.LangEnglish]
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// MissingKeys lists English keys absent from the given locale
func (s *Service) MissingKeys(lang types.Lang) []string {
	catalog := s.catalogs[lang]

	var missing []string
	for _, key := range s.Keys() {
		if _, ok := catalog[key]; !ok {
			missing = append(missing, key)
		}
	}

	return missing
}
