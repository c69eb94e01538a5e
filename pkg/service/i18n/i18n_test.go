package i18n_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/service/i18n"
)

func TestTranslate(t *testing.T) {
	svc, err := i18n.New()
	gt.NoError(t, err).Required()

	t.Run("english catalog", func(t *testing.T) {
		gt.Value(t, svc.T(types.LangEnglish, "dashboard.title")).Equal("Task Management Dashboard")
		gt.Value(t, svc.T(types.LangEnglish, "role.viewer")).Equal("Viewer")
	})

	t.Run("arabic catalog", func(t *testing.T) {
		gt.Value(t, svc.T(types.LangArabic, "dashboard.title")).Equal("لوحة تحكم إدارة المهام")
		gt.Value(t, svc.T(types.LangArabic, "tasks.urgent")).Equal("عاجل")
		gt.Value(t, svc.T(types.LangArabic, "role.manager")).Equal("مدير")
	})

	t.Run("unknown key falls back to the key itself", func(t *testing.T) {
		gt.Value(t, svc.T(types.LangEnglish, "nav.settings")).Equal("nav.settings")
		gt.Value(t, svc.T(types.LangArabic, "nav.settings")).Equal("nav.settings")
	})

	t.Run("every locale covers the english key set", func(t *testing.T) {
		for _, lang := range types.AllLangs() {
			gt.Array(t, svc.MissingKeys(lang)).Length(0)
		}
	})
}

func TestCatalog(t *testing.T) {
	svc, err := i18n.New()
	gt.NoError(t, err).Required()

	catalog := svc.Catalog(types.LangArabic)
	gt.Value(t, catalog["nav.tasks"]).Equal("المهام")

	// the returned map is a copy
	catalog["nav.tasks"] = "tampered"
	gt.Value(t, svc.T(types.LangArabic, "nav.tasks")).Equal("المهام")
}
