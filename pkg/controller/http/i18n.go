package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/service/i18n"
	"github.com/maham-hq/maham/pkg/usecase"
)

type noticeKey struct{}

// requestLang resolves the locale from the lang query parameter, then the
// Accept-Language header, defaulting to English.
func requestLang(r *http.Request) types.Lang {
	if lang, err := types.ParseLang(r.URL.Query().Get("lang")); err == nil {
		return lang
	}
	accept := r.Header.Get("Accept-Language")
	for _, lang := range types.AllLangs() {
		if strings.HasPrefix(accept, lang.String()) {
			return lang
		}
	}
	return types.LangEnglish
}

// localeMiddleware attaches a notice translator for the request's locale,
// used by respondError to localize error notices.
func localeMiddleware(svc *i18n.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := requestLang(r)
			translate := func(key string) string {
				return svc.T(lang, key)
			}
			ctx := context.WithValue(r.Context(), noticeKey{}, translate)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func noticeFromContext(ctx context.Context, key string) string {
	if translate, ok := ctx.Value(noticeKey{}).(func(string) string); ok {
		return translate(key)
	}
	return ""
}

type localeResponse struct {
	Lang     string            `json:"lang"`
	RTL      bool              `json:"rtl"`
	Messages map[string]string `json:"messages"`
}

func localeHandler(svc *i18n.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := types.ParseLang(chi.URLParam(r, "lang"))
		if err != nil {
			respondError(w, r, goerr.Wrap(usecase.ErrValidation, "unsupported language",
				goerr.V("lang", chi.URLParam(r, "lang"))))
			return
		}

		respondJSON(w, http.StatusOK, localeResponse{
			Lang:     lang.String(),
			RTL:      lang.RTL(),
			Messages: svc.Catalog(lang),
		})
	}
}
