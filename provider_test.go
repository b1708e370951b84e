package localize_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localize"
)

func TestContextProvider_Isolation(t *testing.T) {
	t.Parallel()

	catalogs := map[string]map[string]any{
		"fr": {"Remove": "Retirer"},
		"de": {"Remove": "Entfernen"},
		"es": {"Remove": "Quitar"},
	}
	loader := newCountingLoader(catalogs)
	loc, err := localize.New(localize.WithLoader(loader))
	require.NoError(t, err)

	translations := map[string]string{
		"fr": "Retirer",
		"de": "Entfernen",
		"es": "Quitar",
		"en": "Remove",
	}
	langs := []string{"fr", "de", "es", "en"}

	// Concurrent callers with distinct contexts must each observe their own
	// locale, no matter how the scheduler interleaves them.
	var g errgroup.Group
	for i := range 100 {
		lang := langs[i%len(langs)]
		g.Go(func() error {
			ctx := loc.SetLanguage(context.Background(), lang)
			for range 50 {
				if got := loc.T(ctx, "Remove"); got != translations[lang] {
					return fmt.Errorf("lang %s: got %q, want %q", lang, got, translations[lang])
				}
				if got := loc.Language(ctx); got != lang {
					return fmt.Errorf("lang %s: active language reported as %q", lang, got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestContextProvider_Scoping(t *testing.T) {
	t.Parallel()

	loc, err := localize.New(localize.WithCatalog("fr", map[string]any{"Remove": "Retirer"}))
	require.NoError(t, err)

	t.Run("setting a locale does not leak into the parent context", func(t *testing.T) {
		t.Parallel()
		parent := context.Background()
		child := loc.SetLanguage(parent, "fr")

		require.Equal(t, "Retirer", loc.T(child, "Remove"))
		require.Equal(t, "Remove", loc.T(parent, "Remove"))
	})

	t.Run("the closest SetLanguage wins", func(t *testing.T) {
		t.Parallel()
		ctx := loc.SetLanguage(context.Background(), "fr")
		ctx = loc.SetLanguage(ctx, "en_US")
		require.Equal(t, "Remove", loc.T(ctx, "Remove"))
	})

	t.Run("nil context observes the default locale", func(t *testing.T) {
		t.Parallel()
		s := loc.CurrentLanguage(nil) //nolint:staticcheck // nil tolerance is part of the contract
		require.NotNil(t, s)
		require.Equal(t, "en_US", s.Locale().String())
	})
}

func TestGlobalProvider(t *testing.T) {
	t.Parallel()

	loc, err := localize.New(
		localize.WithGlobalLocale(),
		localize.WithCatalog("fr", map[string]any{"Remove": "Retirer"}),
		localize.WithCatalog("de", map[string]any{"Remove": "Entfernen"}),
	)
	require.NoError(t, err)

	ctx := context.Background()

	// Before any SetLanguage the default locale is in effect.
	require.Equal(t, "Remove", loc.T(ctx, "Remove"))

	// SetLocale affects every caller, even ones holding older contexts.
	loc.SetLanguage(ctx, "fr")
	require.Equal(t, "Retirer", loc.T(ctx, "Remove"))
	require.Equal(t, "Retirer", loc.T(context.Background(), "Remove"))

	loc.SetLanguage(ctx, "de")
	require.Equal(t, "Entfernen", loc.T(ctx, "Remove"))
}

type fixedProvider struct {
	setting *localize.Setting
}

func (p *fixedProvider) Vend(context.Context) *localize.Setting { return p.setting }

func (p *fixedProvider) SetLocale(ctx context.Context, _ localize.Locale) context.Context {
	return ctx
}

func TestCustomProvider(t *testing.T) {
	t.Parallel()

	pinned := localize.NewSetting(localize.NewLocale("fr", "FR"),
		localize.NewCatalog("fr", map[string]any{"Remove": "Retirer"}))

	loc, err := localize.New(localize.WithProvider(&fixedProvider{setting: pinned}))
	require.NoError(t, err)

	ctx := loc.SetLanguage(context.Background(), "de")
	require.Equal(t, "Retirer", loc.T(ctx, "Remove"), "a custom provider controls the active setting")
	require.Equal(t, "fr_FR", loc.CurrentLanguage(ctx).Locale().String())
}
