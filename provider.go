package localize

import (
	"context"
	"sync"
	"sync/atomic"
)

// SettingsProvider decides which Setting is active for a logical caller.
// Two strategies ship with the package: a process-wide one for single-tenant
// batch/CLI programs, and a context-scoped one for servers where each
// request carries its own locale. Custom strategies can be plugged in via
// WithProvider.
//
// Vend never returns nil: a context that never had a locale set observes the
// default locale's setting.
type SettingsProvider interface {
	// Vend returns the Setting active for the caller's context.
	Vend(ctx context.Context) *Setting

	// SetLocale installs a freshly built Setting for the locale. The
	// context-scoped strategy records it on the returned context, which the
	// caller must use from then on; the global strategy mutates process-wide
	// state and returns ctx unchanged.
	SetLocale(ctx context.Context, locale Locale) context.Context
}

// settingFactory builds the Setting for a locale, resolving its catalog as a
// side effect. Wired to the owning Localizer's catalog cache.
type settingFactory func(Locale) *Setting

// defaultSetting lazily materializes the fallback Setting shared by both
// provider strategies.
type defaultSetting struct {
	factory settingFactory
	locale  Locale
	once    sync.Once
	setting *Setting
}

func (d *defaultSetting) get() *Setting {
	d.once.Do(func() { d.setting = d.factory(d.locale) })
	return d.setting
}

// ctxKey is the private context key carrying the active Setting.
type ctxKey struct{}

// contextProvider scopes the active locale to a context.Context chain, the
// Go analogue of per-request thread-local state. Concurrent requests cannot
// observe each other's locale because they never share a context.
type contextProvider struct {
	factory  settingFactory
	fallback *defaultSetting
}

func newContextProvider(factory settingFactory, def Locale) *contextProvider {
	return &contextProvider{
		factory:  factory,
		fallback: &defaultSetting{factory: factory, locale: def},
	}
}

func (p *contextProvider) Vend(ctx context.Context) *Setting {
	if ctx != nil {
		if s, ok := ctx.Value(ctxKey{}).(*Setting); ok {
			return s
		}
	}
	return p.fallback.get()
}

func (p *contextProvider) SetLocale(ctx context.Context, locale Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, p.factory(locale))
}

// globalProvider shares one Setting across the whole process. SetLocale
// replaces it atomically for every caller; read-your-writes holds for the
// setter, other goroutines observe the change eventually.
type globalProvider struct {
	factory  settingFactory
	fallback *defaultSetting
	current  atomic.Pointer[Setting]
}

func newGlobalProvider(factory settingFactory, def Locale) *globalProvider {
	return &globalProvider{
		factory:  factory,
		fallback: &defaultSetting{factory: factory, locale: def},
	}
}

func (p *globalProvider) Vend(_ context.Context) *Setting {
	if s := p.current.Load(); s != nil {
		return s
	}
	return p.fallback.get()
}

func (p *globalProvider) SetLocale(ctx context.Context, locale Locale) context.Context {
	p.current.Store(p.factory(locale))
	return ctx
}
