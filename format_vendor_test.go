package localize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/localize"
)

var (
	enUS = localize.NewLocale("en", "US")
	enAU = localize.NewLocale("en", "AU")
	en   = localize.NewLocale("en", "")
)

func TestDateFormatVendor_Register(t *testing.T) {
	t.Parallel()

	t.Run("rejects reserved ids", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		for id := localize.FormatID(0); id < localize.DefaultFormatID; id++ {
			err := v.Register(id, enUS, localize.NewDateFormat("01/02/2006", enUS), false)
			require.ErrorIs(t, err, localize.ErrReservedFormatID, "id %d must be rejected", id)
		}
	})

	t.Run("accepts the default id and above", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(localize.DefaultFormatID, enUS, localize.NewDateFormat("01/02/2006", enUS), false))
		require.NoError(t, v.Register(100, enUS, localize.NewDateFormat("01/02/2006", enUS), false))
	})

	t.Run("rejects nil format", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.ErrorIs(t, v.Register(100, enUS, nil, false), localize.ErrNilFormat)
	})

	t.Run("overwrites an existing registration", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(100, enUS, localize.NewDateFormat("01/02/2006", enUS), false))
		require.NoError(t, v.Register(100, enUS, localize.NewDateFormat("2006-01-02", enUS), false))
		got := v.Resolve(100, enUS, localize.StyleShort)
		require.Equal(t, "2006-01-02", got.Layout())
	})
}

func TestDateFormatVendor_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("builtin styles bypass the registry", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		short := v.Resolve(localize.StyleShort, enUS, localize.StyleShort)
		require.Equal(t, "1/2/06", short.Layout())
		medium := v.Resolve(localize.StyleMedium, enUS, localize.StyleShort)
		require.Equal(t, "Jan 2, 2006", medium.Layout())
	})

	t.Run("exact locale wins over language-only", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(100, enAU, localize.NewDateFormat("02/01/2006", enAU), false))
		require.NoError(t, v.Register(100, en, localize.NewDateFormat("01/02/2006", en), false))
		require.Equal(t, "02/01/2006", v.Resolve(100, enAU, localize.StyleShort).Layout())
	})

	t.Run("falls back to language-only registration", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(100, enAU, localize.NewDateFormat("02/01/2006", enAU), true))
		require.NoError(t, v.Register(100, en, localize.NewDateFormat("01/02/2006", en), false))
		// en_US has no exact entry: resolution must use the "en" pattern,
		// not the AU one.
		require.Equal(t, "01/02/2006", v.Resolve(100, enUS, localize.StyleShort).Layout())
	})

	t.Run("default id hard-falls back to short", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		got := v.Resolve(localize.DefaultFormatID, enUS, localize.StyleLong)
		require.Equal(t, "1/2/06", got.Layout(), "alternate id must not influence the default-id fallback")
	})

	t.Run("unknown id retries the alternate", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		got := v.Resolve(100, enUS, localize.StyleMedium)
		require.Equal(t, v.Resolve(localize.StyleMedium, enUS, localize.StyleShort).Layout(), got.Layout())
	})

	t.Run("unregistered custom everything lands on short", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		got := v.Resolve(100, enUS, 200)
		require.NotNil(t, got)
		require.Equal(t, "1/2/06", got.Layout())
	})

	t.Run("total for arbitrary inputs", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		for _, id := range []localize.FormatID{0, 1, 2, 3, 9, 10, 100, 5000} {
			for _, loc := range []localize.Locale{enUS, en, localize.NewLocale("xx", "YY"), {}} {
				require.NotNil(t, v.Resolve(id, loc, localize.DefaultFormatID))
			}
		}
	})
}

func TestDateFormatVendor_DefensiveCopies(t *testing.T) {
	t.Parallel()

	v := localize.NewDateFormatVendor()
	require.NoError(t, v.Register(100, enUS, localize.NewDateFormat("01/02/2006", enUS), false))

	first := v.Resolve(100, enUS, localize.StyleShort)
	second := v.Resolve(100, enUS, localize.StyleShort)

	first.SetLayout("2006")
	require.Equal(t, "01/02/2006", second.Layout(), "mutating one resolved copy must not affect another")
	require.Equal(t, "01/02/2006", v.Resolve(100, enUS, localize.StyleShort).Layout(), "registry copy must be untouched")
}

func TestDateFormatVendor_Unregister(t *testing.T) {
	t.Parallel()

	v := localize.NewDateFormatVendor()
	require.NoError(t, v.Register(100, enAU, localize.NewDateFormat("02/01/2006", enAU), true))
	require.NoError(t, v.Register(100, en, localize.NewDateFormat("01/02/2006", en), false))

	v.Unregister(100, enAU)

	// Exact entry is gone; the language-only entry still serves.
	require.Equal(t, "01/02/2006", v.Resolve(100, enAU, localize.StyleShort).Layout())

	// The input list is append-only and survives unregistration.
	inputs := v.InputFormats(enAU)
	last := inputs[len(inputs)-1]
	require.Equal(t, "02/01/2006", last.Layout())

	// Unregistering an absent key is a no-op.
	v.Unregister(999, enAU)
}

func TestDateFormatVendor_InputFormats(t *testing.T) {
	t.Parallel()

	t.Run("standard parsers and ISO always lead", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		formats := v.InputFormats(enUS)
		require.Len(t, formats, 4)
		require.Equal(t, "1/2/06", formats[0].Layout())
		require.Equal(t, "Jan 2, 2006", formats[1].Layout())
		require.Equal(t, "January 2, 2006", formats[2].Layout())
		require.Equal(t, "2006-01-02", formats[3].Layout())
	})

	t.Run("custom formats follow in registration order", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(100, enUS, localize.NewDateFormat("01.02.2006", enUS), true))
		require.NoError(t, v.RegisterInput(enUS, localize.NewDateFormat("01_02_2006", enUS)))

		formats := v.InputFormats(enUS)
		require.Len(t, formats, 6)
		require.Equal(t, "01.02.2006", formats[4].Layout())
		require.Equal(t, "01_02_2006", formats[5].Layout())
	})

	t.Run("language-only fallback", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		require.NoError(t, v.Register(100, en, localize.NewDateFormat("01.02.2006", en), true))

		formats := v.InputFormats(enUS)
		require.Len(t, formats, 5)
		require.Equal(t, "01.02.2006", formats[4].Layout())
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		t.Parallel()
		v := localize.NewDateFormatVendor()
		f := localize.NewDateFormat("01.02.2006", enUS)
		require.NoError(t, v.RegisterInput(enUS, f))
		require.NoError(t, v.RegisterInput(enUS, f))
		require.Len(t, v.InputFormats(enUS), 6)
	})
}

func TestDateFormatVendor_Concurrency(t *testing.T) {
	t.Parallel()

	v := localize.NewDateFormatVendor()
	var g errgroup.Group

	for i := range 16 {
		id := localize.FormatID(100 + i)
		g.Go(func() error {
			return v.Register(id, enUS, localize.NewDateFormat("2006-01-02", enUS), i%2 == 0)
		})
		g.Go(func() error {
			for range 100 {
				if v.Resolve(id, enUS, localize.StyleShort) == nil {
					t.Error("Resolve returned nil under concurrency")
				}
				v.InputFormats(enUS)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDateFormat_FormatParse(t *testing.T) {
	t.Parallel()

	f := localize.NewDateFormat("02/01/2006", enAU)
	day := time.Date(2021, time.March, 4, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "04/03/2021", f.Format(day))

	parsed, err := f.Parse("04/03/2021")
	require.NoError(t, err)
	require.Equal(t, day, parsed)

	_, err = f.Parse("not a date")
	require.Error(t, err)
}
