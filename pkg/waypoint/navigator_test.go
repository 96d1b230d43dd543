package waypoint

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestNavigate(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		url       string
		factory   Factory[string]
		resolved  bool
		applyWith []string
	}{
		"resolves and applies": {
			url:       "myapp://detail/list?id=42",
			factory:   echo,
			resolved:  true,
			applyWith: []string{"detail", "list"},
		},
		"partial match applies what matched": {
			url:       "myapp://unknown/list",
			factory:   only("list"),
			resolved:  true,
			applyWith: []string{"list"},
		},
		"empty link does not apply": {
			url:     "myapp://",
			factory: echo,
		},
		"unknown link does not apply": {
			url:     "myapp://unknown1/unknown2",
			factory: only("list"),
		},
		"malformed link does not apply": {
			url:     "myapp://x/%zz",
			factory: echo,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			var calls [][]string

			ok := Navigate(tc.url, tc.factory, func(d []string) {
				calls = append(calls, d)
			})

			assert.Equal(t, tc.resolved, ok)

			if tc.resolved {
				require.Len(t, calls, 1)
				assert.Equal(t, tc.applyWith, calls[0])
			} else {
				assert.Empty(t, calls)
			}
		})
	}
}

func TestNavigateWithNilApply(t *testing.T) {
	t.Parallel()

	assert.True(t, Navigate[string]("myapp://a", echo, nil))
	assert.False(t, Navigate[string]("myapp://", echo, nil))
}

func TestNavigatorLogsUnresolvedLinks(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var applied []string

	nav := Navigator[string]{
		Factory: only("list"),
		Apply:   func(d []string) { applied = d },
		Logger:  logger,
	}

	assert.False(t, nav.Navigate("myapp://unknown"))
	assert.Nil(t, applied)
	assert.Contains(t, buf.String(), `"kind":"no_destinations"`)
	assert.Contains(t, buf.String(), `"url":"myapp://unknown"`)

	buf.Reset()

	assert.True(t, nav.Navigate("myapp://list"))
	assert.Equal(t, []string{"list"}, applied)
	assert.Contains(t, buf.String(), `"destinations":1`)
}

func TestNavigatorConcurrentUse(t *testing.T) {
	t.Parallel()

	applied := atomic.NewInt64(0)
	unresolved := atomic.NewInt64(0)

	nav := Navigator[string]{
		Factory: only("list"),
		Apply: func(d []string) {
			if len(d) == 1 && d[0] == "list" {
				applied.Inc()
			}
		},
		Logger: slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)),
	}

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			nav.Navigate("myapp://x/list")
		}()

		go func() {
			defer wg.Done()

			if !nav.Navigate("myapp://x/y") {
				unresolved.Inc()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(50), applied.Load())
	assert.Equal(t, int64(50), unresolved.Load())
}

func TestFolded(t *testing.T) {
	t.Parallel()

	var seenPath []string

	factory := Folded(func(segment string, path []string, params Parameters) (string, bool) {
		seenPath = path
		if segment == "strasse" || segment == "detail" {
			return segment + ":" + params.Get("ID"), true
		}
		return "", false
	})

	got, err := Resolve("myapp://DETAIL/Stra%C3%9Fe?ID=AbC", factory)

	require.NoError(t, err)
	assert.Equal(t, []string{"detail:AbC", "strasse:AbC"}, got)
	assert.Equal(t, []string{"detail", "strasse"}, seenPath)

	assert.Nil(t, Folded[string](nil))
	assert.Equal(t, "detail", FoldSegment("Detail"))
	// composed and decomposed é fold to the same segment
	assert.Equal(t, FoldSegment("café"), FoldSegment("CAFÉ"))
}
