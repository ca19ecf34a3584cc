package server

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/countdown"
)

var testNow = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func testServer(t *testing.T, mutate func(*countdown.Config), opts ...Option) *httptest.Server {
	t.Helper()

	cfg := countdown.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.AmountOfSeconds = 5
	cfg.Deadline = testNow.Add(2 * time.Second)
	if mutate != nil {
		mutate(&cfg)
	}

	opts = append([]Option{
		WithNow(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	ts := httptest.NewServer(New(cfg, opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestServeNoCacheHeaders(t *testing.T) {
	ts := testServer(t, nil)

	resp, body := get(t, ts.URL+"/countdown.gif")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/gif", resp.Header.Get("Content-Type"))
	require.Equal(t, "Sat, 26 Jul 1997 05:00:00 GMT", resp.Header.Get("Expires"))
	require.Equal(t, testNow.Format(http.TimeFormat), resp.Header.Get("Last-Modified"))
	require.Equal(t, "no-store, no-cache, must-revalidate, post-check=0, pre-check=0", resp.Header.Get("Cache-Control"))
	require.Equal(t, "no-cache", resp.Header.Get("Pragma"))

	g, err := gif.DecodeAll(bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, g.Image, 3, "two seconds left gives 2, 1 and the expired frame")
	require.Equal(t, -1, g.LoopCount)
}

func TestServeRoot(t *testing.T) {
	ts := testServer(t, nil)

	resp, _ := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/elsewhere")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeQueryOverrides(t *testing.T) {
	ts := testServer(t, nil)

	resp, body := get(t, ts.URL+"/countdown.gif?deadline=2030-01-01T12:00:10&tz=UTC&sep=:&days=0&font=gomono")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	g, err := gif.DecodeAll(bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, g.Image, 6, "AmountOfSeconds bounds the frames before the deadline")
	require.Equal(t, 0, g.LoopCount)

	resp, body = get(t, ts.URL+"/countdown.gif?deadline=2030-01-01T12:00:01Z")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	g, err = gif.DecodeAll(bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, g.Image, 2)
}

func TestServeBadRequest(t *testing.T) {
	ts := testServer(t, nil)

	for _, query := range []string{
		"deadline=soon",
		"tz=Atlantis/Capital",
		"sep=ab",
		"days=two",
		"days=-1",
		"days=10",
		"days=200000000",
		"font=comic-sans",
	} {
		resp, _ := get(t, ts.URL+"/countdown.gif?"+query)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}
}

func TestServeMaxFrames(t *testing.T) {
	ts := testServer(t, func(c *countdown.Config) {
		c.AmountOfSeconds = 100
		c.Deadline = testNow.Add(time.Hour)
	}, WithMaxFrames(4))

	resp, body := get(t, ts.URL+"/countdown.gif")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	g, err := gif.DecodeAll(bytes.NewReader(body))
	require.NoError(t, err)
	require.Len(t, g.Image, 4)
}

func TestServeBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	bg := image.NewRGBA(image.Rect(0, 0, 120, 40))
	for i := range bg.Pix {
		bg.Pix[i] = 0xff
	}
	bg.Set(0, 0, color.RGBA{0, 0, 255, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, bg))
	require.NoError(t, f.Close())

	ts := testServer(t, func(c *countdown.Config) {
		c.BackgroundImageFilePath = path
	})

	for range 2 {
		resp, body := get(t, ts.URL+"/countdown.gif")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		g, err := gif.DecodeAll(bytes.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 120, 40), g.Image[0].Bounds())
	}
}

func TestServeMissingBackground(t *testing.T) {
	ts := testServer(t, func(c *countdown.Config) {
		c.BackgroundImageFilePath = filepath.Join(t.TempDir(), "missing.png")
	})

	resp, _ := get(t, ts.URL+"/countdown.gif")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestServeHead(t *testing.T) {
	ts := testServer(t, nil)

	resp, err := http.Head(ts.URL + "/countdown.gif")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/gif", resp.Header.Get("Content-Type"))
}

func TestFontCacheReuse(t *testing.T) {
	cfg := countdown.DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.Deadline = testNow

	s := New(cfg, WithNow(func() time.Time { return testNow }))
	a, err := s.loadFont("builtin:goregular")
	require.NoError(t, err)
	b, err := s.loadFont("builtin:goregular")
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, s.fonts.Len())
}
