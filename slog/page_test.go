package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/cardscrape/mock"
	cardslog "github.com/fwojciec/cardscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPage_Navigate(t *testing.T) {
	t.Parallel()

	t.Run("logs url and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Page{
			NavigateFn: func(ctx context.Context, url string) error {
				return nil
			},
		}

		page := cardslog.NewLoggingPage(inner, logger)
		err := page.Navigate(context.Background(), "https://www.cardsphere.com/sets")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "navigate")
		assert.Contains(t, output, "url=https://www.cardsphere.com/sets")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Page{
			NavigateFn: func(ctx context.Context, url string) error {
				return errors.New("net::ERR_NAME_NOT_RESOLVED")
			},
		}

		page := cardslog.NewLoggingPage(inner, logger)
		err := page.Navigate(context.Background(), "https://www.cardsphere.com/sets")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err=net::ERR_NAME_NOT_RESOLVED`)
	})
}

func TestLoggingPage_HTML(t *testing.T) {
	t.Parallel()

	t.Run("logs bytes at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Page{
			HTMLFn: func(ctx context.Context) (string, error) {
				return "<html>content</html>", nil
			},
		}

		page := cardslog.NewLoggingPage(inner, logger)
		html, err := page.HTML(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		assert.Contains(t, buf.String(), "bytes=20")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Page{
			HTMLFn: func(ctx context.Context) (string, error) {
				return "<html></html>", nil
			},
		}

		_, err := cardslog.NewLoggingPage(inner, logger).HTML(context.Background())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingPage_WaitVisible(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var gotSelector string
	inner := &mock.Page{
		WaitVisibleFn: func(ctx context.Context, selector string) error {
			gotSelector = selector
			return nil
		},
	}

	err := cardslog.NewLoggingPage(inner, logger).WaitVisible(context.Background(), ".cards")

	require.NoError(t, err)
	assert.Equal(t, ".cards", gotSelector)
	assert.Contains(t, buf.String(), "selector=.cards")
}

func TestLoggingPage_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Page{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		err := cardslog.NewLoggingPage(inner, logger).Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
