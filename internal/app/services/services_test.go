package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/disiplintakip/internal/app/repositories"
	"github.com/oguzk/disiplintakip/internal/pkg/jsonstore"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	store, err := jsonstore.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	repos, err := repositories.NewRepositories(store)
	require.NoError(t, err)
	return New(repos, "")
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.March, 15, 10, 0, 0, 0, time.UTC)
	}
}
