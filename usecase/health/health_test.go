package health

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superj80820/user-profile-service/kit/code"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

func TestPing(t *testing.T) {
	db, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)

	useCase := CreateHealthUseCase(db)
	assert.NoError(t, useCase.Ping(context.Background()))
}

func TestPingCancelledContext(t *testing.T) {
	db, err := ormKit.CreateDB(ormKit.UseSQLite(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	useCase := CreateHealthUseCase(db)
	err = useCase.Ping(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, code.ParseErrorCode(err).HTTPCode)
}
