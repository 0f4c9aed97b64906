package health

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
)

type healthUseCase struct {
	db *ormKit.DB
}

func CreateHealthUseCase(db *ormKit.DB) domain.HealthUseCase {
	return &healthUseCase{db: db}
}

// Ping reports readiness by round-tripping the database connection.
func (h *healthUseCase) Ping(ctx context.Context) error {
	if err := h.db.Ping(ctx); err != nil {
		return code.CreateErrorCode(http.StatusServiceUnavailable).AddErrorMetaData(errors.Wrap(err, "ping database failed"))
	}
	return nil
}
