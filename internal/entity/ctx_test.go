package entity_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/certification/internal/entity"
)

func TestUserFromContext(t *testing.T) {
	t.Parallel()

	_, err := entity.UserFromContext(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	user := entity.User{ID: uuid.Must(uuid.NewV4())}

	got, err := entity.UserFromContext(entity.SetUserToContext(context.Background(), user))
	require.NoError(t, err)
	require.Equal(t, user, got)
}

func TestIPFromContext(t *testing.T) {
	t.Parallel()

	require.Empty(t, entity.IPFromContext(context.Background()))
	require.Equal(t, "10.0.0.1", entity.IPFromContext(entity.SetIPToContext(context.Background(), "10.0.0.1")))
}
