// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

func testClients() []models.Client {
	return []models.Client{
		{ID: 1, Username: "a"},
		{ID: 2, Username: "b"},
		{ID: 3, Username: "c"},
		// Username that collides with another client's id: the id
		// match must win for the input "2".
		{ID: 9, Username: "2"},
	}
}

func TestFind_IDBeforeUsername(t *testing.T) {
	gw := &stubGateway{clients: testClients()}
	svc := NewClientService(gw, logger.Nop())

	got, err := svc.Find(context.Background(), "2")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "b", got.Username)
}

func TestFind_UsernameFallback(t *testing.T) {
	gw := &stubGateway{clients: testClients()}
	svc := NewClientService(gw, logger.Nop())

	got, err := svc.Find(context.Background(), "b")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestFind_DigitsWithoutIDMatchFallsBackToUsername(t *testing.T) {
	gw := &stubGateway{clients: []models.Client{{ID: 5, Username: "42"}}}
	svc := NewClientService(gw, logger.Nop())

	got, err := svc.Find(context.Background(), "42")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.ID)
}

func TestFind_NotFoundIsNilNotError(t *testing.T) {
	gw := &stubGateway{clients: testClients()}
	svc := NewClientService(gw, logger.Nop())

	for _, identifier := range []string{"7", "z", ""} {
		got, err := svc.Find(context.Background(), identifier)
		require.NoError(t, err)
		assert.Nil(t, got, "identifier %q", identifier)
	}
}

func TestFindByUsername_IgnoresIDs(t *testing.T) {
	gw := &stubGateway{clients: testClients()}
	svc := NewClientService(gw, logger.Nop())

	got, err := svc.FindByUsername(context.Background(), "2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.ID)

	got, err = svc.FindByUsername(context.Background(), "3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_LegacyWithoutAddressRefusedLocally(t *testing.T) {
	gw := &stubGateway{}
	svc := NewClientService(gw, logger.Nop())

	_, err := svc.Create(context.Background(), models.Client{
		Username: "tops_zultys",
		Password: "pw",
		Type:     models.ClientLegacy,
	})

	require.ErrorIs(t, err, ErrLegacyAddressRequired)
	assert.Empty(t, gw.createClientCalls, "no request may be issued")
}

func TestCreate_AbsentTypeTreatedAsLegacy(t *testing.T) {
	gw := &stubGateway{}
	svc := NewClientService(gw, logger.Nop())

	_, err := svc.Create(context.Background(), models.Client{
		Username: "tops_zultys",
		Password: "pw",
	})

	require.ErrorIs(t, err, ErrLegacyAddressRequired)
	assert.Empty(t, gw.createClientCalls)
}

func TestCreate_WebWithoutAddressAllowed(t *testing.T) {
	gw := &stubGateway{createdClient: models.Client{ID: 42, Username: "bicom_web"}}
	svc := NewClientService(gw, logger.Nop())

	created, err := svc.Create(context.Background(), models.Client{
		Username: "bicom_web",
		Password: "pw",
		Type:     models.ClientWeb,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	require.Len(t, gw.createClientCalls, 1)
}

func TestCreate_UsernameRequired(t *testing.T) {
	gw := &stubGateway{}
	svc := NewClientService(gw, logger.Nop())

	_, err := svc.Create(context.Background(), models.Client{Username: "   "})

	require.ErrorIs(t, err, ErrUsernameRequired)
	assert.Empty(t, gw.createClientCalls)
}
