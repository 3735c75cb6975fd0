package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trouvaille/internal/mock"
	"trouvaille/internal/session"
	"trouvaille/models"
)

func TestSessionService_Login_PersistsCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	svc := NewSessionService(mockStore)

	mockStore.EXPECT().Set(models.Credentials{Username: "admin", Password: "secret"}).Return(nil)

	require.NoError(t, svc.Login("admin", "secret"))
}

func TestSessionService_Login_RejectsBlankInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewSessionService(mock.NewMockStore(ctrl))

	assert.ErrorIs(t, svc.Login("  ", "secret"), ErrMissingFields)
	assert.ErrorIs(t, svc.Login("admin", ""), ErrMissingFields)
}

func TestSessionService_Logout_ClearsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	svc := NewSessionService(mockStore)

	mockStore.EXPECT().Clear().Return(nil)

	require.NoError(t, svc.Logout())
}

func TestSessionService_IsAdmin_DelegatesToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	svc := NewSessionService(mockStore)

	mockStore.EXPECT().Present().Return(true)
	assert.True(t, svc.IsAdmin())

	mockStore.EXPECT().Present().Return(false)
	assert.False(t, svc.IsAdmin())
}

func TestSessionService_Credentials_MapsMissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	svc := NewSessionService(mockStore)

	mockStore.EXPECT().Get().Return(models.Credentials{}, session.ErrNoSession)

	_, err := svc.Credentials()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSessionService_Credentials_ReturnsStoredPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	svc := NewSessionService(mockStore)

	want := models.Credentials{Username: "admin", Password: "secret"}
	mockStore.EXPECT().Get().Return(want, nil)

	got, err := svc.Credentials()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
