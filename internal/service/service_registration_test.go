package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-register-form/internal/config"
	"github.com/MKhiriev/go-register-form/internal/cookies"
	"github.com/MKhiriev/go-register-form/internal/form"
	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/mock"
	"github.com/MKhiriev/go-register-form/models"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestRegistrationService(cfg config.Cookie) *registrationService {
	s := NewRegistrationService(cfg, logger.Nop()).(*registrationService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func validRegistration() models.Registration {
	return models.Registration{
		Username:        "user_1",
		Email:           "user@example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
		RememberMe:      true,
	}
}

func TestRegistrationService_FormAppliesCookieConfig(t *testing.T) {
	ctx := context.Background()
	svc := newTestRegistrationService(config.Cookie{Name: "remembered", TTLDays: 30})
	jar := cookies.NewMemoryJar(cookies.WithMemoryClock(func() time.Time { return fixedNow }))

	res := svc.Form(ctx, form.NewSurface(validRegistration()), jar).OnSubmit(ctx)
	require.True(t, res.Accepted())

	cs := jar.Cookies()
	require.Len(t, cs, 1)
	assert.Equal(t, "remembered", cs[0].Name)
	assert.Equal(t, fixedNow.Add(30*24*time.Hour), cs[0].Expires)
}

func TestRegistrationService_FormDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestRegistrationService(config.Cookie{})
	jar := cookies.NewMemoryJar(cookies.WithMemoryClock(func() time.Time { return fixedNow }))

	svc.Form(ctx, form.NewSurface(validRegistration()), jar).OnSubmit(ctx)

	cs := jar.Cookies()
	require.Len(t, cs, 1)
	assert.Equal(t, form.DefaultCookieName, cs[0].Name)
	assert.Equal(t, fixedNow.Add(form.DefaultCookieDays*24*time.Hour), cs[0].Expires)
}

func TestRegistrationService_Remembered(t *testing.T) {
	ctrl := gomock.NewController(t)
	jar := mock.NewMockJar(ctrl)
	jar.EXPECT().Read(gomock.Any()).Return("theme=dark; username=user_1", nil)

	got, err := newTestRegistrationService(config.Cookie{}).Remembered(context.Background(), jar)
	require.NoError(t, err)
	assert.Equal(t, "user_1", got)
}

func TestRegistrationService_Remembered_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	jar := mock.NewMockJar(ctrl)
	jar.EXPECT().Read(gomock.Any()).Return("theme=dark", nil)

	got, err := newTestRegistrationService(config.Cookie{Name: "username"}).Remembered(context.Background(), jar)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRegistrationService_Remembered_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	jar := mock.NewMockJar(ctrl)
	boom := errors.New("boom")
	jar.EXPECT().Read(gomock.Any()).Return("", boom)

	_, err := newTestRegistrationService(config.Cookie{}).Remembered(context.Background(), jar)
	assert.ErrorIs(t, err, boom)
}

func TestRegistrationService_CookiesDisabled(t *testing.T) {
	assert.True(t, newTestRegistrationService(config.Cookie{Disabled: true}).CookiesDisabled())
	assert.False(t, newTestRegistrationService(config.Cookie{}).CookiesDisabled())
}

func TestNewServices(t *testing.T) {
	svcs, err := NewServices(config.App{Version: "1.0.0"}, config.Cookie{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))
	assert.NotNil(t, svcs.RegistrationService)

	_, err = NewServices(config.App{}, config.Cookie{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
