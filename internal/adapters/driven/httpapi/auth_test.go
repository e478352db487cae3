package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func newTestAuthGateway(t *testing.T, handler http.HandlerFunc) *AuthGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAuthGateway(Config{BaseURL: server.URL + "/"})
}

func TestAuthGateway_Login(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "a@b.com", "password": "pw12345678"}, body)

		_, _ = w.Write([]byte(`{"token":"T1","refreshToken":"R1","name":"Ana"}`))
	})

	resp, err := gateway.Login(context.Background(), "a@b.com", "pw12345678")

	require.NoError(t, err)
	assert.Equal(t, &domain.LoginResponse{Token: "T1", RefreshToken: "R1", Name: "Ana"}, resp)
}

func TestAuthGateway_Login_Rejected(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"error":"Unauthorized","message":"Credenciais inválidas","path":"/Auth/login"}`))
	})

	_, err := gateway.Login(context.Background(), "a@b.com", "wrong")

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "Credenciais inválidas", authErr.Error())
}

func TestAuthGateway_Login_RejectedWithoutMessage(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := gateway.Login(context.Background(), "a@b.com", "wrong")

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.DefaultAuthenticationMessage, authErr.Error())
}

func TestAuthGateway_Refresh(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Auth/refresh", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "R1", body["refreshToken"])
		_, _ = w.Write([]byte(`{"token":"T2"}`))
	})

	resp, err := gateway.Refresh(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, "T2", resp.Token)
	assert.Empty(t, resp.RefreshToken)
}

func TestAuthGateway_Refresh_AccessTokenField(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"T2","refreshToken":"R2"}`))
	})

	resp, err := gateway.Refresh(context.Background(), "R1")

	require.NoError(t, err)
	assert.Equal(t, "T2", resp.Token)
	assert.Equal(t, "R2", resp.RefreshToken)
}

func TestAuthGateway_Refresh_Rejected(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := gateway.Refresh(context.Background(), "R1")

	require.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestAuthGateway_Register(t *testing.T) {
	var got domain.Registration
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Usuário Criado"))
	})

	reg := domain.Registration{Name: "Ana", Email: "a@b.com", Password: "pw12345678", Role: domain.RoleUser}
	require.NoError(t, gateway.Register(context.Background(), reg))
	assert.Equal(t, reg, got)
}

func TestAuthGateway_Register_PlainTextError(t *testing.T) {
	gateway := newTestAuthGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Email Já Cadastrado"))
	})

	err := gateway.Register(context.Background(), domain.Registration{Name: "Ana", Email: "a@b.com", Password: "x"})

	var authErr *domain.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Email Já Cadastrado", authErr.Message)
}

func TestAuthGateway_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	gateway := NewAuthGateway(Config{BaseURL: server.URL})
	server.Close()

	_, err := gateway.Login(context.Background(), "a@b.com", "pw")

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	var authErr *domain.AuthenticationError
	assert.False(t, errors.As(err, &authErr))
}
