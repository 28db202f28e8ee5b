package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gin-user-rpc/internal/core/config"
	"gin-user-rpc/internal/feature/user"
	"gin-user-rpc/internal/repo"
	"gin-user-rpc/internal/transport/http/router"
	"gin-user-rpc/pkg/contract"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := zaptest.NewLogger(t)
	srv := httptest.NewServer(router.NewAPIEngine(l, &config.Config{}, user.NewService(repo.NewUserRepo(user.Seed()...), l)))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, addr string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--addr", addr}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	addr := newServer(t).URL

	out, err := run(t, addr, "list")
	require.NoError(t, err)
	var us []contract.User
	require.NoError(t, json.Unmarshal([]byte(out), &us))
	assert.Len(t, us, 2)

	out, err = run(t, addr, "create", "--name", "Carol", "--email", "carol@example.com")
	require.NoError(t, err)
	var u contract.User
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	assert.Equal(t, contract.User{ID: 3, Name: "Carol", Email: "carol@example.com"}, u)

	out, err = run(t, addr, "update", "1", "--email", "newalice@example.com")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	assert.Equal(t, contract.User{ID: 1, Name: "Alice", Email: "newalice@example.com"}, u)

	out, err = run(t, addr, "get", "1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	assert.Equal(t, "newalice@example.com", u.Email)

	out, err = run(t, addr, "delete", "2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, out)
}

func TestCommandErrors(t *testing.T) {
	addr := newServer(t).URL

	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"not found":      {args: []string{"get", "99"}, wantErr: "User not found (HTTP 404)"},
		"validation":     {args: []string{"create", "--name", "", "--email", "x@x.com"}, wantErr: "validation failed\n  name: must not be empty"},
		"bad id":         {args: []string{"delete", "two"}, wantErr: `invalid user id "two"`},
		"missing arg":    {args: []string{"get"}, wantErr: "accepts 1 arg(s), received 0"},
		"update bad arg": {args: []string{"update", "1", "--email", "nope"}, wantErr: "validation failed\n  email: must be a valid email address"},
	}
	for tn, tt := range tests {
		t.Run(tn, func(t *testing.T) {
			_, err := run(t, addr, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := newServer(t)
	addr := srv.URL
	srv.Close()

	_, err := run(t, addr, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
