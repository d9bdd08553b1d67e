package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poonai/ginit/internal/auth"
	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/repo"
)

type recorded struct {
	method   string
	path     string
	user     string
	password string
	otp      string
	hasOTP   bool
	bearer   string
	body     map[string]interface{}
}

func newServer(t *testing.T, status int, response string, extraHeaders map[string]string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path}
		rec.user, rec.password, _ = r.BasicAuth()
		_, rec.hasOTP = r.Header["X-Github-Otp"]
		rec.otp = r.Header.Get("X-GitHub-OTP")
		rec.bearer = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&rec.body)
		calls = append(calls, rec)

		for k, v := range extraHeaders {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	c, err := New(WithBaseURL(srv.URL), WithTimeout(2*time.Second))
	require.NoError(t, err)
	return c, &calls
}

func TestCreateAuthorizationSendsBasicAuthNoteAndScopes(t *testing.T) {
	c, calls := newServer(t, http.StatusCreated, `{"id":1,"token":"abc123"}`, nil)

	session := c.BasicAuth(auth.Credentials{Username: "octocat", Password: "hunter2"})
	assert.Empty(t, *calls, "opening a session makes no request")

	token, err := session.CreateAuthorization(context.Background(), auth.AuthorizationRequest{
		Note:   auth.TokenNote,
		Scopes: auth.Scopes,
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/authorizations", call.path)
	assert.Equal(t, "octocat", call.user)
	assert.Equal(t, "hunter2", call.password)
	assert.False(t, call.hasOTP)
	assert.Equal(t, auth.TokenNote, call.body["note"])
	assert.Equal(t, []interface{}{"user", "public_repo", "repo", "repo:status"}, call.body["scopes"])
}

func TestCreateAuthorizationSendsOTP(t *testing.T) {
	c, calls := newServer(t, http.StatusCreated, `{"token":"abc"}`, nil)

	_, err := c.BasicAuth(auth.Credentials{Username: "u", Password: "p", TwoFactorCode: "123456"}).
		CreateAuthorization(context.Background(), auth.AuthorizationRequest{Note: "n"})

	require.NoError(t, err)
	assert.True(t, (*calls)[0].hasOTP)
	assert.Equal(t, "123456", (*calls)[0].otp)
}

func TestCreateAuthorizationEmptyToken(t *testing.T) {
	c, _ := newServer(t, http.StatusCreated, `{"id":1}`, nil)

	token, err := c.BasicAuth(auth.Credentials{Username: "u", Password: "p"}).
		CreateAuthorization(context.Background(), auth.AuthorizationRequest{Note: "n"})

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCreateAuthorizationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		headers map[string]string
		message string
	}{
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Bad credentials"}`,
			message: "Bad credentials",
		},
		{
			name:    "two-factor required",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Must specify two-factor authentication OTP code."}`,
			headers: map[string]string{"X-GitHub-OTP": "required; app"},
			message: "Must specify two-factor authentication OTP code.",
		},
		{
			name:    "already exists",
			status:  http.StatusUnprocessableEntity,
			body:    `{"message":"Validation Failed","errors":[{"resource":"OauthAccess","code":"already_exists","field":"description"}]}`,
			message: "Validation Failed",
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"message":"Server Error"}`,
			message: "Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newServer(t, tc.status, tc.body, tc.headers)

			_, err := c.BasicAuth(auth.Credentials{Username: "u", Password: "p"}).
				CreateAuthorization(context.Background(), auth.AuthorizationRequest{Note: "n"})

			require.Error(t, err)
			var apiErr *errors.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, errors.ErrCodeAuthAPI, apiErr.Code)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestCreateRepository(t *testing.T) {
	c, calls := newServer(t, http.StatusCreated,
		`{"name":"myrepo","ssh_url":"git@github.com:octocat/myrepo.git","html_url":"https://github.com/octocat/myrepo"}`, nil)

	out, err := c.WithToken("t0k3n").CreateRepository(context.Background(),
		repo.Request{Name: "myrepo", Description: "a test repo", Private: true})

	require.NoError(t, err)
	assert.Equal(t, repo.Provisioned{
		PushURL: "git@github.com:octocat/myrepo.git",
		HTMLURL: "https://github.com/octocat/myrepo",
	}, out)

	call := (*calls)[0]
	assert.Equal(t, "/user/repos", call.path)
	assert.Equal(t, "Bearer t0k3n", call.bearer)
	assert.Equal(t, "myrepo", call.body["name"])
	assert.Equal(t, "a test repo", call.body["description"])
	assert.Equal(t, true, call.body["private"])
}

func TestCreateRepositoryOmitsEmptyDescription(t *testing.T) {
	c, calls := newServer(t, http.StatusCreated, `{"ssh_url":"git@github.com:o/r.git"}`, nil)

	_, err := c.WithToken("t").CreateRepository(context.Background(), repo.Request{Name: "r"})

	require.NoError(t, err)
	_, has := (*calls)[0].body["description"]
	assert.False(t, has)
	assert.Equal(t, false, (*calls)[0].body["private"])
}

func TestCreateRepositoryError(t *testing.T) {
	c, _ := newServer(t, http.StatusUnprocessableEntity, `{"message":"Repository creation failed."}`, nil)

	_, err := c.WithToken("t").CreateRepository(context.Background(), repo.Request{Name: "dup"})

	assert.True(t, errors.Is(err, errors.ErrCodeRepoCreation))
	assert.Equal(t, http.StatusUnprocessableEntity, errors.StatusOf(err))
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c, err := New(WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.WithToken("t").CreateRepository(context.Background(), repo.Request{Name: "slow"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRepoCreation))
	assert.Zero(t, errors.StatusOf(err))
}

func TestWithBaseURLAddsSlash(t *testing.T) {
	c, err := New(WithBaseURL("https://ghe.example.com/api/v3"))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", c.baseURL.String())
	assert.Equal(t, DefaultTimeout, c.timeout)
}
