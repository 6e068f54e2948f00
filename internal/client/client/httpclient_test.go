package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method      string
	Path        string
	RawPath     string
	ContentType string
	Body        []byte
}

// newBackend starts a test server answering every request with status/body
// and records the last request it saw.
func newBackend(t *testing.T, status int, body string) (*HTTPClient, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*got = capturedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawPath:     r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			Body:        b,
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL + "/api/")
	require.NoError(t, err)
	return c, got
}

func TestNewHTTPClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"default", DefaultBaseURL, false},
		{"http with port", "http://127.0.0.1:8080/", false},
		{"no scheme", "example.com/api", true},
		{"ftp", "ftp://example.com/", true},
		{"no host", "http:///x", true},
		{"garbage", "://", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPClient(tt.url)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRegister_PostsJSONAndReturnsBodyVerbatim(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, "  id-1\n")

	id, err := c.Register(context.Background(), "Jane Doe", "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "  id-1\n", id)

	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/register", got.Path)
	assert.Equal(t, "application/json; charset=UTF-8", got.ContentType)

	var body map[string]string
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.Equal(t, map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"password": "pw",
	}, body)
}

func TestLogin_PostsTwoFields(t *testing.T) {
	c, got := newBackend(t, http.StatusCreated, "u-42")

	id, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-42", id)

	assert.Equal(t, "/api/login", got.Path)
	var body map[string]string
	require.NoError(t, json.Unmarshal(got.Body, &body))
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "pw"}, body)
}

func TestLogin_NonSuccessStatusIsTransportFailure(t *testing.T) {
	c, _ := newBackend(t, http.StatusUnauthorized, "bad credentials")

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrParse)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "bad credentials", se.Body)
}

func TestRegister_ConnectionErrorIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewHTTPClient(base)
	require.NoError(t, err)

	_, err = c.Register(context.Background(), "n", "e", "p")
	require.ErrorIs(t, err, ErrTransport)
}

func TestFetchProfile_FullDocument(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `{
		"id": 3, "userId": "u-42", "fullName": "Jane", "email": "jane@example.com",
		"password": "secret", "phoneNumber": "555", "occupation": "dev",
		"employer": "acme", "country": "TR", "latitude": 41.01, "longitude": 28.97
	}`)

	p, err := c.FetchProfile(context.Background(), "u-42")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/profile/u-42", got.Path)
	assert.Equal(t, "application/json; charset=UTF-8", got.ContentType)
	assert.Empty(t, got.Body)

	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "u-42", p.UserID)
	assert.Equal(t, "Jane", p.FullName)
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Equal(t, "secret", p.Password)
	require.NotNil(t, p.PhoneNumber)
	assert.Equal(t, "555", *p.PhoneNumber)
	require.NotNil(t, p.Country)
	assert.Equal(t, "TR", *p.Country)
	require.NotNil(t, p.Latitude)
	assert.InDelta(t, 41.01, *p.Latitude, 1e-9)
	require.NotNil(t, p.Longitude)
	assert.InDelta(t, 28.97, *p.Longitude, 1e-9)
}

func TestFetchProfile_EscapesUserID(t *testing.T) {
	c, got := newBackend(t, http.StatusOK, `{"id":1,"userId":"a/b","fullName":"","email":"","password":""}`)

	_, err := c.FetchProfile(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/profile/a%2Fb", got.RawPath)
}

func TestFetchProfile_OptionalFieldsNeverFail(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `{
		"id": 1, "userId": "u", "fullName": "F", "email": "e", "password": "p",
		"phoneNumber": null, "occupation": 12, "employer": {"x": 1},
		"latitude": "12.5", "longitude": "north"
	}`)

	p, err := c.FetchProfile(context.Background(), "u")
	require.NoError(t, err)

	assert.Nil(t, p.PhoneNumber)
	require.NotNil(t, p.Occupation)
	assert.Equal(t, "12", *p.Occupation)
	assert.Nil(t, p.Employer)
	assert.Nil(t, p.Country)
	require.NotNil(t, p.Latitude)
	assert.Equal(t, 12.5, *p.Latitude)
	assert.Nil(t, p.Longitude)
}

func TestFetchProfile_ParseFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"array", `[1,2,3]`},
		{"null document", `null`},
		{"missing id", `{"userId":"u","fullName":"F","email":"e","password":"p"}`},
		{"id not integer", `{"id":1.5,"userId":"u","fullName":"F","email":"e","password":"p"}`},
		{"id as string", `{"id":"1","userId":"u","fullName":"F","email":"e","password":"p"}`},
		{"missing email", `{"id":1,"userId":"u","fullName":"F","password":"p"}`},
		{"null userId", `{"id":1,"userId":null,"fullName":"F","email":"e","password":"p"}`},
		{"fullName not string", `{"id":1,"userId":"u","fullName":7,"email":"e","password":"p"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newBackend(t, http.StatusOK, tt.body)

			p, err := c.FetchProfile(context.Background(), "u")
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}

func TestResponseBodySizeLimit(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		body := strings.Repeat("a", maxResponseBody)
		c, _ := newBackend(t, http.StatusOK, body)

		id, err := c.Login(context.Background(), "a@b.com", "pw")
		require.NoError(t, err)
		assert.Len(t, id, maxResponseBody)
	})

	t.Run("over limit", func(t *testing.T) {
		c, _ := newBackend(t, http.StatusOK, strings.Repeat("a", maxResponseBody+1))

		_, err := c.Login(context.Background(), "a@b.com", "pw")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, errBodyTooLarge)
	})
}

func TestFetchProfile_NotFoundIsTransportFailure(t *testing.T) {
	c, _ := newBackend(t, http.StatusNotFound, `{"error":"no such user"}`)

	_, err := c.FetchProfile(context.Background(), "missing")
	require.ErrorIs(t, err, ErrTransport)
}

func TestWithHTTPClient_IsUsed(t *testing.T) {
	called := false
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return nil, errors.New("dial refused")
	})

	c, err := NewHTTPClient("http://backend.invalid/", WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)

	_, err = c.Login(context.Background(), "e", "p")
	require.ErrorIs(t, err, ErrTransport)
	assert.True(t, called)
	assert.Contains(t, err.Error(), "dial refused")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
