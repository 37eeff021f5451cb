package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/collabmatch/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body map[string]string) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"username":    "newuser",
				"password":    "password123",
				"email":       "newuser@example.com",
				"accountType": "influencer",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing username",
			request: map[string]string{
				"password":    "password123",
				"email":       "nouser@example.com",
				"accountType": "influencer",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "short password",
			request: map[string]string{
				"username":    "shortpw",
				"password":    "abc",
				"email":       "shortpw@example.com",
				"accountType": "company",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad account type",
			request: map[string]string{
				"username":    "badtype",
				"password":    "password123",
				"email":       "badtype@example.com",
				"accountType": "admin",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			request: map[string]string{
				"username":    "existinguser",
				"password":    "password123",
				"email":       "unique@example.com",
				"accountType": "influencer",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)
			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.APIURL("/auth/register"), tt.request)
			testutil.AssertStatusCode(t, resp, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var user struct {
					ID       string `json:"id"`
					Username string `json:"username"`
				}
				testutil.AssertEnvelope(t, resp, http.StatusCreated, &user)
				assert.Equal(t, "newuser", user.Username)
				assert.NotEmpty(t, user.ID)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("loginuser").
		Build(t, ts.DB.DB)

	t.Run("successful login returns token", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"username": user.Username,
			"password": rawPassword,
		})

		var result struct {
			Token string `json:"token"`
		}
		testutil.AssertEnvelope(t, resp, http.StatusOK, &result)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		wrongPass := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"username": user.Username,
			"password": "wrongpassword",
		})
		unknownUser := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"username": "ghost",
			"password": "whatever123",
		})

		testutil.AssertErrorResponse(t, wrongPass, http.StatusUnauthorized, "invalid credentials")
		testutil.AssertErrorResponse(t, unknownUser, http.StatusUnauthorized, "invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{"username": user.Username})
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestAuthHandler_PasswordResetEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewUserBuilder().
		WithEmail("resettable@example.com").
		Build(t, ts.DB.DB)

	t.Run("known and unknown emails answer identically", func(t *testing.T) {
		known := postJSON(t, ts.APIURL("/auth/forgot-password"), map[string]string{
			"email": "resettable@example.com",
		})
		unknown := postJSON(t, ts.APIURL("/auth/forgot-password"), map[string]string{
			"email": "ghost@example.com",
		})

		testutil.AssertStatusCode(t, known, http.StatusAccepted)
		testutil.AssertStatusCode(t, unknown, http.StatusAccepted)
	})

	t.Run("reset with bogus token fails", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/reset-password/deadbeef"), map[string]string{
			"newPassword": "freshpassword1",
		})
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestAuthHandler_ProtectedRoutesRequireToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndLogin(t, ts)

	t.Run("no token is unauthorized", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/users/" + user.ID.String()))
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodGet, ts.APIURL("/users/"+user.ID.String()), "not-a-token", nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("valid token is accepted", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodGet, ts.APIURL("/users/"+user.ID.String()), token, nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var got struct {
			Username string `json:"username"`
		}
		testutil.AssertEnvelope(t, resp, http.StatusOK, &got)
		assert.Equal(t, user.Username, got.Username)
	})
}
