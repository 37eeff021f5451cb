package handlers_test

import (
	"net/http"
	"testing"

	"github.com/collabmatch/backend/internal/domain"
	"github.com/collabmatch/backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func profileBody() map[string]any {
	return map[string]any{
		"age":          26,
		"gender":       "other",
		"location":     "Lisbon",
		"followers":    1200,
		"languages":    []string{"pt", "en"},
		"categories":   []string{"food"},
		"profilePhoto": "https://example.com/p.jpg",
	}
}

func TestProfileHandler_StatusSplit(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	_, intruderToken := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	profile := testutil.NewProfileBuilder(owner.ID).Build(t, ts.DB.DB)

	profileURL := ts.APIURL("/profiles/" + profile.ID.String())

	t.Run("401 without token", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPut, profileURL, "", profileBody())
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("403 for non-owner", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPut, profileURL, intruderToken, profileBody())
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})

	t.Run("404 for absent profile", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPut, ts.APIURL("/profiles/"+uuid.New().String()), ownerToken, profileBody())
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("200 for owner", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPut, profileURL, ownerToken, profileBody())
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("public read without token", func(t *testing.T) {
		resp, err := http.Get(profileURL)
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("204 owner delete", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodDelete, profileURL, ownerToken, nil)
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusNoContent)
	})
}

func TestProfileHandler_CreateOwnership(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, influencerToken := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	_, companyToken := testutil.NewUserBuilder().
		WithAccountType(domain.AccountCompany).
		BuildAndLogin(t, ts)

	t.Run("influencer creates profile", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPost, ts.APIURL("/profiles"), influencerToken, profileBody())
		resp := doRequest(t, req)

		var created struct {
			UserID string `json:"userId"`
		}
		testutil.AssertEnvelope(t, resp, http.StatusCreated, &created)
		assert.NotEmpty(t, created.UserID)
	})

	t.Run("company account is forbidden", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPost, ts.APIURL("/profiles"), companyToken, profileBody())
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})
}

func TestAdminHandler_Maintenance(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, userToken := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	_, adminToken := testutil.NewUserBuilder().
		WithRole(domain.RoleAdmin).
		BuildAndLogin(t, ts)

	t.Run("non-admin cannot toggle", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPost, ts.APIURL("/admin/maintenance"), userToken, map[string]bool{"enabled": true})
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusForbidden)
	})

	t.Run("admin enables maintenance", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPost, ts.APIURL("/admin/maintenance"), adminToken, map[string]bool{"enabled": true})
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("API returns 503 while health stays up", func(t *testing.T) {
		apiResp, err := http.Get(ts.APIURL("/profiles"))
		require.NoError(t, err)
		defer apiResp.Body.Close()
		testutil.AssertStatusCode(t, apiResp, http.StatusServiceUnavailable)

		healthResp, err := http.Get(ts.BaseURL() + "/health")
		require.NoError(t, err)
		defer healthResp.Body.Close()
		testutil.AssertStatusCode(t, healthResp, http.StatusOK)
	})

	t.Run("admin disables maintenance again", func(t *testing.T) {
		req := testutil.AuthedRequest(t, http.MethodPost, ts.APIURL("/admin/maintenance"), adminToken, map[string]bool{"enabled": false})
		resp := doRequest(t, req)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		apiResp, err := http.Get(ts.APIURL("/profiles"))
		require.NoError(t, err)
		defer apiResp.Body.Close()
		testutil.AssertStatusCode(t, apiResp, http.StatusOK)
	})
}
