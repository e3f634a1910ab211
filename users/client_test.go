package users

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(roblox.NewClient(), WithBaseURL(server.URL))
}

func TestGet(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/900673686", r.URL.Path)
			fmt.Fprint(w, `{
				"description": "OMG is this u???",
				"created": "2018-12-22T06:14:46.327Z",
				"isBanned": false,
				"externalAppDisplayName": "SteveApp",
				"hasVerifiedBadge": false,
				"id": 900673686,
				"name": "TomClancy247",
				"displayName": "Steve"
			}`)
		}))
		defer server.Close()

		user, err := newTestClient(server).Get(context.Background(), 900673686)
		require.NoError(t, err)

		assert.Equal(t, int64(900673686), user.ID)
		assert.Equal(t, "TomClancy247", user.Name)
		assert.Equal(t, "Steve", user.DisplayName)
		assert.Equal(t, "OMG is this u???", user.Description)
		assert.False(t, user.IsBanned)
		assert.False(t, user.HasVerifiedBadge)
		require.NotNil(t, user.ExternalAppDisplayName)
		assert.Equal(t, "SteveApp", *user.ExternalAppDisplayName)
		assert.Equal(t, time.Date(2018, 12, 22, 6, 14, 46, 327000000, time.UTC), user.Created)
	})

	t.Run("absent optional fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": 1, "name": "Roblox", "displayName": "Roblox"}`)
		}))
		defer server.Close()

		user, err := newTestClient(server).Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, user.ExternalAppDisplayName)
		assert.Empty(t, user.Description)
		assert.True(t, user.Created.IsZero())
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server).Get(context.Background(), 0)
		assert.ErrorIs(t, err, roblox.ErrNotFound)
	})
}

func TestSearch(t *testing.T) {
	t.Run("two results with cursor", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/search", r.URL.Path)
			assert.Equal(t, "Henry", r.URL.Query().Get("keyword"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{
				"previousPageCursor": null,
				"nextPageCursor": "cursor-token",
				"data": [
					{"previousUsernames": ["HankTheTank"], "hasVerifiedBadge": false, "id": 12345, "name": "Henry12", "displayName": "Henry The Tester"},
					{"previousUsernames": [], "hasVerifiedBadge": true, "id": 67890, "name": "HenryTester", "displayName": "Henry Jr"}
				]
			}`)
		}))
		defer server.Close()

		page, err := newTestClient(server).Search(context.Background(), "Henry", roblox.SearchQuery{Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Data, 2)
		assert.Nil(t, page.PreviousPageCursor)
		require.NotNil(t, page.NextPageCursor)
		assert.Equal(t, "cursor-token", *page.NextPageCursor)

		assert.Equal(t, []string{"HankTheTank"}, page.Data[0].PreviousUsernames)
		assert.False(t, page.Data[0].HasVerifiedBadge)
		assert.True(t, page.Data[1].HasVerifiedBadge)
		assert.Equal(t, "Henry Jr", page.Data[1].DisplayName)
	})

	t.Run("sub-code 6 is term too short", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"errors":[{"code":6,"message":"The keyword is too short."}]}`)
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "a", roblox.SearchQuery{})
		require.Error(t, err)
		assert.ErrorIs(t, err, roblox.ErrSearchTermTooShort)
		assert.NotErrorIs(t, err, roblox.ErrBadRequest)

		var apiErr *roblox.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 6, apiErr.Code)
		assert.Equal(t, "The keyword is too short.", apiErr.Message)
	})

	t.Run("invalid limit fails before any network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "Henry", roblox.SearchQuery{Limit: 33})
		require.Error(t, err)
		assert.ErrorIs(t, err, roblox.ErrBadRequest)
		assert.False(t, called)
	})
}
