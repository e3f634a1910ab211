package friends

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(roblox.NewClient(), WithBaseURL(server.URL))
}

func TestFriends(t *testing.T) {
	t.Run("whole list in one call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/1/friends", r.URL.Path)
			assert.Empty(t, r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{"data": [
				{"id": 156, "name": "builderman", "displayName": "builderman", "isOnline": true},
				{"id": 261, "name": "Shedletsky", "displayName": "Shedletsky", "isOnline": false, "isBanned": false}
			]}`)
		}))
		defer server.Close()

		list, err := newTestClient(server).Friends(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "builderman", list[0].Name)
		assert.True(t, list[0].IsOnline)
		assert.Equal(t, int64(261), list[1].ID)
		assert.False(t, list[1].IsOnline)
	})

	t.Run("empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"data": []}`)
		}))
		defer server.Close()

		list, err := newTestClient(server).Friends(context.Background(), 1)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := newTestClient(server).Friends(context.Background(), 0)
		assert.ErrorIs(t, err, roblox.ErrNotFound)
	})
}

func TestFollowers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/1/followers", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "Desc", r.URL.Query().Get("sortOrder"))
		fmt.Fprint(w, `{
			"previousPageCursor": null,
			"nextPageCursor": "next",
			"data": [{"id": 9000, "name": "fan", "displayName": "Fan", "externalAppDisplayName": "FanApp"}]
		}`)
	}))
	defer server.Close()

	page, err := newTestClient(server).Followers(context.Background(), 1, roblox.PageQuery{Limit: 50, SortOrder: roblox.SortDesc})
	require.NoError(t, err)

	assert.True(t, page.HasNextPage())
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].ExternalAppDisplayName)
	assert.Equal(t, "FanApp", *page.Data[0].ExternalAppDisplayName)
}

func TestFollowings(t *testing.T) {
	t.Run("cursor forwarded untouched", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/1/followings", r.URL.Path)
			assert.Equal(t, "opaque==token", r.URL.Query().Get("cursor"))
			fmt.Fprint(w, `{"previousPageCursor": "prev", "nextPageCursor": null, "data": []}`)
		}))
		defer server.Close()

		page, err := newTestClient(server).Followings(context.Background(), 1, roblox.PageQuery{Limit: 10, Cursor: "opaque==token"})
		require.NoError(t, err)
		assert.False(t, page.HasNextPage())
		require.NotNil(t, page.PreviousPageCursor)
		assert.Equal(t, "prev", *page.PreviousPageCursor)
	})

	t.Run("invalid sort order fails before any network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		_, err := newTestClient(server).Followings(context.Background(), 1, roblox.PageQuery{Limit: 10, SortOrder: "Up"})
		assert.ErrorIs(t, err, roblox.ErrBadRequest)
		assert.False(t, called)
	})
}
