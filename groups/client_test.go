package groups

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

func TestGet(t *testing.T) {
	t.Run("full group with owner and shout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/groups/7", r.URL.Path)
			fmt.Fprint(w, `{
				"id": 7,
				"name": "Example Group",
				"description": "This is an example group.",
				"owner": {
					"buildersClubMembershipType": 0,
					"hasVerifiedBadge": true,
					"userId": 42,
					"username": "owner42",
					"displayName": "The Owner"
				},
				"shout": {
					"body": "Welcome everyone!",
					"poster": {
						"buildersClubMembershipType": 0,
						"hasVerifiedBadge": false,
						"userId": 43,
						"username": "mod43",
						"displayName": "A Mod"
					},
					"created": "2023-07-30T21:12:47.212Z",
					"updated": "2023-07-30T21:12:47.212Z"
				},
				"memberCount": 100,
				"isBuildersClubOnly": false,
				"publicEntryAllowed": true,
				"isLocked": false,
				"hasVerifiedBadge": true
			}`)
		}))
		defer server.Close()

		group, err := newTestClient(server).Get(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, int64(7), group.ID)
		assert.Equal(t, "Example Group", group.Name)
		assert.Equal(t, 100, group.MemberCount)
		assert.True(t, group.PublicEntryAllowed)
		assert.True(t, group.HasVerifiedBadge)

		require.NotNil(t, group.Owner)
		assert.Equal(t, int64(42), group.Owner.UserID)
		assert.Equal(t, "owner42", group.Owner.Username)
		assert.True(t, group.Owner.HasVerifiedBadge)

		require.NotNil(t, group.Shout)
		assert.Equal(t, "Welcome everyone!", group.Shout.Body)
		require.NotNil(t, group.Shout.Poster)
		assert.Equal(t, "mod43", group.Shout.Poster.Username)
	})

	t.Run("absent owner and shout stay nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": 8, "name": "Ownerless", "memberCount": 1}`)
		}))
		defer server.Close()

		group, err := newTestClient(server).Get(context.Background(), 8)
		require.NoError(t, err)
		assert.Nil(t, group.Owner)
		assert.Nil(t, group.Shout)
	})

	t.Run("null shout stays nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": 9, "name": "Quiet", "shout": null, "owner": null}`)
		}))
		defer server.Close()

		group, err := newTestClient(server).Get(context.Background(), 9)
		require.NoError(t, err)
		assert.Nil(t, group.Owner)
		assert.Nil(t, group.Shout)
	})
}

func TestRoles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/7/roles", r.URL.Path)
		fmt.Fprint(w, `{
			"groupId": 7,
			"roles": [
				{"id": 1, "name": "Guest", "description": "", "rank": 0, "memberCount": 0},
				{"id": 2, "name": "Member", "description": "Regular members", "rank": 1, "memberCount": 95},
				{"id": 3, "name": "Owner", "description": "", "rank": 255, "memberCount": 1}
			]
		}`)
	}))
	defer server.Close()

	roles, err := newTestClient(server).Roles(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, roles, 3)
	assert.Equal(t, "Member", roles[1].Name)
	assert.Equal(t, 1, roles[1].Rank)
	assert.Equal(t, 95, roles[1].MemberCount)
	assert.Equal(t, 255, roles[2].Rank)
}

func TestSearch(t *testing.T) {
	t.Run("keyword Roblox with two results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/groups/search", r.URL.Path)
			assert.Equal(t, "Roblox", r.URL.Query().Get("keyword"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{
				"previousPageCursor": null,
				"nextPageCursor": "some_cursor_value",
				"data": [
					{"id": 123, "name": "Roblox Group 1", "description": "First.", "memberCount": 100, "previousName": "OldName1", "publicEntryAllowed": true, "created": "2023-07-30T21:12:47.212Z", "updated": "2023-07-30T21:12:47.212Z", "hasVerifiedBadge": true},
					{"id": 456, "name": "Roblox Group 2", "description": "Second.", "memberCount": 200, "previousName": "OldName2", "publicEntryAllowed": false, "created": "2023-07-30T21:12:47.212Z", "updated": "2023-07-30T21:12:47.212Z", "hasVerifiedBadge": false}
				]
			}`)
		}))
		defer server.Close()

		page, err := newTestClient(server).Search(context.Background(), "Roblox", SearchOptions{Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Data, 2)
		require.NotNil(t, page.NextPageCursor)
		assert.Equal(t, "some_cursor_value", *page.NextPageCursor)
		assert.True(t, page.Data[0].HasVerifiedBadge)
		assert.False(t, page.Data[1].HasVerifiedBadge)
		assert.Equal(t, 200, page.Data[1].MemberCount)
	})

	t.Run("prioritizeExactMatch parameter", func(t *testing.T) {
		var query map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.Query()
			fmt.Fprint(w, `{"previousPageCursor":null,"nextPageCursor":null,"data":[]}`)
		}))
		defer server.Close()

		_, err := newTestClient(server).Search(context.Background(), "Roblox", SearchOptions{PrioritizeExactMatch: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"true"}, query["prioritizeExactMatch"])

		_, err = newTestClient(server).Search(context.Background(), "Roblox", SearchOptions{})
		require.NoError(t, err)
		_, present := query["prioritizeExactMatch"]
		assert.False(t, present, "flag left unset must not appear in the query")
	})

	t.Run("search term sub-codes", func(t *testing.T) {
		tests := []struct {
			code int
			want error
		}{
			{2, roblox.ErrSearchTermInappropriate},
			{3, roblox.ErrSearchTermEmpty},
			{4, roblox.ErrSearchTermLength},
		}

		for _, tt := range tests {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"errors":[{"code":%d,"message":"rejected"}]}`, tt.code)
			}))

			_, err := newTestClient(server).Search(context.Background(), "term", SearchOptions{})
			assert.ErrorIs(t, err, tt.want, "sub-code %d", tt.code)
			server.Close()
		}
	})
}
