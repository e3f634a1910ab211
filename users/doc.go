// Package users provides a client for the Roblox Users API
// (users.roblox.com).
//
// The Users API exposes public account profiles and keyword search over
// accounts. No authentication is required; validity of an ID is
// determined solely by the server's response.
//
// # Usage
//
//	core := roblox.NewClient(roblox.WithLogger(logger))
//	client := users.NewClient(core)
//
//	user, err := client.Get(ctx, 900673686)
//	if errors.Is(err, roblox.ErrNotFound) {
//		// no such user
//	}
//
//	page, err := client.Search(ctx, "builderman", roblox.SearchQuery{Limit: 25})
//	for _, result := range page.Data {
//		fmt.Println(result.Name)
//	}
//
// Search shares the cursor pagination convention described in the
// roblox package; rejected search terms surface as the dedicated
// roblox.ErrSearchTerm* errors.
package users
