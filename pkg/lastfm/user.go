package lastfm

import (
	"context"
)

// UserService provides user operations.
type UserService struct {
	client *Client
}

// Recommended returns the recommended station playlist for a user.
//
// This endpoint belongs to the Last.fm website rather than the public API.
// No session credential is sent, so Last.fm may answer with an error or an
// empty playlist for users whose recommendations are private.
//
// Example:
//
//	playlist, err := client.User().Recommended(ctx, "sebnow")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, item := range playlist.Items {
//	    fmt.Println(strings.Join(item.ArtistNames(), " & "), "-", item.Name)
//	}
func (u *UserService) Recommended(ctx context.Context, user string) (*Playlist, error) {
	var playlist Playlist
	if err := u.client.get(ctx, "user.recommended", u.client.recommendedURL(user), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (c *Client) recommendedURL(user string) string {
	return c.webURL + "/player/station/user/" + user + "/recommended"
}
