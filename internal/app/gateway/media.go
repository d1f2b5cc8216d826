// internal/app/gateway/media.go
package gateway

import "strings"

// ResolveMediaURL turns a backend-relative media path (labourer photos,
// attendance photos) into an absolute URL. Already-absolute URLs pass
// through unchanged; empty input stays empty. Pure.
func (c *Client) ResolveMediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.media + "/" + strings.TrimPrefix(path, "/")
}
