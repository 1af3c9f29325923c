// ABOUTME: Image URL resolution for stored upload filenames
// ABOUTME: Builds /uploads/<resource>/<filename> URLs unless already absolute

package client

import "strings"

// ImageURL resolves a stored image value to a fetchable URL. The backend
// stores bare filenames for its own uploads and full URLs for external
// images; only the former get the uploads prefix.
func (c *Client) ImageURL(resource, stored string) string {
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http") {
		return stored
	}
	return c.baseURL + "/uploads/" + resource + "/" + stored
}
