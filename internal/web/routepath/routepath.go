// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root              = "/"
	Register          = "/register"
	Login             = "/login"
	Logout            = "/logout"
	About             = "/about"
	Contact           = "/contact"
	Health            = "/up"
	StaticPrefix      = "/static/"
	PostPrefix        = "/post/"
	PostPattern       = PostPrefix + "{postID}"
	NewPost           = "/new-post"
	EditPostPrefix    = "/edit-post/"
	EditPostPattern   = EditPostPrefix + "{postID}"
	DeletePostPrefix  = "/delete-post/"
	DeletePostPattern = DeletePostPrefix + "{postID}"
)

// Post returns the canonical path for a post page.
func Post(postID int64) string {
	return PostPrefix + strconv.FormatInt(postID, 10)
}

// EditPost returns the canonical path for a post's edit form.
func EditPost(postID int64) string {
	return EditPostPrefix + strconv.FormatInt(postID, 10)
}

// DeletePost returns the canonical path for a post's delete action.
func DeletePost(postID int64) string {
	return DeletePostPrefix + strconv.FormatInt(postID, 10)
}

// IsSafeRedirect reports whether target is a same-site relative path.
func IsSafeRedirect(target string) bool {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return false
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	return parsed.Scheme == "" && parsed.Host == ""
}
