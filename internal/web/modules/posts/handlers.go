package posts

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/louisbranch/inkwell/internal/blog"
	apperrors "github.com/louisbranch/inkwell/internal/platform/errors"
	"github.com/louisbranch/inkwell/internal/web/gravatar"
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/platform/flash"
	"github.com/louisbranch/inkwell/internal/web/platform/httpx"
	"github.com/louisbranch/inkwell/internal/web/platform/pagerender"
	"github.com/louisbranch/inkwell/internal/web/platform/webctx"
	"github.com/louisbranch/inkwell/internal/web/platform/weberror"
	"github.com/louisbranch/inkwell/internal/web/routepath"
	"github.com/louisbranch/inkwell/internal/web/templates"
)

type handlers struct {
	deps module.Dependencies
	now  func() time.Time
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, now: time.Now}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Posts.ListPosts(r.Context())
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}

	items := make([]templates.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, templates.PostItem{
			URL:        routepath.Post(p.ID),
			Title:      p.Title,
			Subtitle:   p.Subtitle,
			AuthorName: authorName(p.Author),
			DateLabel:  p.Date,
		})
	}
	templates.Render(w, "index.html", templates.IndexView{
		Page:  pagerender.Page(w, r, "Inkwell", "Inkwell", "A collection of musings."),
		Posts: items,
	})
}

func (h handlers) handleShowPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	comments, err := h.deps.Comments.ListComments(r.Context(), post.ID)
	if err != nil {
		weberror.WriteError(w, r, err)
		return
	}

	items := make([]templates.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, templates.CommentItem{
			AuthorName: authorName(c.Author),
			AvatarURL:  gravatar.URL(authorEmail(c.Author)),
			// Comment bodies come from the site's rich-text editor and
			// are rendered as-is.
			Text: template.HTML(c.Text),
		})
	}

	viewer := webctx.ViewerFrom(r.Context())
	templates.Render(w, "post.html", templates.PostView{
		Page:          pagerender.Page(w, r, post.Title, post.Title, post.Subtitle),
		Body:          template.HTML(post.Body),
		ImageURL:      post.ImageURL,
		AuthorName:    authorName(post.Author),
		DateLabel:     post.Date,
		Comments:      items,
		CanEdit:       viewer.IsAdmin,
		EditURL:       routepath.EditPost(post.ID),
		DeleteURL:     routepath.DeletePost(post.ID),
		CommentAction: routepath.Post(post.ID),
	})
}

func (h handlers) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	viewer := webctx.ViewerFrom(r.Context())
	if !viewer.SignedIn() {
		flash.Write(w, flash.Error("You must be logged in to comment."))
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}

	text, err := blog.NewCommentText(r.FormValue("comment"))
	if err != nil {
		flash.Write(w, flash.Error(weberror.PublicMessage(err)))
		httpx.WriteRedirect(w, r, routepath.Post(post.ID))
		return
	}

	if _, err := h.deps.Comments.CreateComment(r.Context(), blog.Comment{
		AuthorID: viewer.UserID,
		PostID:   post.ID,
		Text:     text,
	}); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Post(post.ID))
}

func (h handlers) handleNewPostForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	templates.Render(w, "make-post.html", templates.PostFormView{
		Page:   pagerender.Page(w, r, "New Post", "New Post", "You're going to make a great blog post!"),
		Action: routepath.NewPost,
	})
}

func (h handlers) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	input, form, err := h.parsePostForm(r)
	if err != nil {
		page := pagerender.Page(w, r, "New Post", "New Post", "You're going to make a great blog post!")
		page.Flash = &templates.Flash{Kind: string(flash.KindError), Message: weberror.PublicMessage(err)}
		templates.RenderStatus(w, http.StatusBadRequest, "make-post.html", templates.PostFormView{
			Page:   page,
			Action: routepath.NewPost,
			Form:   form,
		})
		return
	}

	viewer := webctx.ViewerFrom(r.Context())
	if _, err := h.deps.Posts.CreatePost(r.Context(), blog.Post{
		AuthorID: viewer.UserID,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Date:     blog.FormatDate(h.now()),
		Body:     input.Body,
		ImageURL: input.ImageURL,
	}); err != nil {
		if apperrors.CodeOf(err) == apperrors.CodePostTitleTaken {
			flash.Write(w, flash.Error("A post with that title already exists."))
			httpx.WriteRedirect(w, r, routepath.NewPost)
			return
		}
		weberror.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleEditPostForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	templates.Render(w, "make-post.html", templates.PostFormView{
		Page:   pagerender.Page(w, r, "Edit Post", "Edit Post", "Second thoughts are often wiser."),
		Action: routepath.EditPost(post.ID),
		Form: templates.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		},
	})
}

func (h handlers) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	input, form, err := h.parsePostForm(r)
	if err != nil {
		page := pagerender.Page(w, r, "Edit Post", "Edit Post", "Second thoughts are often wiser.")
		page.Flash = &templates.Flash{Kind: string(flash.KindError), Message: weberror.PublicMessage(err)}
		templates.RenderStatus(w, http.StatusBadRequest, "make-post.html", templates.PostFormView{
			Page:   page,
			Action: routepath.EditPost(post.ID),
			Form:   form,
		})
		return
	}

	post.Title = input.Title
	post.Subtitle = input.Subtitle
	post.Body = input.Body
	post.ImageURL = input.ImageURL
	if err := h.deps.Posts.UpdatePost(r.Context(), post); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Post(post.ID))
}

func (h handlers) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	if err := h.deps.Posts.DeletePost(r.Context(), post.ID); err != nil {
		weberror.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) parsePostForm(r *http.Request) (blog.PostInput, templates.PostForm, error) {
	form := templates.PostForm{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImageURL: r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
	input, err := blog.NewPostInput(form.Title, form.Subtitle, form.Body, form.ImageURL)
	if err != nil {
		return blog.PostInput{}, form, err
	}
	return input, form, nil
}

func (h handlers) loadPost(w http.ResponseWriter, r *http.Request) (blog.Post, bool) {
	id, err := strconv.ParseInt(r.PathValue("postID"), 10, 64)
	if err != nil || id <= 0 {
		weberror.WriteStatus(w, r, http.StatusNotFound, "post not found")
		return blog.Post{}, false
	}
	post, err := h.deps.Posts.GetPost(r.Context(), id)
	if err != nil {
		weberror.WriteError(w, r, err)
		return blog.Post{}, false
	}
	return post, true
}

func (h handlers) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if webctx.ViewerFrom(r.Context()).IsAdmin {
		return true
	}
	weberror.WriteStatus(w, r, http.StatusForbidden, "Only the site administrator can manage posts.")
	return false
}

func authorName(u *blog.User) string {
	if u == nil {
		return "Unknown"
	}
	return u.Name
}

func authorEmail(u *blog.User) string {
	if u == nil {
		return ""
	}
	return u.Email
}
