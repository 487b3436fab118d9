package controllers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sushushu7/antonia-blog/errs"
	"github.com/sushushu7/antonia-blog/models"
)

func newPostForm(title string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {"World"},
		"img_url":  {"http://x/y.png"},
		"body":     {"Once upon a time..."},
	}
}

func TestAdminCreatesPost(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	cookie := app.sessionCookie(t, admin.ID)

	w := app.postForm("/new-post", newPostForm("Hello"), cookie)
	wantRedirect(t, w, "/")

	post, err := app.db.Posts().FindByTitle("Hello")
	if err != nil {
		t.Fatalf("created post missing: %v", err)
	}
	if post.AuthorID != admin.ID {
		t.Fatalf("author = %d, want %d", post.AuthorID, admin.ID)
	}
	if want := time.Now().Format(models.DateLayout); post.Date != want {
		t.Fatalf("date = %q, want %q", post.Date, want)
	}
}

func TestAdminCreateDuplicateTitle(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	cookie := app.sessionCookie(t, admin.ID)

	wantRedirect(t, app.postForm("/new-post", newPostForm("Hello"), cookie), "/")

	w := app.postForm("/new-post", newPostForm("Hello"), cookie)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate title status = %d, want 409", w.Code)
	}

	posts, err := app.db.Posts().FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("post count = %d, want 1", len(posts))
	}
}

func TestPostMutationsForbiddenForNonAdmin(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	other := app.registerUser(t, "Other", "other@example.com", "password123")
	otherCookie := app.sessionCookie(t, other.ID)

	post := &models.Post{AuthorID: admin.ID, Title: "Hello", Subtitle: "World", Date: "May 1, 2026", Body: "...", ImgURL: "http://x/y.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	attempts := []struct {
		name string
		run  func() int
	}{
		{"create form", func() int { return app.get("/new-post", otherCookie).Code }},
		{"create", func() int { return app.postForm("/new-post", newPostForm("Mine"), otherCookie).Code }},
		{"edit form", func() int { return app.get(fmt.Sprintf("/edit-post/%d", post.ID), otherCookie).Code }},
		{"edit", func() int { return app.postForm(fmt.Sprintf("/edit-post/%d", post.ID), newPostForm("Hijacked"), otherCookie).Code }},
		{"delete", func() int { return app.get(fmt.Sprintf("/delete/%d", post.ID), otherCookie).Code }},
		{"anonymous create", func() int { return app.postForm("/new-post", newPostForm("Anon")).Code }},
		{"anonymous delete", func() int { return app.get(fmt.Sprintf("/delete/%d", post.ID)).Code }},
	}
	for _, attempt := range attempts {
		if code := attempt.run(); code != http.StatusForbidden {
			t.Fatalf("%s: status = %d, want 403", attempt.name, code)
		}
	}

	// Store unchanged: one post, original fields intact.
	posts, err := app.db.Posts().FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hello" {
		t.Fatalf("store changed by forbidden requests: %+v", posts)
	}
}

func TestAnonymousCommentRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	post := &models.Post{AuthorID: admin.ID, Title: "Hello", Subtitle: "World", Date: "May 1, 2026", Body: "...", ImgURL: "http://x/y.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	w := app.postForm(fmt.Sprintf("/post/%d", post.ID), url.Values{"comment": {"drive-by"}})
	wantRedirect(t, w, "/login")

	comments, err := app.db.Comments().FindByPost(post.ID)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("anonymous comment was stored: %+v", comments)
	}
}

func TestAuthenticatedUserComments(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	alice := app.registerUser(t, "Alice", "alice@example.com", "password123")
	post := &models.Post{AuthorID: admin.ID, Title: "Hello", Subtitle: "World", Date: "May 1, 2026", Body: "...", ImgURL: "http://x/y.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	cookie := app.sessionCookie(t, alice.ID)
	path := fmt.Sprintf("/post/%d", post.ID)

	w := app.postForm(path, url.Values{"comment": {"Great post!"}}, cookie)
	wantRedirect(t, w, path)

	page := app.get(path, cookie)
	if page.Code != http.StatusOK {
		t.Fatalf("post page status = %d", page.Code)
	}
	body := page.Body.String()
	if !strings.Contains(body, "Great post!") || !strings.Contains(body, "Alice") {
		t.Fatal("post page does not show the comment with its author")
	}
}

func TestShowMissingPost(t *testing.T) {
	app := newTestApp(t)

	if w := app.get("/post/999"); w.Code != http.StatusNotFound {
		t.Fatalf("missing post status = %d, want 404", w.Code)
	}
	if w := app.get("/post/not-a-number"); w.Code != http.StatusNotFound {
		t.Fatalf("malformed id status = %d, want 404", w.Code)
	}
}

func TestAdminEditsPost(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	cookie := app.sessionCookie(t, admin.ID)

	post := &models.Post{AuthorID: admin.ID, Title: "Before", Subtitle: "Old", Date: "May 1, 2026", Body: "old", ImgURL: "http://x/old.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	// The edit form comes back prefilled.
	form := app.get(fmt.Sprintf("/edit-post/%d", post.ID), cookie)
	if form.Code != http.StatusOK || !strings.Contains(form.Body.String(), "Before") {
		t.Fatalf("edit form not prefilled (status %d)", form.Code)
	}

	w := app.postForm(fmt.Sprintf("/edit-post/%d", post.ID), url.Values{
		"title":    {"After"},
		"subtitle": {"New"},
		"img_url":  {"http://x/new.png"},
		"body":     {"new body"},
	}, cookie)
	wantRedirect(t, w, fmt.Sprintf("/post/%d", post.ID))

	got, err := app.db.Posts().FindByID(post.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "After" || got.Subtitle != "New" || got.Body != "new body" || got.ImgURL != "http://x/new.png" {
		t.Fatalf("edit not persisted: %+v", got)
	}
}

func TestAdminDeletesPostWithComments(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	cookie := app.sessionCookie(t, admin.ID)

	post := &models.Post{AuthorID: admin.ID, Title: "Doomed", Subtitle: "World", Date: "May 1, 2026", Body: "...", ImgURL: "http://x/y.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	if err := app.db.Comments().Create(&models.Comment{Text: "bye", AuthorID: admin.ID, PostID: post.ID}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	w := app.get(fmt.Sprintf("/delete/%d", post.ID), cookie)
	wantRedirect(t, w, "/")

	if _, err := app.db.Posts().FindByID(post.ID); !errs.IsNotFound(err) {
		t.Fatalf("post still present after delete: %v", err)
	}
	comments, err := app.db.Comments().FindByPost(post.ID)
	if err != nil {
		t.Fatalf("find comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("comments survived the delete: %+v", comments)
	}
}

func TestIndexListsPosts(t *testing.T) {
	app := newTestApp(t)
	admin := app.registerUser(t, "Admin", "admin@example.com", "password123")
	post := &models.Post{AuthorID: admin.ID, Title: "Visible", Subtitle: "World", Date: "May 1, 2026", Body: "...", ImgURL: "http://x/y.png"}
	if err := app.db.Posts().Create(post); err != nil {
		t.Fatalf("seed post: %v", err)
	}

	w := app.get("/")
	if w.Code != http.StatusOK {
		t.Fatalf("index status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Visible") {
		t.Fatal("index does not list the post")
	}
}

func TestStaticPages(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/about", "/contact"} {
		if w := app.get(path); w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
	}
}
