package community

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/ukuku360/RK-explore-sub000/internal/auth"
)

var errQuery = errors.New("query failed")

var communityCols = []string{"id", "user_id", "author", "content", "category", "created_at", "likes", "comments", "has_liked"}

func expectCommunityPosts(mock pgxmock.PgxPoolIface, viewer string) {
	now := time.Now()
	mock.ExpectQuery(`FROM community_posts p`).
		WithArgs(viewer).
		WillReturnRows(pgxmock.NewRows(communityCols).
			AddRow("cp-1", "user-1", "Rina", "Sate tonight?", "food", now, 4, 0, true).
			AddRow("cp-2", "user-2", "Budi", "Futsal Friday", "sports", now.Add(-time.Hour), 1, 3, false))
}

func TestListPosts(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	expectCommunityPosts(mock, "user-1")

	posts, err := NewService(mock).ListPosts(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 || !posts[0].HasLiked || posts[1].CommentsCount != 3 {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPostsError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM community_posts p`).WithArgs("").WillReturnError(errQuery)

	if _, err := NewService(mock).ListPosts(context.Background(), ""); !errors.Is(err, errQuery) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestCommunityHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	expectCommunityPosts(mock, "user-2")
	expectCommunityPosts(mock, "user-2")

	app := fiber.New()
	RegisterRoutes(app.Group("/community"), NewService(mock), auth.WithUserID("user-2"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/community?tab=needs_reply&sort=popular", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}
	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "cp-1" {
		t.Fatalf("unexpected filtered posts: %+v", posts)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/community/overview", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("overview status: %v", err)
	}
	var overview Overview
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if overview != (Overview{TotalPosts: 2, NeedsReply: 1, MyPosts: 1, TotalEngagements: 8}) {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestCommunityHandlersMyPostsWithoutViewer(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	expectCommunityPosts(mock, "")

	app := fiber.New()
	RegisterRoutes(app.Group("/community"), NewService(mock), auth.WithUserID(""))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/community?tab=my_posts", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}
	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %+v", posts)
	}
}

func TestCommunityHandlersError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`FROM community_posts p`).WithArgs("user-1").WillReturnError(errQuery)
	mock.ExpectQuery(`FROM community_posts p`).WithArgs("user-1").WillReturnError(errQuery)

	app := fiber.New()
	RegisterRoutes(app.Group("/community"), NewService(mock), auth.WithUserID("user-1"))

	for _, path := range []string{"/community", "/community/overview"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		if err != nil || resp.StatusCode != http.StatusInternalServerError {
			t.Fatalf("%s: expected error status", path)
		}
	}
}
