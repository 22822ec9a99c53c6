package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"shoply/app/dto"
	"shoply/app/models"
	"shoply/app/repo"
	"shoply/app/testutil"
)

type fakePlatform struct {
	metrics   PlatformMetrics
	postErr   error
	fetchErr  error
	published []string
}

func (f *fakePlatform) FetchMetrics(ctx context.Context, account *models.SocialAccount) (*PlatformMetrics, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	m := f.metrics
	return &m, nil
}

func (f *fakePlatform) CreatePost(ctx context.Context, account *models.SocialAccount, body string) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.published = append(f.published, body)
	return fmt.Sprintf("ext_%d", len(f.published)), nil
}

func newSocialFixture(t *testing.T) (*SocialService, *fakePlatform, *gorm.DB) {
	db := testutil.OpenTestDB(t)
	client := &fakePlatform{}
	svc := NewSocialService(repo.NewSocialAccountRepository(db), repo.NewScheduledPostRepository(db), client, nil, 3)
	return svc, client, db
}

func seedAccount(t *testing.T, svc *SocialService, platform string) *dto.SocialAccountResponse {
	t.Helper()
	a, err := svc.CreateAccount(dto.SocialAccountRequest{Platform: platform, Handle: "shoply", AccessToken: "tok"})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a
}

func TestMetrics_NoAccount(t *testing.T) {
	svc, _, _ := newSocialFixture(t)
	if _, err := svc.Metrics(context.Background(), "mastodon"); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

func TestMetrics(t *testing.T) {
	svc, client, _ := newSocialFixture(t)
	seedAccount(t, svc, "mastodon")
	client.metrics = PlatformMetrics{Followers: 120, Following: 30, Posts: 12, Engagements: 450}

	resp, err := svc.Metrics(context.Background(), "mastodon")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if resp.Followers != 120 || resp.Engagements != 450 {
		t.Fatalf("unexpected metrics: %+v", resp)
	}
	if resp.Cached {
		t.Fatalf("first fetch should not be cached")
	}
}

func TestPublishDue(t *testing.T) {
	svc, client, db := newSocialFixture(t)
	account := seedAccount(t, svc, "mastodon")
	now := time.Now()

	due, err := svc.SchedulePost(dto.ScheduledPostRequest{AccountID: account.ID, Body: "hello", PublishAt: now.Add(-time.Minute).Unix()})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := svc.SchedulePost(dto.ScheduledPostRequest{AccountID: account.ID, Body: "later", PublishAt: now.Add(time.Hour).Unix()}); err != nil {
		t.Fatalf("schedule future: %v", err)
	}

	n, err := svc.PublishDue(context.Background(), now)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 published, got %d", n)
	}
	if len(client.published) != 1 || client.published[0] != "hello" {
		t.Fatalf("unexpected platform calls: %v", client.published)
	}

	var post models.ScheduledPost
	if err := db.First(&post, due.ID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if post.Status != models.PostStatusPublished || post.ExternalID == "" || post.PublishedAt == nil {
		t.Fatalf("post not finalized: %+v", post)
	}

	// already-published rows must not be picked up again
	n, err = svc.PublishDue(context.Background(), now)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 published on rerun, got %d", n)
	}
}

func TestPublishDue_RetriesThenFails(t *testing.T) {
	svc, client, db := newSocialFixture(t)
	account := seedAccount(t, svc, "mastodon")
	now := time.Now()
	client.postErr = errors.New("rate limited")

	scheduled, err := svc.SchedulePost(dto.ScheduledPostRequest{AccountID: account.ID, Body: "hello", PublishAt: now.Add(-time.Minute).Unix()})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	for i := 1; i <= 2; i++ {
		if _, err := svc.PublishDue(context.Background(), now); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
		var post models.ScheduledPost
		if err := db.First(&post, scheduled.ID).Error; err != nil {
			t.Fatalf("load post: %v", err)
		}
		if post.Status != models.PostStatusPending {
			t.Fatalf("attempt %d: expected pending, got %q", i, post.Status)
		}
		if post.Attempts != i {
			t.Fatalf("attempt %d: expected %d attempts, got %d", i, i, post.Attempts)
		}
		if post.LastError == "" {
			t.Fatalf("attempt %d: last error not recorded", i)
		}
	}

	// third failure exhausts the attempt limit
	if _, err := svc.PublishDue(context.Background(), now); err != nil {
		t.Fatalf("final publish: %v", err)
	}
	var post models.ScheduledPost
	if err := db.First(&post, scheduled.ID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if post.Status != models.PostStatusFailed {
		t.Fatalf("expected failed after limit, got %q", post.Status)
	}
	if post.Attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", post.Attempts)
	}

	// failed rows are no longer due
	n, err := svc.PublishDue(context.Background(), now)
	if err != nil {
		t.Fatalf("publish after failure: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing published, got %d", n)
	}
}

func TestSchedulePost_Validation(t *testing.T) {
	svc, _, _ := newSocialFixture(t)
	account := seedAccount(t, svc, "mastodon")

	if _, err := svc.SchedulePost(dto.ScheduledPostRequest{AccountID: account.ID}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty body, got %v", err)
	}
	if _, err := svc.SchedulePost(dto.ScheduledPostRequest{AccountID: 999, Body: "hi"}); err == nil {
		t.Fatalf("expected error for unknown account")
	}
}
