package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shoply/app/dto"
	"shoply/app/models"
	"shoply/app/repo"
	"shoply/global"
)

const metricsCacheTTL = 5 * time.Minute

// PlatformMetrics is what a platform API reports for an account.
type PlatformMetrics struct {
	Followers   int64
	Following   int64
	Posts       int64
	Engagements int64
}

// PlatformClient talks to the social-media platform API. The production
// implementation lives in app/social; tests substitute a fake.
type PlatformClient interface {
	FetchMetrics(ctx context.Context, account *models.SocialAccount) (*PlatformMetrics, error)
	CreatePost(ctx context.Context, account *models.SocialAccount, body string) (string, error)
}

type SocialService struct {
	accounts    *repo.SocialAccountRepository
	posts       *repo.ScheduledPostRepository
	client      PlatformClient
	rdb         *redis.Client
	maxAttempts int
}

func NewSocialService(accounts *repo.SocialAccountRepository, posts *repo.ScheduledPostRepository, client PlatformClient, rdb *redis.Client, maxAttempts int) *SocialService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &SocialService{accounts: accounts, posts: posts, client: client, rdb: rdb, maxAttempts: maxAttempts}
}

// Metrics forwards one metrics request to the platform API using the stored
// bearer token. Responses are cached in Redis for a few minutes so dashboard
// refreshes do not hammer the platform.
func (s *SocialService) Metrics(ctx context.Context, platform string) (*dto.MetricsResponse, error) {
	cacheKey := "metrics:" + platform
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached dto.MetricsResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.Cached = true
				return &cached, nil
			}
		}
	}

	account, err := s.accounts.FindByPlatform(platform)
	if err != nil {
		return nil, err
	}
	m, err := s.client.FetchMetrics(ctx, account)
	if err != nil {
		return nil, err
	}
	resp := &dto.MetricsResponse{
		Platform:    account.Platform,
		Handle:      account.Handle,
		Followers:   m.Followers,
		Following:   m.Following,
		Posts:       m.Posts,
		Engagements: m.Engagements,
		FetchedAt:   time.Now().Unix(),
	}
	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, metricsCacheTTL).Err(); err != nil {
				global.Logger.Warn().Err(err).Str("platform", platform).Msg("metrics cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *SocialService) CreateAccount(req dto.SocialAccountRequest) (*dto.SocialAccountResponse, error) {
	if req.Platform == "" || req.Handle == "" || req.AccessToken == "" {
		return nil, ErrInvalidInput
	}
	a := &models.SocialAccount{Platform: req.Platform, Handle: req.Handle, AccessToken: req.AccessToken}
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}
	return accountToDTO(a), nil
}

func (s *SocialService) UpdateAccount(id uint, req dto.SocialAccountRequest) (*dto.SocialAccountResponse, error) {
	a, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Handle != "" {
		a.Handle = req.Handle
	}
	if req.AccessToken != "" {
		a.AccessToken = req.AccessToken
	}
	if err := s.accounts.Save(a); err != nil {
		return nil, err
	}
	return accountToDTO(a), nil
}

func (s *SocialService) ListAccounts() ([]dto.SocialAccountResponse, error) {
	accounts, err := s.accounts.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.SocialAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, *accountToDTO(&a))
	}
	return result, nil
}

func (s *SocialService) DeleteAccount(id uint) error {
	if _, err := s.accounts.FindByID(id); err != nil {
		return err
	}
	return s.accounts.Delete(id)
}

func (s *SocialService) SchedulePost(req dto.ScheduledPostRequest) (*dto.ScheduledPostResponse, error) {
	if req.Body == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.accounts.FindByID(req.AccountID); err != nil {
		return nil, err
	}
	publishAt := time.Now()
	if req.PublishAt > 0 {
		publishAt = time.Unix(req.PublishAt, 0)
	}
	p := &models.ScheduledPost{
		AccountID: req.AccountID,
		Body:      req.Body,
		PublishAt: publishAt,
		Status:    models.PostStatusPending,
	}
	if err := s.posts.Create(p); err != nil {
		return nil, err
	}
	return postToDTO(p), nil
}

func (s *SocialService) ListPosts() ([]dto.ScheduledPostResponse, error) {
	posts, err := s.posts.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.ScheduledPostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, *postToDTO(&p))
	}
	return result, nil
}

func (s *SocialService) DeletePost(id uint) error {
	if _, err := s.posts.FindByID(id); err != nil {
		return err
	}
	return s.posts.Delete(id)
}

// PublishDue publishes every pending post whose publish time has passed.
// Each post is one HTTP POST to the platform; a failure bumps the attempt
// counter and leaves the post pending until the attempt limit is hit.
func (s *SocialService) PublishDue(ctx context.Context, now time.Time) (published int, err error) {
	due, err := s.posts.DuePending(now)
	if err != nil {
		return 0, err
	}
	for _, post := range due {
		account, err := s.accounts.FindByID(post.AccountID)
		if err != nil {
			_ = s.posts.MarkAttemptFailed(post.ID, post.Attempts+1, s.maxAttempts, "account not found")
			continue
		}
		externalID, err := s.client.CreatePost(ctx, account, post.Body)
		if err != nil {
			global.Logger.Warn().Err(err).Uint("post_id", post.ID).Str("platform", account.Platform).Msg("publish attempt failed")
			_ = s.posts.MarkAttemptFailed(post.ID, post.Attempts+1, s.maxAttempts, err.Error())
			continue
		}
		if err := s.posts.MarkPublished(post.ID, externalID, now); err != nil {
			return published, err
		}
		published++
		global.Logger.Info().Uint("post_id", post.ID).Str("platform", account.Platform).Str("external_id", externalID).Msg("post published")
	}
	return published, nil
}

func accountToDTO(a *models.SocialAccount) *dto.SocialAccountResponse {
	return &dto.SocialAccountResponse{ID: a.ID, Platform: a.Platform, Handle: a.Handle}
}

func postToDTO(p *models.ScheduledPost) *dto.ScheduledPostResponse {
	resp := &dto.ScheduledPostResponse{
		ID:         p.ID,
		AccountID:  p.AccountID,
		Body:       p.Body,
		PublishAt:  p.PublishAt.Unix(),
		Status:     p.Status,
		Attempts:   p.Attempts,
		LastError:  p.LastError,
		ExternalID: p.ExternalID,
	}
	if p.PublishedAt != nil {
		resp.PublishedAt = p.PublishedAt.Unix()
	}
	return resp
}
