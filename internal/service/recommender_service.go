package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"sync"
	"time"

	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	maxRecommendations = 3
	catalogCacheKey    = "recommender:catalog"
	catalogCacheTTL    = 5 * time.Minute
)

// RecommenderService 从内容目录里挑最多三条推荐。没有打分模型，
// 只做主题过滤加随机抽样。
type RecommenderService struct {
	ContentRepo *repository.ContentRepository
	Redis       *redis.Client

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRecommenderService 构造推荐器。src 为 nil 时用时间种子；
// 测试传入固定种子得到可复现输出。
func NewRecommenderService(contentRepo *repository.ContentRepository, rdb *redis.Client, src rand.Source) *RecommenderService {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &RecommenderService{
		ContentRepo: contentRepo,
		Redis:       rdb,
		rng:         rand.New(src),
	}
}

// Recommend 返回最多三条内容标题。给了 currentTopic 时优先抽标题里
// 含该主题的未完成内容，没有匹配再从全部未完成内容里抽。
// studentID 仅透传，尚未参与个性化。
func (s *RecommenderService) Recommend(ctx context.Context, studentID uint, completedTopics []string, currentTopic string) ([]string, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(completedTopics))
	for _, t := range completedTopics {
		completed[strings.ToLower(t)] = true
	}

	var available []string
	for _, c := range catalog {
		if !completed[strings.ToLower(c.Topic)] {
			available = append(available, c.Title)
		}
	}

	if currentTopic != "" {
		topic := strings.ToLower(currentTopic)
		var matching []string
		for _, c := range catalog {
			if completed[strings.ToLower(c.Topic)] {
				continue
			}
			if strings.Contains(strings.ToLower(c.Title), topic) {
				matching = append(matching, c.Title)
			}
		}
		if len(matching) > 0 {
			return s.sample(matching, maxRecommendations), nil
		}
	}

	return s.sample(available, maxRecommendations), nil
}

// sample 无放回均匀抽样
func (s *RecommenderService) sample(titles []string, n int) []string {
	picked := make([]string, len(titles))
	copy(picked, titles)

	s.mu.Lock()
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	s.mu.Unlock()

	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}

// catalog 内容目录，配置了 Redis 时走 cache-aside
func (s *RecommenderService) catalog(ctx context.Context) ([]model.Content, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var cached []model.Content
			if jerr := json.Unmarshal([]byte(val), &cached); jerr == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	catalog, err := s.ContentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, jerr := json.Marshal(catalog); jerr == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return catalog, nil
}
