package router

import (
	"github.com/oksasatya/go-twitter-clone/internal/application"
	"github.com/oksasatya/go-twitter-clone/internal/container"
	domainsvc "github.com/oksasatya/go-twitter-clone/internal/domain/service"
	pginfra "github.com/oksasatya/go-twitter-clone/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-twitter-clone/internal/interface/http"
	"github.com/oksasatya/go-twitter-clone/internal/router/modules"
)

type moduleDeps struct {
	UserHandler     *handlers.UserHandler
	TweetHandler    *handlers.TweetHandler
	FollowHandler   *handlers.FollowHandler
	TimelineHandler *handlers.TimelineHandler
}

func buildDeps() moduleDeps {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	tweets := pginfra.NewTweetRepository(pool)
	follows := pginfra.NewFollowRepository(pool)
	likes := pginfra.NewLikeRepository(pool)
	retweets := pginfra.NewRetweetRepository(pool)

	graph := domainsvc.NewSocialGraphService(follows)
	timeline := domainsvc.NewTimelineService(tweets)

	userSvc := application.NewUserService(
		users,
		follows,
		container.GetAuth(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		container.GetRabbitPub(),
		logger,
	)
	tweetSvc := application.NewTweetService(tweets, likes, retweets, logger, container.GetES(), cfg.ESTweetsIndex)
	followSvc := application.NewFollowService(users, follows, graph, logger)
	timelineSvc := application.NewTimelineQueryService(follows, likes, retweets, timeline, logger)

	return moduleDeps{
		UserHandler:     handlers.NewUserHandler(userSvc, logger),
		TweetHandler:    handlers.NewTweetHandler(tweetSvc, logger),
		FollowHandler:   handlers.NewFollowHandler(followSvc, userSvc, logger),
		TimelineHandler: handlers.NewTimelineHandler(timelineSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	r.Add(modules.NewUserModule(deps.UserHandler))
	r.Add(modules.NewTweetModule(deps.TweetHandler))
	r.Add(modules.NewFollowModule(deps.FollowHandler))
	r.Add(modules.NewTimelineModule(deps.TimelineHandler))
}
