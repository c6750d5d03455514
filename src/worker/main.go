package main

import (
	"SSAAM-Backend/src/config"
	"SSAAM-Backend/src/jobs"
	"SSAAM-Backend/src/logger"

	"github.com/hibiken/asynq"
)

// Worker process for registration emails. Run next to the API with the
// same REDIS_URI and SMTP settings.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.RedisURI == "" {
		log.Fatal().Msg("REDIS_URI is required for the worker")
	}

	sender, err := jobs.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if err != nil {
		log.Fatal().Err(err).Msg("mail sender")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisURI},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	jobs.RegisterHandlers(mux, sender, cfg.AppBaseURL, log)

	log.Info().Str("redis", cfg.RedisURI).Msg("worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
}
