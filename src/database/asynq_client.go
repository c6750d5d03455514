package database

import (
	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq initializes the task client only if Redis is available.
// It returns false when registration notifications must be skipped.
func InitAsynq() bool {
	if RedisClient == nil || RedisURI == "" {
		return false
	}
	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	return true
}
