package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/carlos-tribe/holly-assistant-hicv/config"
)

// Task types for delayed per-session work.
const (
	TypePropertyAdvance = "assistant:property-advance"
	TypeReveal          = "assistant:reveal"
)

// TaskPayload carries the session identity for a delayed task. Generation is
// the cancellation token: a session reset bumps it, so a task scheduled
// before the reset sees a mismatch and drops itself.
type TaskPayload struct {
	SessionID     string `json:"sessionId"`
	Generation    int    `json:"generation"`
	DestinationID string `json:"destinationId,omitempty"`
}

// SessionTaskHandler is implemented by the assistant service.
type SessionTaskHandler interface {
	AdvancePropertyMatching(ctx context.Context, sessionID string, generation int) error
	RevealDestination(ctx context.Context, sessionID string, generation int, destinationID string) error
}

// AsynqScheduler enqueues delayed session tasks.
type AsynqScheduler struct {
	client *asynq.Client
}

func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(taskQueueRedisOpts()),
	}
}

func (s *AsynqScheduler) SchedulePropertyAdvance(ctx context.Context, sessionID string, generation int, delay time.Duration) error {
	return s.enqueue(ctx, TypePropertyAdvance, TaskPayload{SessionID: sessionID, Generation: generation}, delay)
}

func (s *AsynqScheduler) ScheduleReveal(ctx context.Context, sessionID string, generation int, destinationID string, delay time.Duration) error {
	return s.enqueue(ctx, TypeReveal, TaskPayload{SessionID: sessionID, Generation: generation, DestinationID: destinationID}, delay)
}

func (s *AsynqScheduler) enqueue(ctx context.Context, taskType string, payload TaskPayload, delay time.Duration) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(taskType, b)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	return err
}

func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}

func taskQueueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// InitSessionWorker runs the async worker in background.
func InitSessionWorker(handler SessionTaskHandler) {
	srv := asynq.NewServer(
		taskQueueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePropertyAdvance, handlePropertyAdvance(handler))
	mux.HandleFunc(TypeReveal, handleReveal(handler))

	go monitorRedisConnection()

	go func() {
		log.Println("[SessionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SessionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePropertyAdvance(handler SessionTaskHandler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p TaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SessionWorker] Invalid property-advance payload: %v", err)
			return err
		}
		return handler.AdvancePropertyMatching(ctx, p.SessionID, p.Generation)
	}
}

func handleReveal(handler SessionTaskHandler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p TaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SessionWorker] Invalid reveal payload: %v", err)
			return err
		}
		return handler.RevealDestination(ctx, p.SessionID, p.Generation, p.DestinationID)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SessionWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
