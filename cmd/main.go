package main

import (
	"context"
	"log"

	"ticketing-service/config"
	notificationhandler "ticketing-service/internal/module/notification/handler"
	notificationrepo "ticketing-service/internal/module/notification/repositories"
	notificationusecases "ticketing-service/internal/module/notification/usecases"
	orderhandler "ticketing-service/internal/module/order/handler"
	orderrepo "ticketing-service/internal/module/order/repositories"
	orderusecases "ticketing-service/internal/module/order/usecases"
	"ticketing-service/internal/module/payment/gateway"
	paymenthandler "ticketing-service/internal/module/payment/handler"
	paymentrepo "ticketing-service/internal/module/payment/repositories"
	paymentusecases "ticketing-service/internal/module/payment/usecases"
	"ticketing-service/internal/pkg/database"
	"ticketing-service/internal/pkg/fees"
	"ticketing-service/internal/pkg/http"
	"ticketing-service/internal/pkg/httpclient"
	log_internal "ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/messagestream"
	"ticketing-service/internal/pkg/middleware"
	"ticketing-service/internal/pkg/redis"
	"ticketing-service/internal/pkg/scheduler"
	router "ticketing-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.Setup()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	taskClient := sched.InitClient(&cfg.Redis)

	// init distributed lock
	locker := redsync.New(goredis.NewPool(redisClient))

	feePolicy := fees.NewPolicy(&cfg.Fee)
	paymentGateway := gateway.New(&cfg.Gateway, logger, httpClient)

	orderRepo := orderrepo.New(db, logger, httpClient, redisClient, &cfg.EventService)
	orderUsecase := orderusecases.New(orderRepo, logger, feePolicy)

	paymentRepo := paymentrepo.New(db, logger, taskClient)
	paymentUsecase := paymentusecases.New(paymentRepo, paymentGateway, logger, publisher, locker)

	notificationRepo := notificationrepo.New(logger, httpClient, &cfg.EventService)
	notificationUsecase := notificationusecases.New(notificationRepo, logger, &cfg.Mailer)

	m := &middleware.Middleware{
		Log:        logZap,
		HttpClient: httpClient,
		CfgUser:    &cfg.UserService,
	}

	validate := validator.New()
	orderHandler := &orderhandler.OrderHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   orderUsecase,
	}
	paymentHandler := &paymenthandler.PaymentHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   paymentUsecase,
	}
	notificationHandler := &notificationhandler.NotificationHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   notificationUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	sendTicketRouter, err := messagestream.NewRouter(publisher, "poisoned_queue", "send_ticket_handler", "send_ticket", subscriber, notificationHandler.ConsumeSendTicketQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create send_ticket router", err)
	}

	messageRouters = append(messageRouters, sendTicketRouter)

	// expiry task worker and monitoring
	go sched.StartHandler(&cfg.Redis, []string{scheduler.TypeSetPaymentExpired}, []func(ctx context.Context, t *asynq.Task) error{paymentHandler.SetPaymentExpired})
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, orderHandler, paymentHandler, m)

	return r, messageRouters

}
