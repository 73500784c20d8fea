package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/conf"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/models/po"
	"github.com/UnitedWeRise-org/UnitedWeRise-sub013/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/nats-io/nats.go"
)

const (
	inboxQueueGroup = "feed-inbox"
	handleTimeout   = 10 * time.Second
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf configs/config.yaml")
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service", "feed-engagement-inbox",
	)
	helper := log.NewHelper(logger)

	bc, confCleanup, err := conf.Load(flagconf)
	if err != nil {
		helper.Fatalw("msg", "load config failed", "path", flagconf, "error", err)
	}
	defer confCleanup()

	svc, cleanup, err := wireInbox(bc, logger)
	if err != nil {
		helper.Fatalw("msg", "wire inbox failed", "error", err)
	}
	defer cleanup()

	nc, err := nats.Connect(bc.Data.NATS.URL,
		nats.Name("feed-engagement-inbox"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		helper.Fatalw("msg", "connect nats failed", "url", bc.Data.NATS.URL, "error", err)
	}
	defer func() { _ = nc.Drain() }()

	subjects := []string{
		services.EventPostCreated,
		services.EventPostUpdated,
		services.EventPostDeleted,
		services.EventPostCounters,
		services.EventReputationUpdated,
	}
	for _, subject := range subjects {
		subject := subject
		if _, err := nc.QueueSubscribe(subject, inboxQueueGroup, func(msg *nats.Msg) {
			handleMessage(helper, svc, subject, msg)
		}); err != nil {
			helper.Fatalw("msg", "subscribe failed", "subject", subject, "error", err)
		}
	}
	helper.Infow("msg", "engagement inbox consumer started", "url", bc.Data.NATS.URL, "subjects", subjects)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	helper.Infow("msg", "engagement inbox consumer stopping")
}

// handleMessage 把 NATS 消息转换为 Inbox 事件并交给业务层处理。
// 缺少消息 ID 的事件无法幂等落库，直接丢弃并告警。
func handleMessage(helper *log.Helper, svc *services.InboxService, subject string, msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	eventID := msg.Header.Get(nats.MsgIdHdr)
	if eventID == "" {
		helper.Warnw("msg", "drop event without message id", "subject", subject)
		return
	}
	evt := po.InboxEvent{
		EventID:       eventID,
		SourceService: msg.Header.Get("Source-Service"),
		EventType:     subject,
		Payload:       msg.Data,
		ReceivedAt:    time.Now().UTC(),
	}
	if err := svc.Handle(ctx, evt); err != nil {
		helper.Errorw("msg", "handle inbox event failed", "subject", subject, "event_id", eventID, "error", err)
	}
}
