//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/pool"
	ca "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"notification-dispatch/internal/domain"
	"notification-dispatch/internal/event/task"
	"notification-dispatch/internal/repository"
	"notification-dispatch/internal/repository/cache/local"
	"notification-dispatch/internal/repository/dao"
	"notification-dispatch/internal/service/account"
	"notification-dispatch/internal/service/channel"
	"notification-dispatch/internal/service/handler"
	"notification-dispatch/internal/service/handler/dingding"
	"notification-dispatch/internal/service/handler/dingding/client"
	"notification-dispatch/internal/service/sender"
	testioc "notification-dispatch/internal/test/ioc"
)

type robotRequest struct {
	query url.Values
	body  map[string]any
}

type DispatchTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests chan robotRequest
	taskPool *pool.OnDemandBlockTaskPool
	registry *channel.Registry
}

func TestDispatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DispatchTestSuite))
}

func (s *DispatchTestSuite) SetupSuite() {
	s.requests = make(chan robotRequest, 16)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(b, &body)
		s.requests <- robotRequest{query: r.URL.Query(), body: body}
		_, _ = w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
	}))

	p, err := pool.NewOnDemandBlockTaskPool(4, 16)
	s.Require().NoError(err)
	s.Require().NoError(p.Start())
	s.taskPool = p

	s.registry, err = channel.NewDefaultRegistry()
	s.Require().NoError(err)
}

func (s *DispatchTestSuite) TearDownSuite() {
	s.server.Close()
	_, _ = s.taskPool.Shutdown()
}

func (s *DispatchTestSuite) newSender(repo repository.ChannelAccountRepository, static account.StaticAccounts) sender.TaskSender {
	accountSvc := account.NewService(repo, s.registry, static)
	h := dingding.NewHandler(accountSvc, client.NewHTTPClient(time.Second), dingding.Config{Timeout: time.Second})
	d, err := handler.NewDispatcher(s.registry, h)
	s.Require().NoError(err)
	return sender.NewSender(d, s.taskPool)
}

func (s *DispatchTestSuite) webhook() string {
	return s.server.URL + "/robot/send?access_token=e2e"
}

func (s *DispatchTestSuite) nextRequest() robotRequest {
	select {
	case req := <-s.requests:
		return req
	case <-time.After(3 * time.Second):
		s.FailNow("等待机器人请求超时")
		return robotRequest{}
	}
}

// 消息队列 -> 消费者 -> 分发 -> 钉钉机器人
func (s *DispatchTestSuite) TestStaticAccountThroughMQ() {
	t := s.T()
	static := account.StaticAccounts{
		dingding.AccountKey: {
			{dingding.AccountPrefix + "1": map[string]any{"webhook": s.webhook(), "secret": "e2e-secret"}},
		},
	}
	svc := s.newSender(nil, static)

	q, err := testioc.InitMQ(task.EventName)
	require.NoError(t, err)
	producer, err := task.NewProducer(q)
	require.NoError(t, err)
	consumer, err := task.NewConsumer(svc, s.registry, q)
	require.NoError(t, err)

	msg, err := task.NewTaskMessage(domain.TaskInfo{
		MessageTemplateID: 1,
		BusinessID:        2,
		MessageID:         "e2e-1",
		Channel:           domain.ChannelDingDingRobot,
		Receiver:          []string{domain.SendAll},
		SendAccount:       1,
		ContentModel:      domain.DingDingContentModel{Content: "上线完成"},
	})
	require.NoError(t, err)
	require.NoError(t, producer.Produce(context.Background(), task.Event{Tasks: []task.TaskMessage{msg}}))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	req := s.nextRequest()
	assert.Equal(t, "e2e", req.query.Get("access_token"))
	assert.NotEmpty(t, req.query.Get("timestamp"))
	assert.NotEmpty(t, req.query.Get("sign"))
	assert.Equal(t, "text", req.body["msgtype"])
	assert.Equal(t, map[string]any{"content": "上线完成"}, req.body["text"])
	assert.Equal(t, true, req.body["at"].(map[string]any)["isAtAll"])
}

// 账号存在数据库中，配置加密存储
func (s *DispatchTestSuite) TestRepositoryAccount() {
	t := s.T()
	db, err := testioc.InitDBAndTables()
	if err != nil {
		t.Skipf("数据库不可用: %v", err)
	}

	repo := repository.NewChannelAccountRepository(
		dao.NewChannelAccountDAO(db, "e2e-encrypt-key"),
		local.NewLocalCache(ca.New(time.Minute, time.Minute)),
	)
	cfg, err := json.Marshal(domain.DingDingRobotAccount{Webhook: s.webhook(), Secret: "db-secret"})
	require.NoError(t, err)
	acc, err := repo.Create(context.Background(), domain.ChannelAccount{
		Name:    "e2e 机器人",
		Channel: domain.ChannelDingDingRobot,
		Config:  string(cfg),
	})
	require.NoError(t, err)
	defer func() {
		_ = repo.Delete(context.Background(), acc.ID)
	}()

	svc := s.newSender(repo, nil)
	results, err := svc.BatchSend(context.Background(), []domain.TaskInfo{
		{
			MessageID:    "e2e-2",
			Channel:      domain.ChannelDingDingRobot,
			Receiver:     []string{"u1", "u2"},
			SendAccount:  acc.ID,
			ContentModel: domain.DingDingContentModel{Content: "数据库账号"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.SendStatusSucceeded, results[0].Status)

	req := s.nextRequest()
	at := req.body["at"].(map[string]any)
	assert.Equal(t, []any{"u1", "u2"}, at["atUserIds"])
	assert.Equal(t, false, at["isAtAll"])
}
