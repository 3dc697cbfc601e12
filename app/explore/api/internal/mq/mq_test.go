package mq

import (
	"context"
	"testing"
	"time"

	"activity-discovery/app/explore/api/internal/types"
	"activity-discovery/app/explore/model"
	"activity-discovery/app/explore/state"
	"activity-discovery/common/messaging"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunningClient(t *testing.T, feed *FeedConsumer) *messaging.Client {
	t.Helper()
	cfg := messaging.DefaultConfig()
	cfg.ServiceName = "explore-mq-test"
	client, err := messaging.NewClient(cfg)
	require.NoError(t, err)

	feed.Subscribe(client)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = client.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = client.Close()
	})

	select {
	case <-client.Running():
	case <-time.After(3 * time.Second):
		t.Fatal("router did not start")
	}
	return client
}

func TestProducer_DeliversToFeed(t *testing.T) {
	feed := NewFeedConsumer(10)
	producer := NewProducer(newRunningClient(t, feed))

	producer.Publish(context.Background(), messaging.TopicFavoriteToggled, messaging.FavoriteToggledEvent{
		ActivityID: "a3",
		Favorited:  true,
	})

	require.Eventually(t, func() bool {
		return len(feed.Recent(0)) == 1
	}, 3*time.Second, 10*time.Millisecond)

	entry := feed.Recent(0)[0]
	assert.Equal(t, messaging.TopicFavoriteToggled, entry.Topic)
	assert.NotEmpty(t, entry.ID)
	payload, ok := entry.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a3", payload["activity_id"])
}

func TestProducer_FeedFollowsDispatchOrder(t *testing.T) {
	feed := NewFeedConsumer(10)
	producer := NewProducer(newRunningClient(t, feed))
	t.Cleanup(func() { _ = producer.Close() })

	opts := state.DefaultOptions()
	opts.Sink = producer
	appState, err := state.New(opts)
	require.NoError(t, err)

	ctx := context.Background()
	// 新子分类：同一意图产生 created + subcategory.added 两条事件
	_, err = appState.Dispatch(ctx, state.CreateActivity{Draft: model.Draft{
		Title:           "周末攀岩",
		Category:        model.CategorySports,
		SubCategory:     "攀岩",
		Time:            "2024-03-16 10:00",
		Location:        "岩时攀岩馆",
		MaxParticipants: 6,
	}})
	require.NoError(t, err)
	_, err = appState.Dispatch(ctx, state.JoinActivity{ActivityID: "a2", ParticipantID: "4"})
	require.NoError(t, err)
	_, err = appState.Dispatch(ctx, state.JoinActivity{ActivityID: "a7", ParticipantID: "2"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(feed.Recent(0)) == 4
	}, 3*time.Second, 10*time.Millisecond)

	got := feed.Recent(0)
	topics := make([]string, 0, len(got))
	for _, e := range got {
		topics = append(topics, e.Topic)
	}
	assert.Equal(t, []string{
		messaging.TopicActivityMemberJoined,
		messaging.TopicActivityMemberJoined,
		messaging.TopicSubcategoryAdded,
		messaging.TopicActivityCreated,
	}, topics)
	assert.Equal(t, []uint64{4, 3, 2, 1}, []uint64{got[0].Seq, got[1].Seq, got[2].Seq, got[3].Seq})

	payload, ok := got[0].Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a7", payload["activity_id"])
}

func TestProducer_CloseFlushesQueue(t *testing.T) {
	feed := NewFeedConsumer(10)
	producer := NewProducer(newRunningClient(t, feed))

	for i := 0; i < 5; i++ {
		producer.Publish(context.Background(), messaging.TopicProfileUpdated, messaging.ProfileUpdatedEvent{UserID: "1"})
	}
	require.NoError(t, producer.Close())

	// 关闭后的事件直接丢弃
	assert.NotPanics(t, func() {
		producer.Publish(context.Background(), messaging.TopicProfileUpdated, struct{}{})
	})
}

func TestFeedConsumer_OrdersBySequence(t *testing.T) {
	feed := NewFeedConsumer(5)
	// 到达顺序与发布顺序不同
	feed.Record(types.EventEntry{ID: "e2", Seq: 2})
	feed.Record(types.EventEntry{ID: "e1", Seq: 1})
	feed.Record(types.EventEntry{ID: "e3", Seq: 3})

	got := feed.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"e3", "e2", "e1"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestProducer_NilSafe(t *testing.T) {
	var p *Producer
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), messaging.TopicActivityCreated, struct{}{})
	})
	assert.NoError(t, p.Close())
	assert.Nil(t, NewProducer(nil))
}

func TestFeedConsumer_RecentNewestFirst(t *testing.T) {
	feed := NewFeedConsumer(3)
	for _, id := range []string{"e1", "e2", "e3", "e4"} {
		feed.Record(types.EventEntry{ID: id, Topic: messaging.TopicActivityCreated})
	}

	got := feed.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, "e4", got[0].ID)
	assert.Equal(t, "e2", got[2].ID)

	assert.Len(t, feed.Recent(2), 2)
}

func TestFeedConsumer_BadPayloadIsNotRetried(t *testing.T) {
	feed := NewFeedConsumer(5)
	msg := message.NewMessage(watermill.NewUUID(), []byte("not-json"))

	err := feed.handle(msg)
	require.Error(t, err)
	assert.False(t, messaging.IsRetryable(err))
	assert.Empty(t, feed.Recent(0))
}

func TestAcceptable(t *testing.T) {
	assert.True(t, acceptable(nil))
	assert.True(t, acceptable(messaging.ErrInvalidTopic))
	assert.False(t, acceptable(messaging.ErrConnectionFailed))
}
