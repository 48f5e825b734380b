package subscriberService

import (
	"Blognest/internal/api/subscriber"
	subscriberRepository "Blognest/internal/api/subscriber/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/utils"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberStore struct {
	subscribers []entity.Subscriber
	listResult  []entity.Subscriber
}

func (f *fakeSubscriberStore) CreateSubscriber(_ context.Context, subscriber entity.Subscriber) error {
	for _, existing := range f.subscribers {
		if existing.Email == subscriber.Email && existing.Company == subscriber.Company {
			return subscribers.ErrAlreadySubscribed
		}
	}
	f.subscribers = append(f.subscribers, subscriber)
	return nil
}

func (f *fakeSubscriberStore) GetSubscriberByID(_ context.Context, id string) (entity.Subscriber, error) {
	for _, subscriber := range f.subscribers {
		if subscriber.ID == id {
			return subscriber, nil
		}
	}
	return entity.Subscriber{}, subscribers.ErrSubscriberNotFound
}

func (f *fakeSubscriberStore) GetSubscribersByCompany(_ context.Context, company string) ([]entity.Subscriber, error) {
	if f.listResult != nil {
		return f.listResult, nil
	}
	result := make([]entity.Subscriber, 0)
	for _, subscriber := range f.subscribers {
		if subscriber.Company == company {
			result = append(result, subscriber)
		}
	}
	return result, nil
}

func (f *fakeSubscriberStore) DeleteSubscriber(_ context.Context, id string) error {
	for i, subscriber := range f.subscribers {
		if subscriber.ID == id {
			f.subscribers = append(f.subscribers[:i], f.subscribers[i+1:]...)
			return nil
		}
	}
	return subscribers.ErrSubscriberNotFound
}

type fakeSubscriberRepo struct {
	store *fakeSubscriberStore
}

func (f *fakeSubscriberRepo) NewClient(_ bool) (subscriberRepository.Client, error) {
	return subscriberRepository.Client{
		Subscribers: f.store,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

func newTestSubscriberService(store *fakeSubscriberStore) ISubscribersService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewSubscribersService(logger, &fakeSubscriberRepo{store: store}, utils.New())
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	store := &fakeSubscriberStore{}
	svc := newTestSubscriberService(store)

	err := svc.Subscribe(context.Background(), subscribers.SubscribeRequest{
		Email:   "  Reader@Example.COM ",
		Company: "acme",
	})
	require.NoError(t, err)

	require.Len(t, store.subscribers, 1)
	assert.Equal(t, "reader@example.com", store.subscribers[0].Email)
	assert.NotEmpty(t, store.subscribers[0].ID)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	store := &fakeSubscriberStore{}
	svc := newTestSubscriberService(store)

	req := subscribers.SubscribeRequest{Email: "reader@example.com", Company: "acme"}
	require.NoError(t, svc.Subscribe(context.Background(), req))

	err := svc.Subscribe(context.Background(), req)
	assert.ErrorIs(t, err, subscribers.ErrAlreadySubscribed)
}

func TestSubscribeSameEmailDifferentCompany(t *testing.T) {
	store := &fakeSubscriberStore{}
	svc := newTestSubscriberService(store)

	require.NoError(t, svc.Subscribe(context.Background(), subscribers.SubscribeRequest{
		Email: "reader@example.com", Company: "acme",
	}))
	require.NoError(t, svc.Subscribe(context.Background(), subscribers.SubscribeRequest{
		Email: "reader@example.com", Company: "globex",
	}))

	assert.Len(t, store.subscribers, 2)
}

func TestListSubscribersDropsForeignRows(t *testing.T) {
	store := &fakeSubscriberStore{
		listResult: []entity.Subscriber{
			{ID: "s1", Email: "a@example.com", Company: "acme"},
			{ID: "s2", Email: "b@example.com", Company: "globex"},
			{ID: "s3", Email: "c@example.com", Company: "acme"},
		},
	}
	svc := newTestSubscriberService(store)

	result, err := svc.ListSubscribers(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	for _, subscriber := range result.Subscribers {
		assert.Equal(t, "acme", subscriber.Company)
	}
}

func TestRemoveSubscriberRejectsForeignTenant(t *testing.T) {
	store := &fakeSubscriberStore{subscribers: []entity.Subscriber{
		{ID: "s1", Email: "a@example.com", Company: "acme"},
	}}
	svc := newTestSubscriberService(store)

	err := svc.RemoveSubscriber(context.Background(), "s1", entity.UserLoginData{Company: "globex"})
	assert.ErrorIs(t, err, subscribers.ErrSubscriberNotOwned)
	assert.Len(t, store.subscribers, 1)
}

func TestRemoveSubscriberDeletesOwnedRow(t *testing.T) {
	store := &fakeSubscriberStore{subscribers: []entity.Subscriber{
		{ID: "s1", Email: "a@example.com", Company: "acme"},
	}}
	svc := newTestSubscriberService(store)

	err := svc.RemoveSubscriber(context.Background(), "s1", entity.UserLoginData{Company: "acme"})
	require.NoError(t, err)
	assert.Empty(t, store.subscribers)
}

func TestRemoveSubscriberUnknownID(t *testing.T) {
	svc := newTestSubscriberService(&fakeSubscriberStore{})

	err := svc.RemoveSubscriber(context.Background(), "missing", entity.UserLoginData{Company: "acme"})
	assert.ErrorIs(t, err, subscribers.ErrSubscriberNotFound)
}
