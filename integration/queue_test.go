package integration

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// memoryQueue is an in-process stand-in for an SQS queue. It satisfies both
// the publisher and the consumer client interfaces.
type memoryQueue struct {
	mu       sync.Mutex
	pending  []types.Message
	inFlight map[string]types.Message
	deleted  int
	seq      int
	notify   chan struct{}
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{
		inFlight: map[string]types.Message{},
		notify:   make(chan struct{}, 1),
	}
}

func (q *memoryQueue) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	q.mu.Lock()
	q.seq++
	id := strconv.Itoa(q.seq)
	q.pending = append(q.pending, types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String("receipt-" + id),
		Body:          params.MessageBody,
	})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return &sqs.SendMessageOutput{MessageId: aws.String(id)}, nil
}

// ReceiveMessage waits briefly for messages, like a short long-poll.
func (q *memoryQueue) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if msgs := q.take(int(params.MaxNumberOfMessages)); len(msgs) > 0 {
		return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.notify:
	case <-time.After(20 * time.Millisecond):
	}
	return &sqs.ReceiveMessageOutput{Messages: q.take(int(params.MaxNumberOfMessages))}, nil
}

func (q *memoryQueue) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.inFlight[aws.ToString(params.ReceiptHandle)]; ok {
		delete(q.inFlight, aws.ToString(params.ReceiptHandle))
		q.deleted++
	}
	return &sqs.DeleteMessageOutput{}, nil
}

func (q *memoryQueue) take(max int) []types.Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	if max <= 0 {
		max = 1
	}
	n := min(max, len(q.pending))
	msgs := append([]types.Message(nil), q.pending[:n]...)
	q.pending = q.pending[n:]
	for _, m := range msgs {
		q.inFlight[aws.ToString(m.ReceiptHandle)] = m
	}
	return msgs
}

func (q *memoryQueue) stats() (pending, inFlight, deleted int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending), len(q.inFlight), q.deleted
}
