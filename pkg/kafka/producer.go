package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers  []string
	ClientID string

	// Retry configuration for the initial connection
	MaxRetries    int
	RetryInterval time.Duration

	// Batching
	BatchSize int
	LingerMs  int
}

// DefaultProducerConfig returns default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:       []string{"localhost:9092"},
		ClientID:      "train-station-producer",
		MaxRetries:    3,
		RetryInterval: 2 * time.Second,
		BatchSize:     100,
		LingerMs:      10,
	}
}

// Message represents a Kafka message to produce
type Message struct {
	Topic     string
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// Producer wraps a franz-go client for producing messages
type Producer struct {
	client *kgo.Client
	config *ProducerConfig
}

// NewProducer creates a new Kafka producer with retry logic
func NewProducer(ctx context.Context, cfg *ProducerConfig) (*Producer, error) {
	if cfg == nil {
		cfg = DefaultProducerConfig()
	}

	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerLinger(time.Duration(cfg.LingerMs) * time.Millisecond),
		kgo.MaxBufferedRecords(cfg.BatchSize * 100),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	var client *kgo.Client
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(cfg.RetryInterval)
		}

		client, lastErr = kgo.NewClient(opts...)
		if lastErr != nil {
			continue
		}

		if lastErr = client.Ping(ctx); lastErr != nil {
			client.Close()
			continue
		}

		return &Producer{
			client: client,
			config: cfg,
		}, nil
	}

	return nil, fmt.Errorf("failed to connect to kafka after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

// Produce sends a message and waits for the broker acknowledgement
func (p *Producer) Produce(ctx context.Context, msg *Message) error {
	record := toRecord(msg)

	result := p.client.ProduceSync(ctx, record)
	if err := result.FirstErr(); err != nil {
		return fmt.Errorf("failed to produce to topic %s: %w", msg.Topic, err)
	}

	return nil
}

// ProduceAsync sends a message without waiting for acknowledgement
func (p *Producer) ProduceAsync(ctx context.Context, msg *Message, callback func(error)) {
	record := toRecord(msg)

	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if callback != nil {
			callback(err)
		}
	})
}

// Flush waits for all buffered messages to be sent
func (p *Producer) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

// Ping checks connectivity to the brokers
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close flushes and closes the producer
func (p *Producer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = p.client.Flush(ctx)
	p.client.Close()
}

func toRecord(msg *Message) *kgo.Record {
	record := &kgo.Record{
		Topic: msg.Topic,
		Key:   msg.Key,
		Value: msg.Value,
	}

	if !msg.Timestamp.IsZero() {
		record.Timestamp = msg.Timestamp
	}

	for k, v := range msg.Headers {
		record.Headers = append(record.Headers, kgo.RecordHeader{
			Key:   k,
			Value: []byte(v),
		})
	}

	return record
}
