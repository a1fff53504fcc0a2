package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/country-gallery-api/internal/config"
)

type MessageType string

const (
	MessageTypeIndex        MessageType = "INDEX_SUBMISSIONS"
	MessageTypeDeindex      MessageType = "DELETE_SUBMISSIONS"
	MessageTypeCleanupBlobs MessageType = "CLEANUP_BLOBS"
)

type Message struct {
	Type          MessageType `json:"type"`
	CountryID     string      `json:"country_id"`
	SubmissionIDs []string    `json:"submission_ids,omitempty"`
	StoragePaths  []string    `json:"storage_paths,omitempty"`
	Reason        string      `json:"reason,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

// SQSAPI is the subset of the SQS client the queue uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client          SQSAPI
	indexQueueURL   string
	cleanupQueueURL string
}

func NewSQSService(client SQSAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:          client,
		indexQueueURL:   config.IndexQueueURL,
		cleanupQueueURL: config.CleanupQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string {
	return s.indexQueueURL
}

func (s *SQSService) CleanupQueueURL() string {
	return s.cleanupQueueURL
}

// SendIndexMessage asks the index worker to (re)index the given submissions.
func (s *SQSService) SendIndexMessage(ctx context.Context, countryID string, submissionIDs []string) error {
	if len(submissionIDs) == 0 {
		return nil
	}

	msg := Message{
		Type:          MessageTypeIndex,
		CountryID:     countryID,
		SubmissionIDs: submissionIDs,
		Timestamp:     time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

// SendDeindexMessage asks the index worker to drop deleted submissions.
func (s *SQSService) SendDeindexMessage(ctx context.Context, countryID string, submissionIDs []string) error {
	if len(submissionIDs) == 0 {
		return nil
	}

	msg := Message{
		Type:          MessageTypeDeindex,
		CountryID:     countryID,
		SubmissionIDs: submissionIDs,
		Timestamp:     time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

// SendCleanupMessage hands blobs whose removal failed to the cleanup worker.
func (s *SQSService) SendCleanupMessage(ctx context.Context, countryID string, paths []string, reason string) error {
	if len(paths) == 0 {
		return nil
	}

	msg := Message{
		Type:         MessageTypeCleanupBlobs,
		CountryID:    countryID,
		StoragePaths: paths,
		Reason:       reason,
		Timestamp:    time.Now(),
	}

	return s.sendMessage(ctx, msg, s.cleanupQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// ReceiveMessages skips bodies that cannot be decoded and returns their
// receipt handles separately so the caller can drop them from the queue.
func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, []*string, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	var poison []*string
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &message); err != nil {
			poison = append(poison, msg.ReceiptHandle)
			continue
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, poison, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
