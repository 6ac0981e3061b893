package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/samvad-hq/ninja-client/internal/logger"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-456")}, nil
}

func testEvent() Event {
	return NewEvent("item", "Sanctum", "UniqueJewel", json.RawMessage(`{"lines":[]}`))
}

func TestSQSPublisherSendsEventWithAttributes(t *testing.T) {
	client := &fakeSQSClient{}
	pub := &sqsPublisher{id: "q", typ: TypeSQS, queueURL: "https://example.com/queue", client: client, log: logger.NopLogger{}}

	if err := pub.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["overview"]
	if !ok || aws.ToString(attr.StringValue) != "UniqueJewel" || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("overview attribute missing or wrong: %#v", attr)
	}

	var decoded Event
	if err := json.Unmarshal([]byte(aws.ToString(client.input.MessageBody)), &decoded); err != nil {
		t.Fatalf("body is not an event: %v", err)
	}
	if decoded.Kind != "item" || decoded.League != "Sanctum" || string(decoded.Payload) != `{"lines":[]}` {
		t.Fatalf("unexpected body: %#v", decoded)
	}
}

func TestSQSPublisherSendError(t *testing.T) {
	pub := &sqsPublisher{id: "q", client: &fakeSQSClient{err: errors.New("boom")}, log: logger.NopLogger{}}
	if err := pub.Publish(context.Background(), testEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestSNSPublisherSendsEvent(t *testing.T) {
	client := &fakeSNSClient{}
	pub := &snsPublisher{id: "t", topicARN: "arn:aws:sns:::topic", client: client, log: logger.NopLogger{}}

	if err := pub.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	if attr := client.input.MessageAttributes["league"]; aws.ToString(attr.StringValue) != "Sanctum" {
		t.Fatalf("league attribute = %#v", attr)
	}
}

func TestSNSPublisherSendError(t *testing.T) {
	pub := &snsPublisher{id: "t", client: &fakeSNSClient{err: errors.New("boom")}, log: logger.NopLogger{}}
	if err := pub.Publish(context.Background(), testEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestLoadAWSConfigWithStaticCredentials(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), "eu-west-1", AWSAccess{AccessKeyID: "AKID", SecretAccessKey: "secret"})
	if err != nil {
		t.Fatalf("loadAWSConfig: %v", err)
	}
	if cfg.Region != "eu-west-1" {
		t.Fatalf("region = %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if creds.AccessKeyID != "AKID" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %#v", creds)
	}
}
