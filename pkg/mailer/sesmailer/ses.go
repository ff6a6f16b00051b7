// Package sesmailer sends email through AWS SES v2.
package sesmailer

import (
	"context"
	"errors"
	"fmt"
	"labelchecker/pkg/logger"
	"labelchecker/pkg/mailer"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// SendEmailAPI is the part of the sesv2 client used here.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Options configures the SES client.
type Options struct {
	Region          string
	AccessKeyID     string // AccessKeyID and SecretAccessKey are optional; the default AWS chain is used when empty.
	SecretAccessKey string
	From            string
}

// Sender implements mailer.Sender on SES.
type Sender struct {
	client SendEmailAPI
	from   string
}

var _ mailer.Sender = (*Sender)(nil)

// New wraps an existing client.
func New(client SendEmailAPI, from string) *Sender {
	return &Sender{client: client, from: from}
}

// NewFromOptions builds the sesv2 client from opts.
func NewFromOptions(ctx context.Context, opts Options) (*Sender, error) {
	if opts.From == "" {
		return nil, errors.New("from address is required")
	}
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return New(sesv2.NewFromConfig(cfg), opts.From), nil
}

// Send delivers msg as a simple email with HTML and optional text parts.
func (s *Sender) Send(ctx context.Context, msg mailer.Message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.Text != "" {
		input.Content.Simple.Body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}
	logger.Debug(ctx, "email sent", zap.String("messageID", aws.ToString(out.MessageId)))

	return nil
}
