// Package bedrock provides a labelai.Analyzer that runs Claude through AWS
// Bedrock InvokeModel.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"labelchecker/pkg/domain"
	"labelchecker/pkg/labelai"
	"labelchecker/pkg/serrors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
)

const anthropicVersion = "bedrock-2023-05-31"

// InvokeModelAPI is the part of the bedrockruntime client used here.
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Analyzer implements labelai.Analyzer on Bedrock.
type Analyzer struct {
	client    InvokeModelAPI
	modelID   string
	maxTokens int
}

var _ labelai.Analyzer = (*Analyzer)(nil)

// New wraps an existing InvokeModel client.
func New(client InvokeModelAPI, modelID string, maxTokens int) *Analyzer {
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Analyzer{client: client, modelID: modelID, maxTokens: maxTokens}
}

// NewFromRegion builds a bedrockruntime client from the default AWS
// credential chain for region.
func NewFromRegion(ctx context.Context, region, modelID string, maxTokens int) (*Analyzer, error) {
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	return New(bedrockruntime.NewFromConfig(cfg), modelID, maxTokens), nil
}

// Analyze invokes the model with the Anthropic messages body. Bedrock does not
// expose rate-limit headers, so throttling is reported with a one minute
// back-off window.
func (a *Analyzer) Analyze(ctx context.Context, in labelai.Input) (*domain.ComplianceReport, labelai.RateLimitStatus, error) {
	body := labelai.NewClaudeRequest(in, a.maxTokens)
	body.AnthropicVersion = anthropicVersion
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(a.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        reqBody,
	})
	if err != nil {
		return nil, rateLimitFor(err), classify(err)
	}

	var resp labelai.ClaudeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not decode response: %w", err)
	}
	report, err := labelai.ParseReport(resp.Text(), in, a.modelID)
	if err != nil {
		return nil, labelai.RateLimitStatus{}, fmt.Errorf("could not parse report: %w", err)
	}

	return report, labelai.RateLimitStatus{}, nil
}

func rateLimitFor(err error) labelai.RateLimitStatus {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ThrottlingException" {
		return labelai.RateLimitStatus{ResetAt: time.Now().Add(time.Minute)}
	}

	return labelai.RateLimitStatus{}
}

func classify(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("could not invoke model: %w", err)
	}

	switch apiErr.ErrorCode() {
	case "ThrottlingException":
		return serrors.Wrap(serrors.ErrRateLimited, err, "bedrock throttled")
	case "ServiceUnavailableException", "ModelNotReadyException", "ModelTimeoutException":
		return serrors.Wrap(serrors.ErrUnavailable, err, "bedrock unavailable")
	case "ValidationException", "AccessDeniedException", "ResourceNotFoundException":
		return serrors.Wrap(serrors.ErrBadRequest, err, "bedrock rejected request")
	default:
		return fmt.Errorf("could not invoke model: %w", err)
	}
}
