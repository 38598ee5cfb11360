package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

// EndpointInvoker is the subset of the SageMaker runtime client used here.
type EndpointInvoker interface {
	InvokeEndpoint(ctx context.Context, params *sagemakerruntime.InvokeEndpointInput, optFns ...func(*sagemakerruntime.Options)) (*sagemakerruntime.InvokeEndpointOutput, error)
}

type SageMakerClient struct {
	runtime  EndpointInvoker
	endpoint string
	timeout  time.Duration
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// NewSageMakerClient uses the default AWS credential chain. A zero timeout
// leaves the caller's context in charge.
func NewSageMakerClient(ctx context.Context, region, endpoint string, timeout time.Duration) (*SageMakerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &SageMakerClient{
		runtime:  sagemakerruntime.NewFromConfig(cfg),
		endpoint: endpoint,
		timeout:  timeout,
	}, nil
}

func (c *SageMakerClient) Name() string {
	return "sagemaker:" + c.endpoint
}

func (c *SageMakerClient) Predict(ctx context.Context, text string) (*Prediction, error) {
	if c.endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("encoding inference request: %w", err)
	}

	out, err := c.runtime.InvokeEndpoint(ctx, &sagemakerruntime.InvokeEndpointInput{
		EndpointName: aws.String(c.endpoint),
		ContentType:  aws.String("application/json"),
		Accept:       aws.String("application/json"),
		Body:         payload,
	})
	if err != nil {
		return nil, fmt.Errorf("sagemaker invoke %s: %w", c.endpoint, err)
	}

	return ParsePrediction(out.Body)
}
