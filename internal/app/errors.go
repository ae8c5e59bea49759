package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/willibrandon/ddv/internal/dynamo"
)

// clientHint is the guidance attached to a recognized client failure
type clientHint struct {
	summary string
	steps   []string
}

func hintFor(err error) (clientHint, bool) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "UnrecognizedClientException", "InvalidSignatureException", "ExpiredTokenException",
			"ExpiredToken", "AccessDeniedException":
			return clientHint{
				summary: "AWS rejected the credentials",
				steps: []string{
					"Verify the active profile with: aws sts get-caller-identity",
					"Refresh expired session credentials (aws sso login)",
					"Check that the IAM policy allows dynamodb:ListTables, DescribeTable, Scan and DeleteItem",
				},
			}, true
		case "ResourceNotFoundException":
			return clientHint{
				summary: "The table does not exist in this region",
				steps: []string{
					"Check the region with --region or aws.region in config.yaml",
					"List tables with: aws dynamodb list-tables",
				},
			}, true
		case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
			return clientHint{
				summary: "Requests are being throttled",
				steps: []string{
					"Wait a moment and reload",
					"Increase the read capacity of the table or switch it to on-demand",
				},
			}, true
		}
	}

	errMsg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return clientHint{
			summary: "The request timed out",
			steps: []string{
				"Check network connectivity to the endpoint",
				"Raise aws.request_timeout in config.yaml for large tables",
			},
		}, true
	case strings.Contains(errMsg, "connection refused"):
		return clientHint{
			summary: "The endpoint is not accepting connections",
			steps: []string{
				"Verify DynamoDB Local is running when --endpoint-url is set",
				"Check the host and port of the endpoint URL",
			},
		}, true
	case strings.Contains(errMsg, "no such host"):
		return clientHint{
			summary: "The endpoint host cannot be resolved",
			steps: []string{
				"Verify the region name or the --endpoint-url host",
				"Check DNS resolution of the endpoint",
			},
		}, true
	case strings.Contains(errMsg, "credentials"):
		return clientHint{
			summary: "No AWS credentials were found",
			steps: []string{
				"Configure credentials with: aws configure",
				"Or select a profile with --profile",
				"Or export AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY",
			},
		}, true
	}
	return clientHint{}, false
}

// NotificationText renders err as a single status line message
func NotificationText(err error) string {
	msg := err.Error()
	var derr *dynamo.Error
	if errors.As(err, &derr) {
		msg = derr.Msg
	}
	if hint, ok := hintFor(err); ok {
		return fmt.Sprintf("%s (%s)", msg, hint.summary)
	}
	return msg
}

// FormatClientError formats a client error with actionable guidance
func FormatClientError(err error) string {
	errMsg := err.Error()

	hint, ok := hintFor(err)
	if !ok {
		return fmt.Sprintf(
			"DynamoDB error:\n\n"+
				"%s\n\n"+
				"Check your configuration in config.yaml or the --region, --profile and --endpoint-url flags.\n"+
				"Run with --debug flag for detailed logs.", errMsg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s.\n\nTroubleshooting steps:\n", hint.summary)
	for i, step := range hint.steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	fmt.Fprintf(&b, "\nOriginal error: %s", errMsg)
	return b.String()
}
