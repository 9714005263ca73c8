package secrets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

type fakeSecretsManager struct {
	values map[string]*string
	err    error
	calls  []string
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	name := aws.ToString(params.SecretId)
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: value}, nil
}

func TestAWSSecretsProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresRegion", func(t *testing.T) {
		_, err := NewAWSSecretsProvider(ctx, "", "")
		if err == nil {
			t.Fatal("Expected error when region is empty")
		}
		if !strings.Contains(err.Error(), "region") {
			t.Fatalf("Expected error to mention region, got: %v", err)
		}
	})

	t.Run("PrefixedLookup", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]*string{
			"vcare/EMAIL_PASS": aws.String("app-password"),
		}}
		provider := &AWSSecretsProvider{client: fake, prefix: "vcare/"}

		value, err := provider.GetSecret(ctx, "EMAIL_PASS")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if value != "app-password" {
			t.Fatalf("Expected 'app-password', got %q", value)
		}
		if len(fake.calls) != 1 {
			t.Fatalf("Expected a single lookup, got %v", fake.calls)
		}
	})

	t.Run("FallsBackWithoutPrefix", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]*string{
			"EMAIL_USER": aws.String("vcare@example.com"),
		}}
		provider := &AWSSecretsProvider{client: fake, prefix: "vcare/"}

		value, err := provider.GetSecret(ctx, "EMAIL_USER")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if value != "vcare@example.com" {
			t.Fatalf("Expected 'vcare@example.com', got %q", value)
		}
		if strings.Join(fake.calls, ",") != "vcare/EMAIL_USER,EMAIL_USER" {
			t.Fatalf("Unexpected lookups: %v", fake.calls)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		provider := &AWSSecretsProvider{client: &fakeSecretsManager{}}
		_, err := provider.GetSecret(ctx, "MISSING")
		if !errors.Is(err, ErrSecretNotFound) {
			t.Fatalf("Expected ErrSecretNotFound, got %v", err)
		}
	})

	t.Run("ClientErrorIsNotRetriedWithoutPrefix", func(t *testing.T) {
		fake := &fakeSecretsManager{err: errors.New("access denied")}
		provider := &AWSSecretsProvider{client: fake, prefix: "vcare/"}
		_, err := provider.GetSecret(ctx, "EMAIL_PASS")
		if err == nil || !strings.Contains(err.Error(), "access denied") {
			t.Fatalf("Expected access denied error, got %v", err)
		}
		if len(fake.calls) != 1 {
			t.Fatalf("Expected a single lookup, got %v", fake.calls)
		}
	})

	t.Run("BinarySecret", func(t *testing.T) {
		fake := &fakeSecretsManager{values: map[string]*string{"BIN": nil}}
		provider := &AWSSecretsProvider{client: fake}
		_, err := provider.GetSecret(ctx, "BIN")
		if err == nil || !strings.Contains(err.Error(), "no string value") {
			t.Fatalf("Expected no string value error, got %v", err)
		}
	})
}
