package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectGetter struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3RecipeState(t *testing.T) {
	t.Run("reads the object", func(t *testing.T) {
		getter := &fakeObjectGetter{body: `[{"id":"r1","name":"Bread"}]`}
		state := NewS3RecipeState(getter, "kitchen", "catalog/recipes.json")

		b, err := state.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"r1","name":"Bread"}]`, string(b))

		require.NotNil(t, getter.input)
		assert.Equal(t, "kitchen", aws.ToString(getter.input.Bucket))
		assert.Equal(t, "catalog/recipes.json", aws.ToString(getter.input.Key))
	})

	t.Run("wraps get errors", func(t *testing.T) {
		cause := errors.New("access denied")
		state := NewS3RecipeState(&fakeObjectGetter{err: cause}, "kitchen", "recipes.json")

		_, err := state.Load(context.Background())
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "s3://kitchen/recipes.json")
	})
}
