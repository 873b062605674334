package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "user-42"},
	}

	token, err := EncodeCursor(key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	member, ok := decoded["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "user-42", member.Value)
}

func TestEncodeCursor_EmptyKeyMeansNoMorePages(t *testing.T) {
	token, err := EncodeCursor(nil)
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = EncodeCursor(map[string]types.AttributeValue{})
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDecodeCursor_EmptyTokenMeansStartOfCollection(t *testing.T) {
	key, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestDecodeCursor_MalformedToken(t *testing.T) {
	_, err := DecodeCursor("not base64 at all!!!")
	assert.Error(t, err)

	// Valid base64, invalid JSON inside.
	_, err = DecodeCursor("bm90LWpzb24")
	assert.Error(t, err)
}
