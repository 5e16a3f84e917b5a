package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageIncludesOrigin(t *testing.T) {
	origin := errors.New("connection refused")
	err := Wrap(CodeStoreFailure, "list posts", origin)

	assert.Equal(t, "list posts: connection refused", err.Error())
	assert.ErrorIs(t, err, origin)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeDuplicateUser, CodeOf(New(CodeDuplicateUser, "taken")))
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain error")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestIs(t *testing.T) {
	err := New(CodeInvalidVoteDirection, "bad direction")

	assert.True(t, Is(err, CodeInvalidVoteDirection))
	assert.False(t, Is(err, CodeStoreFailure))
	assert.False(t, Is(fmt.Errorf("plain error"), CodeStoreFailure))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 409, HTTPStatus(CodeDuplicateUser))
	assert.Equal(t, 409, HTTPStatus(CodeDuplicateSubreddit))
	assert.Equal(t, 401, HTTPStatus(CodeInvalidCredentials))
	assert.Equal(t, 404, HTTPStatus(CodeSessionNotFound))
	assert.Equal(t, 400, HTTPStatus(CodeInvalidVoteDirection))
	assert.Equal(t, 500, HTTPStatus(CodeStoreFailure))
	assert.Equal(t, 500, HTTPStatus("SOMETHING_ELSE"))
}
