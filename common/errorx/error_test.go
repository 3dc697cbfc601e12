package errorx

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError_Wrapped(t *testing.T) {
	err := errors.Wrap(ErrActivityNotFound("a9"), "join")

	biz := FromError(err)
	assert.Equal(t, CodeActivityNotFound, biz.Code)
	assert.Contains(t, biz.Message, "a9")
	assert.True(t, Is(err, CodeActivityNotFound))
}

func TestFromError_HidesUnknown(t *testing.T) {
	biz := FromError(errors.New("boom"))
	assert.Equal(t, CodeInternalError, biz.Code)
	assert.Equal(t, "内部服务器错误", biz.Message)
	assert.Nil(t, FromError(nil))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "活动不存在", GetMessage(CodeActivityNotFound))
	assert.Equal(t, "未知错误", GetMessage(9999))
	assert.False(t, IsValidCode(9999))
}
