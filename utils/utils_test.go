package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 5.0, Round2(100*5.0/100))
	assert.Equal(t, 3.33, Round2(10.0/3))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 135.0, Round2(100+30+5))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, []string{"customer", "admin"}, "a@b.io", "s3cret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, []string{"customer", "admin"}, claims.Roles)
	assert.Equal(t, "a@b.io", claims.Email)

	_, err = ParseToken(token, "wrong")
	assert.Error(t, err)

	expired, err := GenerateToken(7, nil, "a@b.io", "s3cret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "s3cret")
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func paginationCtx(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	page, limit := Pagination(paginationCtx("page=0&limit=500"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = Pagination(paginationCtx("page=3&limit=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = Pagination(paginationCtx(""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}
