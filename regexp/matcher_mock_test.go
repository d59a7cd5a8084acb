package regexp_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TykTechnologies/regexmatch/log"
	"github.com/TykTechnologies/regexmatch/regexp"
	"github.com/TykTechnologies/regexmatch/regexp/mock"
)

func newMockedMatcher(t *testing.T) (*regexp.Matcher, *mock.MockEngine, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := mock.NewMockEngine(ctrl)
	raw, _ := test.NewNullLogger()

	return regexp.New(regexp.WithEngine(engine), regexp.WithLogger(log.FromLogrus(raw))), engine, ctrl
}

func TestMatcher_CompilesOncePerPattern(t *testing.T) {
	m, engine, ctrl := newMockedMatcher(t)

	pattern := mock.NewMockPattern(ctrl)
	engine.EXPECT().Compile("p").Return(pattern, nil).Times(1)
	pattern.EXPECT().MatchString("subject").Return(true, nil).Times(3)

	for i := 0; i < 3; i++ {
		got, err := m.Matches("p", "subject")
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestMatcher_CompileErrorIsCause(t *testing.T) {
	m, engine, _ := newMockedMatcher(t)

	cause := errors.New("unexpected token")
	engine.EXPECT().Compile("bad").Return(nil, cause)

	_, err := m.Matches("bad", "x")
	assert.ErrorIs(t, err, regexp.ErrInvalidArgument)
	assert.ErrorIs(t, err, cause)
}

func TestMatcher_MatchErrorIsNotInvalidArgument(t *testing.T) {
	m, engine, ctrl := newMockedMatcher(t)

	timeout := errors.New("match timeout")
	pattern := mock.NewMockPattern(ctrl)
	engine.EXPECT().Compile("slow").Return(pattern, nil)
	pattern.EXPECT().MatchString("input").Return(false, timeout)

	got, err := m.Matches("slow", "input")
	assert.False(t, got)
	assert.ErrorIs(t, err, timeout)
	assert.NotErrorIs(t, err, regexp.ErrInvalidArgument)
}

func TestMatcher_NilArgumentSkipsEngine(t *testing.T) {
	m, _, _ := newMockedMatcher(t)

	// no expectations: any engine call fails the test
	_, err := m.MatchesPtr(nil, nil)
	assert.ErrorIs(t, err, regexp.ErrInvalidArgument)
}
